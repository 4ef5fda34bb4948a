// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/sale"
)

// Memo - attached to every transfer and payout
const Memo = "payout from market"

// DefaultMaxPayees - payout entries plus bid refunds allowed per settlement
const DefaultMaxPayees = 10

// Id - SHA3-384 digest identifying a task
type Id [48]byte

// Task - everything Phase 2 needs, captured when the sale is removed
type Task struct {
	Id        Id              `json:"id"`
	Currency  currency.Id     `json:"currency"`
	Buyer     string          `json:"buyer_id"`
	Price     currency.Amount `json:"price"`
	Sale      *sale.Sale      `json:"sale"`
	Memo      string          `json:"memo"`
	MaxPayees int             `json:"max_payees"`
}

func newTask(s *sale.Sale, c currency.Id, buyer string, price currency.Amount, maxPayees int) *Task {
	t := &Task{
		Currency:  c,
		Buyer:     buyer,
		Price:     price,
		Sale:      s,
		Memo:      Memo,
		MaxPayees: maxPayees,
	}

	h := sha3.New384()
	h.Write(s.Key())
	h.Write([]byte(strconv.FormatUint(s.ApprovalId, 10)))
	h.Write([]byte(strconv.FormatUint(s.CreatedAt, 10)))
	h.Write([]byte(c))
	h.Write([]byte{0})
	h.Write([]byte(buyer))
	h.Write([]byte{0})
	h.Write([]byte(price.String()))
	copy(t.Id[:], h.Sum(nil))

	return t
}

// Pack - JSON form for the pending pool
func (t *Task) Pack() ([]byte, error) {
	return json.Marshal(t)
}

// UnpackTask - decode a pending task
func UnpackTask(buffer []byte) (*Task, error) {
	t := &Task{}
	if err := json.Unmarshal(buffer, t); nil != err {
		return nil, err
	}
	if nil == t.Sale {
		return nil, fault.InvalidMessage
	}
	return t, nil
}

// String - hex form
func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - hex form
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - from hex
func (id *Id) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != len(id) {
		return fault.InvalidKey
	}
	if _, err := hex.Decode(id[:], s); nil != err {
		return fault.InvalidKey
	}
	return nil
}

// ParseId - from hex
func ParseId(s string) (Id, error) {
	var id Id
	err := id.UnmarshalText([]byte(s))
	return id, err
}
