// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collection

import (
	"context"
	"encoding/json"
	"math/bits"
	"sync"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
)

// royalty limits in basis points
const (
	BasisPoints        = 10000
	MinterRoyaltyCap   = 2000
	ContractRoyaltyCap = 1000
	MaxRoyaltyAccounts = 6
)

type token struct {
	owner        string
	approvals    map[string]uint64
	nextApproval uint64
	royalty      map[string]uint32
	typeTag      string
}

// Local - an in-process collection contract with perpetual royalties
type Local struct {
	sync.Mutex
	owner           string
	contractRoyalty uint32
	tokens          map[string]*token
	payouts         map[string][]byte
}

// NewLocal - empty collection owned by owner
func NewLocal(owner string) *Local {
	return &Local{
		owner:   owner,
		tokens:  make(map[string]*token),
		payouts: make(map[string][]byte),
	}
}

// SetContractRoyalty - share paid to the collection owner on every sale
func (l *Local) SetContractRoyalty(caller string, bps uint32) error {
	l.Lock()
	defer l.Unlock()

	if caller != l.owner {
		return fault.NotContractOwner
	}
	if bps > ContractRoyaltyCap {
		return fault.RoyaltyTooHigh
	}
	l.contractRoyalty = bps
	return nil
}

// Mint - create a token
func (l *Local) Mint(assetId string, receiver string, royalty map[string]uint32, typeTag string) error {
	l.Lock()
	defer l.Unlock()

	if _, ok := l.tokens[assetId]; ok {
		return fault.TokenAlreadyExists
	}
	if len(royalty) > MaxRoyaltyAccounts {
		return fault.TooManyPayees
	}
	total := uint32(0)
	r := make(map[string]uint32, len(royalty))
	for account, bps := range royalty {
		total += bps
		r[account] = bps
	}
	if total > MinterRoyaltyCap {
		return fault.RoyaltyTooHigh
	}

	l.tokens[assetId] = &token{
		owner:     receiver,
		approvals: make(map[string]uint64),
		royalty:   r,
		typeTag:   typeTag,
	}
	return nil
}

// Approve - let account transfer the token, returns the approval id
func (l *Local) Approve(assetId string, caller string, account string) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	t, ok := l.tokens[assetId]
	if !ok {
		return 0, fault.TokenNotFound
	}
	if caller != t.owner {
		return 0, fault.NotTokenOwner
	}
	id := t.nextApproval
	t.nextApproval += 1
	t.approvals[account] = id
	return id, nil
}

// Owner - current owner of a token
func (l *Local) Owner(assetId string) (string, error) {
	l.Lock()
	defer l.Unlock()

	t, ok := l.tokens[assetId]
	if !ok {
		return "", fault.TokenNotFound
	}
	return t.owner, nil
}

// TransferPayout - move the token to the receiver and split the balance
//
// the previous owner receives whatever the royalties leave
func (l *Local) TransferPayout(ctx context.Context, arguments *TransferPayoutArguments) ([]byte, error) {
	l.Lock()
	defer l.Unlock()

	if "" != arguments.TaskId {
		if result, ok := l.payouts[arguments.TaskId]; ok {
			return result, nil
		}
	}

	t, ok := l.tokens[arguments.AssetId]
	if !ok {
		return nil, fault.TokenNotFound
	}
	id, ok := t.approvals[arguments.Account]
	if !ok || id != arguments.ApprovalId {
		return nil, fault.WrongApproval
	}

	previous := t.owner
	if l.payees(t, previous) > arguments.MaxLenPayout {
		return nil, fault.TooManyPayees
	}

	payout := Payout{
		Payout: make(map[string]currency.Amount),
	}
	paid := currency.Amount(0)
	for account, bps := range t.royalty {
		if account == previous {
			continue
		}
		share := royaltyToPayout(bps, arguments.Balance)
		payout.Payout[account] += share
		paid += share
	}
	if l.contractRoyalty > 0 && l.owner != previous {
		share := royaltyToPayout(l.contractRoyalty, arguments.Balance)
		payout.Payout[l.owner] += share
		paid += share
	}
	remainder, ok := arguments.Balance.Sub(paid)
	if !ok {
		return nil, fault.RoyaltyTooHigh
	}
	payout.Payout[previous] += remainder

	result, err := json.Marshal(payout)
	if nil != err {
		return nil, err
	}

	t.owner = arguments.Receiver
	t.approvals = make(map[string]uint64)
	if "" != arguments.TaskId {
		l.payouts[arguments.TaskId] = result
	}
	return result, nil
}

// distinct accounts in the payout of a transfer from previous
func (l *Local) payees(t *token, previous string) int {
	n := 1
	for account := range t.royalty {
		if account != previous {
			n += 1
		}
	}
	if l.contractRoyalty > 0 && l.owner != previous {
		if _, ok := t.royalty[l.owner]; !ok {
			n += 1
		}
	}
	return n
}

// balance × bps / 10000 without overflow
func royaltyToPayout(bps uint32, balance currency.Amount) currency.Amount {
	hi, lo := bits.Mul64(uint64(balance), uint64(bps))
	q, _ := bits.Div64(hi, lo, BasisPoints)
	return currency.Amount(q)
}
