// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sale - the sale and bid records held by the market
package sale

import (
	"encoding/json"

	"github.com/bitmark-inc/marketd/currency"
)

// Bid - an offer from one account in one currency
type Bid struct {
	Owner string          `json:"owner_id"`
	Price currency.Amount `json:"price"`
}

// Prices - at most one price per currency
type Prices map[currency.Id]currency.Amount

// Bids - per currency bid history, oldest first, highest last
type Bids map[currency.Id][]Bid

// Sale - an asset listed on the market
type Sale struct {
	Seller     string `json:"owner_id"`
	ApprovalId uint64 `json:"approval_id"`
	Contract   string `json:"nft_contract_id"`
	AssetId    string `json:"token_id"`
	Prices     Prices `json:"sale_conditions"`
	Bids       Bids   `json:"bids"`
	CreatedAt  uint64 `json:"created_at,string"` // milliseconds
	TypeTag    string `json:"token_type,omitempty"`
	IsAuction  bool   `json:"is_auction"`
}

// Key - the unique key of this sale
func (s *Sale) Key() Key {
	return NewKey(s.Contract, s.AssetId)
}

// Price - the price in a currency
func (s *Sale) Price(c currency.Id) (currency.Amount, bool) {
	p, ok := s.Prices[c]
	return p, ok
}

// TopBid - the highest bid in a currency
func (s *Sale) TopBid(c currency.Id) (Bid, bool) {
	bids := s.Bids[c]
	if 0 == len(bids) {
		return Bid{}, false
	}
	return bids[len(bids)-1], true
}

// TopBids - the highest bid of every currency
func (s *Sale) TopBids() map[currency.Id]Bid {
	top := make(map[currency.Id]Bid, len(s.Bids))
	for c := range s.Bids {
		if b, ok := s.TopBid(c); ok {
			top[c] = b
		}
	}
	return top
}

// Pack - encode for storage
func (s *Sale) Pack() ([]byte, error) {
	return json.Marshal(s)
}

// Unpack - decode a stored sale
func Unpack(buffer []byte) (*Sale, error) {
	s := &Sale{}
	if err := json.Unmarshal(buffer, s); nil != err {
		return nil, err
	}
	if nil == s.Prices {
		s.Prices = make(Prices)
	}
	if nil == s.Bids {
		s.Bids = make(Bids)
	}
	return s, nil
}
