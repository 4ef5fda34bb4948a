// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the sales and their bids
//
// all mutation of sale records goes through this package, every
// operation works inside a caller supplied storage transaction and
// validates all of its arguments before it stages any change
package registry

import (
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/index"
	"github.com/bitmark-inc/marketd/refund"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/storage"
)

// DefaultHistoryLength - number of bids kept per currency
const DefaultHistoryLength = 1

// Registry - sale and bid bookkeeping
type Registry struct {
	log           *logger.L
	index         *index.Index
	currencies    *currency.Set
	refunds       *refund.Engine
	historyLength int
	now           func() time.Time
}

// CreateArguments - the fields of a new sale
type CreateArguments struct {
	Seller     string
	ApprovalId uint64
	Contract   string
	AssetId    string
	Prices     sale.Prices
	TypeTag    string
	IsAuction  bool
}

// New - create a registry
func New(log *logger.L, ix *index.Index, currencies *currency.Set, refunds *refund.Engine, historyLength int) *Registry {
	if historyLength < 1 {
		historyLength = DefaultHistoryLength
	}
	return &Registry{
		log:           log,
		index:         ix,
		currencies:    currencies,
		refunds:       refunds,
		historyLength: historyLength,
		now:           time.Now,
	}
}

// SetClock - replace the time source used for creation timestamps
func (r *Registry) SetClock(now func() time.Time) {
	r.now = now
}

// HistoryLength - maximum bids retained for one currency
func (r *Registry) HistoryLength() int {
	return r.historyLength
}

// Create - list an asset
//
// an existing sale of the same asset is replaced, after its bids are refunded
func (r *Registry) Create(trx storage.Transaction, arguments *CreateArguments) (*sale.Sale, error) {

	if "" == arguments.Seller {
		return nil, fault.InvalidAccount
	}

	for c := range arguments.Prices {
		if !r.currencies.IsSupported(trx, c) {
			return nil, fault.UnsupportedCurrency
		}
	}

	if "" != arguments.TypeTag && !strings.Contains(arguments.AssetId, arguments.TypeTag) {
		return nil, fault.InvalidTypeTag
	}

	prices := make(sale.Prices, len(arguments.Prices))
	for c, p := range arguments.Prices {
		prices[c] = p
	}

	s := &sale.Sale{
		Seller:     arguments.Seller,
		ApprovalId: arguments.ApprovalId,
		Contract:   arguments.Contract,
		AssetId:    arguments.AssetId,
		Prices:     prices,
		Bids:       make(sale.Bids),
		CreatedAt:  uint64(r.now().UnixNano() / int64(time.Millisecond)),
		TypeTag:    arguments.TypeTag,
		IsAuction:  arguments.IsAuction,
	}

	if r.index.Has(trx, s.Key()) {
		previous, err := r.index.Remove(trx, s.Key())
		if nil != err {
			return nil, err
		}
		r.log.Infof("replace sale: %s  previous seller: %q", s.Key(), previous.Seller)
		if err := r.refunds.RefundAll(trx, previous.Bids); nil != err {
			return nil, err
		}
	}

	if err := r.index.Insert(trx, s); nil != err {
		return nil, err
	}

	r.log.Infof("create sale: %s  seller: %q  auction: %t", s.Key(), s.Seller, s.IsAuction)
	return s, nil
}

// UpdatePrice - set the price of one currency
func (r *Registry) UpdatePrice(trx storage.Transaction, key sale.Key, c currency.Id, price currency.Amount, caller string) error {
	s, err := r.index.Fetch(trx, key)
	if nil != err {
		return err
	}
	if caller != s.Seller {
		return fault.NotSaleOwner
	}
	if !r.currencies.IsSupported(trx, c) {
		return fault.UnsupportedCurrency
	}

	s.Prices[c] = price
	return r.index.Update(trx, s)
}

// Remove - delist a sale at the seller's request and refund its bids
func (r *Registry) Remove(trx storage.Transaction, key sale.Key, caller string) (*sale.Sale, error) {
	s, err := r.index.Fetch(trx, key)
	if nil != err {
		return nil, err
	}
	if caller != s.Seller {
		return nil, fault.NotSaleOwner
	}
	return r.removeAndRefund(trx, key)
}

// Take - remove a sale for settlement, its bids are left to the caller
func (r *Registry) Take(trx storage.Transaction, key sale.Key) (*sale.Sale, error) {
	return r.index.Remove(trx, key)
}

func (r *Registry) removeAndRefund(trx storage.Transaction, key sale.Key) (*sale.Sale, error) {
	s, err := r.index.Remove(trx, key)
	if nil != err {
		return nil, err
	}
	if err := r.refunds.RefundAll(trx, s.Bids); nil != err {
		return nil, err
	}
	r.log.Infof("remove sale: %s", key)
	return s, nil
}

// AdmitBid - add a bid that beats the current top bid
//
// the outbid owner is refunded in the same transaction
func (r *Registry) AdmitBid(trx storage.Transaction, key sale.Key, c currency.Id, amount currency.Amount, bidder string) error {
	s, err := r.index.Fetch(trx, key)
	if nil != err {
		return err
	}
	if bidder == s.Seller {
		return fault.SelfBid
	}

	top, found := s.TopBid(c)
	if found {
		if amount <= top.Price {
			return fault.BidTooLow
		}
		if err := r.refunds.Refund(trx, c, top); nil != err {
			return err
		}
	}

	bids := append(s.Bids[c], sale.Bid{Owner: bidder, Price: amount})
	if len(bids) > r.historyLength {
		bids = bids[len(bids)-r.historyLength:]
	}
	s.Bids[c] = bids

	r.log.Infof("bid: %s  %s %s  bidder: %q", key, amount, c, bidder)
	return r.index.Update(trx, s)
}

// TakeTopBid - detach the bids of one currency and return the highest
func (r *Registry) TakeTopBid(trx storage.Transaction, key sale.Key, c currency.Id, caller string) (sale.Bid, error) {
	s, err := r.index.Fetch(trx, key)
	if nil != err {
		return sale.Bid{}, err
	}
	if caller != s.Seller {
		return sale.Bid{}, fault.NotSaleOwner
	}
	top, found := s.TopBid(c)
	if !found {
		return sale.Bid{}, fault.BidNotFound
	}

	delete(s.Bids, c)
	if err := r.index.Update(trx, s); nil != err {
		return sale.Bid{}, err
	}
	return top, nil
}

// Get - a committed sale
func (r *Registry) Get(key sale.Key) (*sale.Sale, error) {
	return r.index.Get(key)
}

// Fetch - a sale as seen by a transaction
func (r *Registry) Fetch(trx storage.Transaction, key sale.Key) (*sale.Sale, error) {
	return r.index.Fetch(trx, key)
}

// SupportedCurrencies - the allow-list, native first
func (r *Registry) SupportedCurrencies() ([]currency.Id, error) {
	return r.currencies.List()
}

// AddCurrencies - extend the allow-list
func (r *Registry) AddCurrencies(trx storage.Transaction, ids ...currency.Id) ([]bool, error) {
	return r.currencies.Add(trx, ids...)
}

// BidHistory - retained bids of one currency, oldest first
func (r *Registry) BidHistory(key sale.Key, c currency.Id) ([]sale.Bid, error) {
	s, err := r.index.Get(key)
	if nil != err {
		return nil, err
	}
	bids := s.Bids[c]
	if nil == bids {
		bids = []sale.Bid{}
	}
	return bids, nil
}
