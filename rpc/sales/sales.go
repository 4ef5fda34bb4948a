// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sales

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/rpc/ratelimit"
	"github.com/bitmark-inc/marketd/sale"
)

// Sales
// -----

const (
	MaximumSalesCount = 100
	rateLimitSales    = 200
	rateBurstSales    = 100
)

// Sales - type for the RPC
type Sales struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Market  market.Operations
}

func New(log *logger.L, m market.Operations) *Sales {
	return &Sales{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSales, rateBurstSales),
		Market:  m,
	}
}

// SaleReply - a single sale and its key
type SaleReply struct {
	Key  sale.Key   `json:"key"`
	Sale *sale.Sale `json:"sale"`
}

// Approved - a collection contract approved the market to sell an asset
func (s *Sales) Approved(arguments *market.ApprovedArguments, reply *SaleReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log

	log.Infof("Sales.Approved: %+v", arguments)

	if nil == arguments || "" == arguments.Contract || "" == arguments.AssetId {
		return fault.MissingParameters
	}

	created, err := s.Market.OnApproved(arguments)
	if nil != err {
		return err
	}

	reply.Key = created.Key()
	reply.Sale = created

	return nil
}

// Get a sale
// ----------

// GetArguments - the key of the sale
type GetArguments struct {
	Key sale.Key `json:"key"`
}

// Get - return one sale
func (s *Sales) Get(arguments *GetArguments, reply *SaleReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Key) {
		return fault.InvalidKey
	}

	found, err := s.Market.Sale(arguments.Key)
	if nil != err {
		return err
	}

	reply.Key = arguments.Key
	reply.Sale = found

	return nil
}

// Update price
// ------------

// UpdatePriceArguments - seller sets a new price in one currency
type UpdatePriceArguments struct {
	Key      sale.Key        `json:"key"`
	Currency currency.Id     `json:"ft_token_id"`
	Price    currency.Amount `json:"price"`
	Caller   string          `json:"caller_id"`
}

// UpdatePriceReply - the price now in effect
type UpdatePriceReply struct {
	Key      sale.Key        `json:"key"`
	Currency currency.Id     `json:"ft_token_id"`
	Price    currency.Amount `json:"price"`
}

// UpdatePrice - change the price for a currency
func (s *Sales) UpdatePrice(arguments *UpdatePriceArguments, reply *UpdatePriceReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log

	log.Infof("Sales.UpdatePrice: %+v", arguments)

	if nil == arguments || 0 == len(arguments.Key) {
		return fault.InvalidKey
	}

	err := s.Market.UpdatePrice(arguments.Key, arguments.Currency, arguments.Price, arguments.Caller)
	if nil != err {
		return err
	}

	reply.Key = arguments.Key
	reply.Currency = arguments.Currency
	reply.Price = arguments.Price

	return nil
}

// Remove a sale
// -------------

// RemoveArguments - seller delists a sale
type RemoveArguments struct {
	Key    sale.Key `json:"key"`
	Caller string   `json:"caller_id"`
}

// RemoveReply - the key that was removed
type RemoveReply struct {
	Key sale.Key `json:"key"`
}

// Remove - delist a sale and refund its bids
func (s *Sales) Remove(arguments *RemoveArguments, reply *RemoveReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log

	log.Infof("Sales.Remove: %+v", arguments)

	if nil == arguments || 0 == len(arguments.Key) {
		return fault.InvalidKey
	}

	err := s.Market.RemoveSale(arguments.Key, arguments.Caller)
	if nil != err {
		return err
	}

	reply.Key = arguments.Key

	return nil
}

// List sales
// ----------

// ListArguments - at most one of seller, contract or type narrows the list
type ListArguments struct {
	Seller   string `json:"account_id"`
	Contract string `json:"nft_contract_id"`
	Type     string `json:"token_type"`
	Start    int    `json:"from_index"`
	Count    int    `json:"limit"`
}

// ListReply - a page of sales
type ListReply struct {
	Next  int          `json:"next"`
	Sales []*sale.Sale `json:"sales"`
}

// List - page through sales in key order
func (s *Sales) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(s.Limiter, arguments.Count, MaximumSalesCount); nil != err {
		return err
	}

	if arguments.Start < 0 {
		return fault.InvalidCursor
	}

	filters := 0
	for _, f := range []string{arguments.Seller, arguments.Contract, arguments.Type} {
		if "" != f {
			filters += 1
		}
	}
	if filters > 1 {
		return fault.InvalidMessage
	}

	var page []*sale.Sale
	var err error
	switch {
	case "" != arguments.Seller:
		page, err = s.Market.SalesBySeller(arguments.Seller, arguments.Start, arguments.Count)
	case "" != arguments.Contract:
		page, err = s.Market.SalesByContract(arguments.Contract, arguments.Start, arguments.Count)
	case "" != arguments.Type:
		page, err = s.Market.SalesByType(arguments.Type, arguments.Start, arguments.Count)
	default:
		page, err = s.Market.Sales(arguments.Start, arguments.Count)
	}
	if nil != err {
		return err
	}

	if nil == page {
		page = []*sale.Sale{}
	}
	reply.Sales = page
	reply.Next = arguments.Start + len(page)

	return nil
}

// Supply
// ------

// SupplyArguments - same filters as List
type SupplyArguments struct {
	Seller   string `json:"account_id"`
	Contract string `json:"nft_contract_id"`
	Type     string `json:"token_type"`
}

// SupplyReply - number of sales
type SupplyReply struct {
	Count int `json:"count"`
}

// Supply - count sales
func (s *Sales) Supply(arguments *SupplyArguments, reply *SupplyReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	switch {
	case "" != arguments.Seller:
		reply.Count = s.Market.SupplyBySeller(arguments.Seller)
	case "" != arguments.Contract:
		reply.Count = s.Market.SupplyByContract(arguments.Contract)
	case "" != arguments.Type:
		reply.Count = s.Market.SupplyByType(arguments.Type)
	default:
		reply.Count = s.Market.Supply()
	}

	return nil
}

// Bid history
// -----------

// BidsArguments - sale and currency
type BidsArguments struct {
	Key      sale.Key    `json:"key"`
	Currency currency.Id `json:"ft_token_id"`
}

// BidsReply - oldest first, the last one is the top bid
type BidsReply struct {
	Bids []sale.Bid `json:"bids"`
}

// Bids - the retained bid history in one currency
func (s *Sales) Bids(arguments *BidsArguments, reply *BidsReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Key) {
		return fault.InvalidKey
	}

	bids, err := s.Market.BidHistory(arguments.Key, arguments.Currency)
	if nil != err {
		return err
	}

	reply.Bids = bids

	return nil
}
