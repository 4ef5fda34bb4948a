// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sales_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/mocks"
	"github.com/bitmark-inc/marketd/rpc/sales"
	"github.com/bitmark-inc/marketd/sale"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockOperations, *sales.Sales) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	m := mocks.NewMockOperations(ctl)

	return ctl, m, sales.New(logger.New(fixtures.LogCategory), m)
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestSalesApproved(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	arg := market.ApprovedArguments{
		Contract:   "nft.collection",
		Signer:     "seller",
		AssetId:    "cat#1",
		Owner:      "seller",
		ApprovalId: 3,
		Msg:        `{"sale_conditions":{"native":"100"},"token_type":"cat"}`,
	}
	created := &sale.Sale{
		Seller:     "seller",
		ApprovalId: 3,
		Contract:   "nft.collection",
		AssetId:    "cat#1",
		Prices:     sale.Prices{currency.Native: 100},
		TypeTag:    "cat",
	}

	m.EXPECT().OnApproved(&arg).Return(created, nil).Times(1)

	var reply sales.SaleReply
	err := s.Approved(&arg, &reply)
	assert.Nil(t, err, "wrong Approved")
	assert.Equal(t, sale.NewKey("nft.collection", "cat#1"), reply.Key, "wrong key")
	assert.Equal(t, created, reply.Sale, "wrong sale")
}

func TestSalesApprovedMissingContract(t *testing.T) {
	ctl, _, s := setup(t)
	defer teardown(ctl)

	var reply sales.SaleReply
	err := s.Approved(&market.ApprovedArguments{AssetId: "cat#1"}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestSalesUpdateAndRemove(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	key := sale.NewKey("nft.collection", "cat#1")

	m.EXPECT().UpdatePrice(key, currency.Native, currency.Amount(250), "seller").Return(nil).Times(1)
	m.EXPECT().RemoveSale(key, "other").Return(fault.NotSaleOwner).Times(1)

	var updated sales.UpdatePriceReply
	err := s.UpdatePrice(&sales.UpdatePriceArguments{
		Key:      key,
		Currency: currency.Native,
		Price:    250,
		Caller:   "seller",
	}, &updated)
	assert.Nil(t, err, "wrong UpdatePrice")
	assert.Equal(t, currency.Amount(250), updated.Price, "wrong price")

	var removed sales.RemoveReply
	err = s.Remove(&sales.RemoveArguments{Key: key, Caller: "other"}, &removed)
	assert.Equal(t, fault.NotSaleOwner, err, "wrong error")
	assert.Nil(t, removed.Key, "key set on failure")
}

func TestSalesList(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	page := []*sale.Sale{
		{Seller: "seller", Contract: "nft.collection", AssetId: "cat#1"},
		{Seller: "seller", Contract: "nft.collection", AssetId: "cat#2"},
	}

	m.EXPECT().SalesBySeller("seller", 4, 2).Return(page, nil).Times(1)
	m.EXPECT().Sales(0, 10).Return(nil, nil).Times(1)

	var reply sales.ListReply
	err := s.List(&sales.ListArguments{Seller: "seller", Start: 4, Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 6, reply.Next, "wrong next")
	assert.Equal(t, page, reply.Sales, "wrong page")

	var empty sales.ListReply
	err = s.List(&sales.ListArguments{Count: 10}, &empty)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 0, empty.Next, "wrong next")
	assert.NotNil(t, empty.Sales, "nil page")
	assert.Equal(t, 0, len(empty.Sales), "wrong page length")
}

func TestSalesListRejects(t *testing.T) {
	ctl, _, s := setup(t)
	defer teardown(ctl)

	var reply sales.ListReply
	err := s.List(&sales.ListArguments{Count: sales.MaximumSalesCount + 1}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong count error")

	err = s.List(&sales.ListArguments{Start: -1, Count: 1}, &reply)
	assert.Equal(t, fault.InvalidCursor, err, "wrong cursor error")

	err = s.List(&sales.ListArguments{Seller: "a", Type: "cat", Count: 1}, &reply)
	assert.Equal(t, fault.InvalidMessage, err, "wrong filter error")
}

func TestSalesSupply(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	m.EXPECT().Supply().Return(7).Times(1)
	m.EXPECT().SupplyByType("cat").Return(2).Times(1)

	var reply sales.SupplyReply
	err := s.Supply(&sales.SupplyArguments{}, &reply)
	assert.Nil(t, err, "wrong Supply")
	assert.Equal(t, 7, reply.Count, "wrong total")

	err = s.Supply(&sales.SupplyArguments{Type: "cat"}, &reply)
	assert.Nil(t, err, "wrong Supply")
	assert.Equal(t, 2, reply.Count, "wrong type count")
}

func TestSalesBids(t *testing.T) {
	ctl, m, s := setup(t)
	defer teardown(ctl)

	key := sale.NewKey("nft.collection", "cat#1")
	bids := []sale.Bid{{Owner: "A", Price: 100}, {Owner: "B", Price: 150}}

	m.EXPECT().BidHistory(key, currency.Native).Return(bids, nil).Times(1)
	m.EXPECT().Sale(key).Return(nil, fault.SaleNotFound).Times(1)

	var reply sales.BidsReply
	err := s.Bids(&sales.BidsArguments{Key: key, Currency: currency.Native}, &reply)
	assert.Nil(t, err, "wrong Bids")
	assert.Equal(t, bids, reply.Bids, "wrong bids")

	var got sales.SaleReply
	err = s.Get(&sales.GetArguments{Key: key}, &got)
	assert.Equal(t, fault.SaleNotFound, err, "wrong Get error")
}
