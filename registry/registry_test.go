// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/index"
	"github.com/bitmark-inc/marketd/mocks"
	"github.com/bitmark-inc/marketd/refund"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/storage"
)

const token = currency.Id("usdc.token")

type harness struct {
	t          *testing.T
	db         *storage.Database
	ctl        *gomock.Controller
	dispatcher *mocks.MockDispatcher
	registry   *registry.Registry
}

func setup(t *testing.T, historyLength int) *harness {
	fixtures.SetupTestLogger()
	log := logger.New(fixtures.LogCategory)

	db := fixtures.Database(t)
	ctl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctl)

	ix := index.New(log, index.Handles{
		Sales:         db.Pool.Sales,
		SellerIndex:   db.Pool.SellerIndex,
		ContractIndex: db.Pool.ContractIndex,
		TypeIndex:     db.Pool.TypeIndex,
	})
	r := registry.New(log, ix, currency.NewSet(db.Pool.Currencies), refund.New(log, dispatcher), historyLength)
	r.SetClock(func() time.Time {
		return time.Unix(1600000000, 0)
	})

	h := &harness{
		t:          t,
		db:         db,
		ctl:        ctl,
		dispatcher: dispatcher,
		registry:   r,
	}
	h.run(func(trx storage.Transaction) error {
		_, err := r.AddCurrencies(trx, token)
		return err
	})
	return h
}

func (h *harness) teardown() {
	h.ctl.Finish()
	h.db.Close()
	fixtures.TeardownTestLogger()
}

// run f in a transaction, committing only on success
func (h *harness) run(f func(trx storage.Transaction) error) error {
	trx := fixtures.Begin(h.t, h.db)
	defer trx.Abort()
	if err := f(trx); nil != err {
		return err
	}
	return trx.Commit()
}

func (h *harness) create(arguments *registry.CreateArguments) (*sale.Sale, error) {
	var s *sale.Sale
	err := h.run(func(trx storage.Transaction) error {
		var err error
		s, err = h.registry.Create(trx, arguments)
		return err
	})
	return s, err
}

func (h *harness) bid(key sale.Key, c currency.Id, amount currency.Amount, bidder string) error {
	return h.run(func(trx storage.Transaction) error {
		return h.registry.AdmitBid(trx, key, c, amount, bidder)
	})
}

func cat(auction bool) *registry.CreateArguments {
	return &registry.CreateArguments{
		Seller:     "seller",
		ApprovalId: 3,
		Contract:   "nft.collection",
		AssetId:    "cat#1",
		Prices:     sale.Prices{currency.Native: 100},
		TypeTag:    "cat",
		IsAuction:  auction,
	}
}

func TestCreate(t *testing.T) {
	h := setup(t, 1)
	defer h.teardown()

	s, err := h.create(cat(false))
	assert.Nil(t, err, "create error")
	assert.Equal(t, uint64(1600000000000), s.CreatedAt, "wrong timestamp")

	stored, err := h.registry.Get(sale.NewKey("nft.collection", "cat#1"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, s, stored, "stored sale differs")
	assert.Equal(t, 1, h.registry.SupplyBySeller("seller"), "seller index")
	assert.Equal(t, 1, h.registry.SupplyByContract("nft.collection"), "contract index")
	assert.Equal(t, 1, h.registry.SupplyByType("cat"), "type index")
}

func TestCreateRejects(t *testing.T) {
	h := setup(t, 1)
	defer h.teardown()

	arguments := cat(false)
	arguments.Prices = sale.Prices{"unknown.token": 5}
	_, err := h.create(arguments)
	assert.Equal(t, fault.UnsupportedCurrency, err, "wrong currency error")

	arguments = cat(false)
	arguments.TypeTag = "dog"
	_, err = h.create(arguments)
	assert.Equal(t, fault.InvalidTypeTag, err, "wrong tag error")

	assert.Equal(t, 0, h.registry.Supply(), "sale stored after failure")
}

func TestCreateReplacesAndRefunds(t *testing.T) {
	h := setup(t, 1)
	defer h.teardown()

	s, _ := h.create(cat(true))

	h.dispatcher.EXPECT().Dispatch(gomock.Any(), mocks.TransferOf(currency.Native, "alice", 120)).Return(nil).Times(1)
	assert.Nil(t, h.bid(s.Key(), currency.Native, 120, "alice"), "bid error")

	arguments := cat(false)
	arguments.ApprovalId = 4
	replaced, err := h.create(arguments)
	assert.Nil(t, err, "replace error")
	assert.Equal(t, uint64(4), replaced.ApprovalId, "wrong approval")
	assert.Equal(t, 1, h.registry.Supply(), "duplicate sale")
	assert.Equal(t, 0, len(replaced.Bids), "bids carried over")
}

func TestUpdatePrice(t *testing.T) {
	h := setup(t, 1)
	defer h.teardown()

	s, _ := h.create(cat(false))
	key := s.Key()

	update := func(c currency.Id, price currency.Amount, caller string) error {
		return h.run(func(trx storage.Transaction) error {
			return h.registry.UpdatePrice(trx, key, c, price, caller)
		})
	}

	assert.Equal(t, fault.NotSaleOwner, update(currency.Native, 5, "mallory"), "non owner updated")
	assert.Equal(t, fault.UnsupportedCurrency, update("unknown.token", 5, "seller"), "unsupported currency")
	assert.Nil(t, update(token, 7, "seller"), "update error")
	assert.Nil(t, update(token, 7, "seller"), "repeated update error")

	stored, _ := h.registry.Get(key)
	assert.Equal(t, sale.Prices{currency.Native: 100, token: 7}, stored.Prices, "wrong prices")
}

// reserve 100, A bids 100, B bids 90 and fails, B bids 150 and A is refunded
func TestAuctionOutbid(t *testing.T) {
	h := setup(t, 1)
	defer h.teardown()

	s, _ := h.create(cat(true))
	key := s.Key()

	assert.Nil(t, h.bid(key, currency.Native, 100, "A"), "first bid")
	assert.Equal(t, fault.BidTooLow, h.bid(key, currency.Native, 90, "B"), "low bid admitted")
	assert.Equal(t, fault.BidTooLow, h.bid(key, currency.Native, 100, "B"), "equal bid admitted")

	history, _ := h.registry.BidHistory(key, currency.Native)
	assert.Equal(t, []sale.Bid{{Owner: "A", Price: 100}}, history, "failed bid changed state")

	h.dispatcher.EXPECT().Dispatch(gomock.Any(), mocks.TransferOf(currency.Native, "A", 100)).Return(nil).Times(1)
	assert.Nil(t, h.bid(key, currency.Native, 150, "B"), "outbid")

	history, _ = h.registry.BidHistory(key, currency.Native)
	assert.Equal(t, []sale.Bid{{Owner: "B", Price: 150}}, history, "wrong history")
}

func TestBidHistoryLength(t *testing.T) {
	h := setup(t, 2)
	defer h.teardown()

	s, _ := h.create(cat(true))
	key := s.Key()

	h.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	for i, bidder := range []string{"A", "B", "C"} {
		assert.Nil(t, h.bid(key, token, currency.Amount(10*(i+1)), bidder), "bid error")
	}

	history, _ := h.registry.BidHistory(key, token)
	assert.Equal(t, []sale.Bid{{Owner: "B", Price: 20}, {Owner: "C", Price: 30}}, history, "wrong history")

	history, err := h.registry.BidHistory(key, currency.Native)
	assert.Nil(t, err, "history error")
	assert.Equal(t, 0, len(history), "unexpected native bids")
}

func TestSelfBid(t *testing.T) {
	h := setup(t, 1)
	defer h.teardown()

	s, _ := h.create(cat(true))
	assert.Equal(t, fault.SelfBid, h.bid(s.Key(), currency.Native, 500, "seller"), "seller bid admitted")
}

func TestRemoveRefundsTopBids(t *testing.T) {
	h := setup(t, 3)
	defer h.teardown()

	s, _ := h.create(cat(true))
	key := s.Key()

	h.dispatcher.EXPECT().Dispatch(gomock.Any(), mocks.TransferOf(currency.Native, "A", 100)).Return(nil).Times(1)
	assert.Nil(t, h.bid(key, currency.Native, 100, "A"), "bid error")
	assert.Nil(t, h.bid(key, currency.Native, 110, "B"), "bid error")
	assert.Nil(t, h.bid(key, token, 5, "C"), "bid error")

	remove := func(caller string) error {
		return h.run(func(trx storage.Transaction) error {
			_, err := h.registry.Remove(trx, key, caller)
			return err
		})
	}
	assert.Equal(t, fault.NotSaleOwner, remove("A"), "non owner removed")

	gomock.InOrder(
		h.dispatcher.EXPECT().Dispatch(gomock.Any(), mocks.TransferOf(currency.Native, "B", 110)).Return(nil).Times(1),
		h.dispatcher.EXPECT().Dispatch(gomock.Any(), mocks.TransferOf(token, "C", 5)).Return(nil).Times(1),
	)
	assert.Nil(t, remove("seller"), "remove error")

	assert.Equal(t, 0, h.registry.Supply(), "sale remains")
	assert.Equal(t, 0, h.registry.SupplyBySeller("seller"), "seller entry remains")
	assert.Equal(t, 0, h.registry.SupplyByContract("nft.collection"), "contract entry remains")
	assert.Equal(t, 0, h.registry.SupplyByType("cat"), "type entry remains")
	assert.Equal(t, fault.SaleNotFound, remove("seller"), "second remove")
}

func TestTakeTopBid(t *testing.T) {
	h := setup(t, 1)
	defer h.teardown()

	s, _ := h.create(cat(true))
	key := s.Key()
	assert.Nil(t, h.bid(key, currency.Native, 150, "B"), "bid error")

	take := func(c currency.Id, caller string) (sale.Bid, error) {
		var bid sale.Bid
		err := h.run(func(trx storage.Transaction) error {
			var err error
			bid, err = h.registry.TakeTopBid(trx, key, c, caller)
			return err
		})
		return bid, err
	}

	_, err := take(currency.Native, "B")
	assert.Equal(t, fault.NotSaleOwner, err, "non owner accepted")
	_, err = take(token, "seller")
	assert.Equal(t, fault.BidNotFound, err, "missing bid accepted")

	bid, err := take(currency.Native, "seller")
	assert.Nil(t, err, "take error")
	assert.Equal(t, sale.Bid{Owner: "B", Price: 150}, bid, "wrong bid")

	stored, _ := h.registry.Get(key)
	_, found := stored.TopBid(currency.Native)
	assert.False(t, found, "bid still on sale")
}

func TestSupportedCurrencies(t *testing.T) {
	h := setup(t, 1)
	defer h.teardown()

	ids, err := h.registry.SupportedCurrencies()
	assert.Nil(t, err, "list error")
	assert.Equal(t, []currency.Id{currency.Native, token}, ids, "wrong currencies")
}
