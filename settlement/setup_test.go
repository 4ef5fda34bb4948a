// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/index"
	"github.com/bitmark-inc/marketd/mocks"
	"github.com/bitmark-inc/marketd/refund"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/settlement"
	"github.com/bitmark-inc/marketd/storage"
)

const token = currency.Id("usdc.token")

type harness struct {
	t          *testing.T
	db         *storage.Database
	ctl        *gomock.Controller
	dispatcher *mocks.MockDispatcher
	registry   *registry.Registry
	settlement *settlement.Settlement
}

func setup(t *testing.T) *harness {
	fixtures.SetupTestLogger()
	log := logger.New(fixtures.LogCategory)

	db := fixtures.Database(t)
	ctl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctl)
	refunds := refund.New(log, dispatcher)

	ix := index.New(log, index.Handles{
		Sales:         db.Pool.Sales,
		SellerIndex:   db.Pool.SellerIndex,
		ContractIndex: db.Pool.ContractIndex,
		TypeIndex:     db.Pool.TypeIndex,
	})
	reg := registry.New(log, ix, currency.NewSet(db.Pool.Currencies), refunds, 1)

	h := &harness{
		t:          t,
		db:         db,
		ctl:        ctl,
		dispatcher: dispatcher,
		registry:   reg,
		settlement: settlement.New(log, reg, refunds, dispatcher, db.Pool.Pending, settlement.DefaultMaxPayees, time.Hour),
	}
	h.run(func(trx storage.Transaction) error {
		_, err := reg.AddCurrencies(trx, token)
		return err
	})
	return h
}

func (h *harness) teardown() {
	h.ctl.Finish()
	h.db.Close()
	fixtures.TeardownTestLogger()
}

func (h *harness) run(f func(trx storage.Transaction) error) error {
	trx := fixtures.Begin(h.t, h.db)
	defer trx.Abort()
	if err := f(trx); nil != err {
		return err
	}
	return trx.Commit()
}

// list cat#1 with the given prices
func (h *harness) list(prices sale.Prices, auction bool) sale.Key {
	var key sale.Key
	err := h.run(func(trx storage.Transaction) error {
		s, err := h.registry.Create(trx, &registry.CreateArguments{
			Seller:     "seller",
			ApprovalId: 1,
			Contract:   "nft.collection",
			AssetId:    "cat#1",
			Prices:     prices,
			IsAuction:  auction,
		})
		if nil != err {
			return err
		}
		key = s.Key()
		return nil
	})
	if nil != err {
		h.t.Fatalf("list error: %s", err)
	}
	return key
}

func (h *harness) offer(key sale.Key, buyer string, deposit currency.Amount) (*settlement.Task, error) {
	var task *settlement.Task
	err := h.run(func(trx storage.Transaction) error {
		var err error
		task, err = h.settlement.Offer(trx, key, buyer, deposit)
		return err
	})
	return task, err
}

func (h *harness) resolve(task *settlement.Task, result string, callErr error) settlement.Resolution {
	var r settlement.Resolution
	err := h.run(func(trx storage.Transaction) error {
		var err error
		r, err = h.settlement.Resolve(trx, task, []byte(result), callErr)
		return err
	})
	if nil != err {
		h.t.Fatalf("resolve error: %s", err)
	}
	return r
}
