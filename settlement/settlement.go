// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settlement - purchase of a sale in two phases
//
// Phase 1 removes the sale and records a task in the pending pool,
// the caller commits this before the collection contract is asked to
// transfer the asset. Phase 2 validates the payout advisory returned
// by that call and either pays everybody or refunds the buyer.
package settlement

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/payment"
	"github.com/bitmark-inc/marketd/refund"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/storage"
)

// Settlement - offers, accepted bids and their resolution
type Settlement struct {
	sync.Mutex

	log        *logger.L
	registry   *registry.Registry
	refunds    *refund.Engine
	dispatcher payment.Dispatcher
	pending    *storage.PoolHandle
	maxPayees  int

	tickets     map[Id]*Ticket
	resolutions *cache.Cache
}

// TransferMessage - the msg of a fungible token transfer naming the sale
type TransferMessage struct {
	Contract string `json:"nft_contract_id"`
	AssetId  string `json:"token_id"`
}

// New - create the settlement protocol
func New(log *logger.L, reg *registry.Registry, refunds *refund.Engine, dispatcher payment.Dispatcher, pending *storage.PoolHandle, maxPayees int, keep time.Duration) *Settlement {
	if maxPayees <= 0 {
		maxPayees = DefaultMaxPayees
	}
	return &Settlement{
		log:         log,
		registry:    reg,
		refunds:     refunds,
		dispatcher:  dispatcher,
		pending:     pending,
		maxPayees:   maxPayees,
		tickets:     make(map[Id]*Ticket),
		resolutions: cache.New(keep, keep/2+time.Minute),
	}
}

// Offer - a native deposit for a sale
//
// returns a task when the deposit buys the sale, nil when it became a bid
func (s *Settlement) Offer(trx storage.Transaction, key sale.Key, buyer string, deposit currency.Amount) (*Task, error) {
	return s.offer(trx, key, currency.Native, buyer, deposit)
}

// OnTransfer - a fungible token deposit, msg names the sale
func (s *Settlement) OnTransfer(trx storage.Transaction, c currency.Id, sender string, amount currency.Amount, msg []byte) (*Task, error) {
	if c.IsNative() {
		return nil, fault.InvalidCurrency
	}

	var m TransferMessage
	if err := json.Unmarshal(msg, &m); nil != err {
		return nil, fault.InvalidMessage
	}
	if "" == m.Contract || "" == m.AssetId {
		return nil, fault.InvalidMessage
	}

	return s.offer(trx, sale.NewKey(m.Contract, m.AssetId), c, sender, amount)
}

func (s *Settlement) offer(trx storage.Transaction, key sale.Key, c currency.Id, buyer string, deposit currency.Amount) (*Task, error) {
	if 0 == deposit {
		return nil, fault.InvalidDeposit
	}

	item, err := s.registry.Fetch(trx, key)
	if nil != err {
		return nil, err
	}
	if buyer == item.Seller {
		return nil, fault.SelfBid
	}
	price, ok := item.Price(c)
	if !ok {
		return nil, fault.NotForSale
	}

	if !item.IsAuction && deposit >= price {
		return s.purchase(trx, key, c, buyer, deposit)
	}

	if item.IsAuction && deposit < price {
		return nil, fault.BelowReserve
	}

	return nil, s.registry.AdmitBid(trx, key, c, deposit, buyer)
}

// AcceptOffer - the seller takes the top bid of a currency
func (s *Settlement) AcceptOffer(trx storage.Transaction, key sale.Key, c currency.Id, caller string) (*Task, error) {
	bid, err := s.registry.TakeTopBid(trx, key, c, caller)
	if nil != err {
		return nil, err
	}
	return s.purchase(trx, key, c, bid.Owner, bid.Price)
}

// Phase 1
func (s *Settlement) purchase(trx storage.Transaction, key sale.Key, c currency.Id, buyer string, price currency.Amount) (*Task, error) {
	item, err := s.registry.Take(trx, key)
	if nil != err {
		return nil, err
	}

	task := newTask(item, c, buyer, price, s.maxPayees)
	packed, err := task.Pack()
	if nil != err {
		return nil, err
	}
	trx.Put(s.pending, task.Id[:], packed)

	s.log.Infof("purchase: %s  task: %s  buyer: %q  price: %s %s", key, task.Id, buyer, price, c)
	return task, nil
}

// Track - a ticket for a committed task
func (s *Settlement) Track(task *Task) *Ticket {
	s.Lock()
	defer s.Unlock()

	if t, ok := s.tickets[task.Id]; ok {
		return t
	}
	t := NewTicket(task)
	s.tickets[task.Id] = t
	return t
}

// Pending - tasks committed but not resolved
func (s *Settlement) Pending() ([]*Task, error) {
	tasks := []*Task{}
	err := s.pending.NewFetchCursor().Map(func(key []byte, value []byte) error {
		task, err := UnpackTask(value)
		if nil != err {
			return err
		}
		tasks = append(tasks, task)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return tasks, nil
}

// Resolution - a recent resolution
func (s *Settlement) Resolution(id Id) (Resolution, bool) {
	r, found := s.resolutions.Get(id.String())
	if !found {
		return Resolution{}, false
	}
	return r.(Resolution), true
}

// Deliver - publish a committed resolution to its ticket and the cache
func (s *Settlement) Deliver(r Resolution) {
	s.resolutions.Set(r.TaskId.String(), r, cache.DefaultExpiration)

	s.Lock()
	t, ok := s.tickets[r.TaskId]
	delete(s.tickets, r.TaskId)
	s.Unlock()

	if ok {
		t.done <- r
	}
}
