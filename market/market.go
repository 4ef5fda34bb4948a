// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - the marketplace entry points
//
// every entry point holds the market lock and runs in one storage
// transaction which is committed only if the whole call succeeds
package market

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/collection"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/index"
	"github.com/bitmark-inc/marketd/payment"
	"github.com/bitmark-inc/marketd/quota"
	"github.com/bitmark-inc/marketd/refund"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/settlement"
	"github.com/bitmark-inc/marketd/storage"
)

// Configuration - market parameters
type Configuration struct {
	Owner              string
	BidHistoryLength   int
	StoragePerSale     currency.Amount
	MaxPayees          int
	SettlementTimeout  time.Duration
	ResolutionLifetime time.Duration
	QueueSize          int
	Currencies         []currency.Id
}

// Market - explicitly constructed market state
type Market struct {
	sync.Mutex

	log        *logger.L
	owner      string
	db         *storage.Database
	outbox     *payment.Outbox
	registry   *registry.Registry
	settlement *settlement.Settlement
	quota      *quota.Quota
	worker     *settlement.Worker
}

// ApprovedArguments - the approval callback from a collection contract
type ApprovedArguments struct {
	Contract   string `json:"nft_contract_id"` // direct caller
	Signer     string `json:"signer_id"`
	AssetId    string `json:"token_id"`
	Owner      string `json:"owner_id"`
	ApprovalId uint64 `json:"approval_id"`
	Msg        string `json:"msg"`
}

// SaleArguments - the msg of an approval
type SaleArguments struct {
	SaleConditions sale.Prices `json:"sale_conditions"`
	TokenType      string      `json:"token_type"`
	IsAuction      bool        `json:"is_auction"`
}

// New - build a market on an open database
func New(log *logger.L, db *storage.Database, directory *collection.Directory, conf *Configuration) (*Market, error) {

	outbox := payment.NewOutbox(logger.New("outbox"), db)
	refunds := refund.New(logger.New("refund"), outbox)

	ix := index.New(logger.New("index"), index.Handles{
		Sales:         db.Pool.Sales,
		SellerIndex:   db.Pool.SellerIndex,
		ContractIndex: db.Pool.ContractIndex,
		TypeIndex:     db.Pool.TypeIndex,
	})
	reg := registry.New(logger.New("registry"), ix, currency.NewSet(db.Pool.Currencies), refunds, conf.BidHistoryLength)

	timeout := conf.SettlementTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	lifetime := conf.ResolutionLifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	queueSize := conf.QueueSize
	if queueSize <= 0 {
		queueSize = 100
	}

	m := &Market{
		log:        log,
		owner:      conf.Owner,
		db:         db,
		outbox:     outbox,
		registry:   reg,
		settlement: settlement.New(logger.New("settlement"), reg, refunds, outbox, db.Pool.Pending, conf.MaxPayees, lifetime),
		quota:      quota.New(logger.New("quota"), db.Pool.Deposits, outbox, conf.StoragePerSale),
	}
	m.worker = settlement.NewWorker(logger.New("worker"), conf.Owner, directory, m, timeout, queueSize)

	if 0 != len(conf.Currencies) {
		if _, err := m.AddCurrencies(conf.Owner, conf.Currencies...); nil != err {
			return nil, err
		}
	}
	return m, nil
}

// Worker - the settlement background process
func (m *Market) Worker() *settlement.Worker {
	return m.worker
}

// Outbox - transfers waiting for publication
func (m *Market) Outbox() *payment.Outbox {
	return m.outbox
}

// Recover - resubmit settlements interrupted by a restart
//
// the worker must be running or the queue must have room for all of them
func (m *Market) Recover() (int, error) {
	tasks, err := m.settlement.Pending()
	if nil != err {
		return 0, err
	}
	for _, task := range tasks {
		m.log.Warnf("recover task: %s", task.Id)
		m.settlement.Track(task)
		m.worker.Submit(task)
	}
	return len(tasks), nil
}

// run f under the lock in a transaction
func (m *Market) update(f func(trx storage.Transaction) error) error {
	m.Lock()
	defer m.Unlock()

	trx, err := m.db.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if err := f(trx); nil != err {
		return err
	}
	return trx.Commit()
}

// run a Phase 1 step, the task is queued only after its commit
func (m *Market) settle(f func(trx storage.Transaction) (*settlement.Task, error)) (*settlement.Ticket, error) {
	var task *settlement.Task
	var ticket *settlement.Ticket
	err := m.update(func(trx storage.Transaction) error {
		var err error
		task, err = f(trx)
		return err
	})
	if nil != err || nil == task {
		return nil, err
	}

	ticket = m.settlement.Track(task)
	m.worker.Submit(task)
	return ticket, nil
}

// OnApproved - a collection contract approved the market for an asset
func (m *Market) OnApproved(arguments *ApprovedArguments) (*sale.Sale, error) {
	if arguments.Contract == arguments.Signer {
		return nil, fault.NotCrossContractCall
	}
	if arguments.Owner != arguments.Signer {
		return nil, fault.NotSigner
	}

	var s *sale.Sale
	err := m.update(func(trx storage.Transaction) error {
		err := m.quota.Require(trx, arguments.Signer, m.registry.SupplyBySeller(arguments.Signer))
		if nil != err {
			return err
		}

		var args SaleArguments
		if err := json.Unmarshal([]byte(arguments.Msg), &args); nil != err {
			return fault.InvalidMessage
		}

		s, err = m.registry.Create(trx, &registry.CreateArguments{
			Seller:     arguments.Owner,
			ApprovalId: arguments.ApprovalId,
			Contract:   arguments.Contract,
			AssetId:    arguments.AssetId,
			Prices:     args.SaleConditions,
			TypeTag:    args.TokenType,
			IsAuction:  args.IsAuction,
		})
		return err
	})
	if nil != err {
		return nil, err
	}
	return s, nil
}

// UpdatePrice - seller changes the price in one currency
func (m *Market) UpdatePrice(key sale.Key, c currency.Id, price currency.Amount, caller string) error {
	return m.update(func(trx storage.Transaction) error {
		return m.registry.UpdatePrice(trx, key, c, price, caller)
	})
}

// RemoveSale - seller delists, all top bids are refunded
func (m *Market) RemoveSale(key sale.Key, caller string) error {
	return m.update(func(trx storage.Transaction) error {
		_, err := m.registry.Remove(trx, key, caller)
		return err
	})
}

// Offer - native deposit, nil ticket when it was admitted as a bid
func (m *Market) Offer(key sale.Key, buyer string, deposit currency.Amount) (*settlement.Ticket, error) {
	return m.settle(func(trx storage.Transaction) (*settlement.Task, error) {
		return m.settlement.Offer(trx, key, buyer, deposit)
	})
}

// OnTransfer - fungible token deposit naming a sale in msg
func (m *Market) OnTransfer(c currency.Id, sender string, amount currency.Amount, msg string) (*settlement.Ticket, error) {
	return m.settle(func(trx storage.Transaction) (*settlement.Task, error) {
		return m.settlement.OnTransfer(trx, c, sender, amount, []byte(msg))
	})
}

// AcceptOffer - seller accepts the top bid in a currency
func (m *Market) AcceptOffer(key sale.Key, c currency.Id, caller string) (*settlement.Ticket, error) {
	return m.settle(func(trx storage.Transaction) (*settlement.Task, error) {
		return m.settlement.AcceptOffer(trx, key, c, caller)
	})
}

// ResolvePurchase - Phase 2, called by the worker
//
// a failed resolution leaves the task pending and it is run again
func (m *Market) ResolvePurchase(task *settlement.Task, result []byte, callErr error) {
	var r settlement.Resolution
	err := m.update(func(trx storage.Transaction) error {
		var err error
		r, err = m.settlement.Resolve(trx, task, result, callErr)
		return err
	})
	if nil != err {
		m.log.Criticalf("task: %s  resolve error: %s", task.Id, err)
		m.worker.Retry(task)
		return
	}
	m.settlement.Deliver(r)
}

// StorageDeposit - prepay for sales
func (m *Market) StorageDeposit(account string, amount currency.Amount) (currency.Amount, error) {
	var balance currency.Amount
	err := m.update(func(trx storage.Transaction) error {
		var err error
		balance, err = m.quota.Deposit(trx, account, amount)
		return err
	})
	return balance, err
}

// StorageWithdraw - take back the deposit not used by active sales
func (m *Market) StorageWithdraw(account string) (currency.Amount, error) {
	var excess currency.Amount
	err := m.update(func(trx storage.Transaction) error {
		var err error
		excess, err = m.quota.Withdraw(trx, account, m.registry.SupplyBySeller(account))
		return err
	})
	return excess, err
}

// AddCurrencies - market owner extends the allow-list
func (m *Market) AddCurrencies(caller string, ids ...currency.Id) ([]bool, error) {
	if caller != m.owner {
		return nil, fault.NotContractOwner
	}
	var added []bool
	err := m.update(func(trx storage.Transaction) error {
		var err error
		added, err = m.registry.AddCurrencies(trx, ids...)
		return err
	})
	return added, err
}
