// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package quota - prepaid storage for listed sales
package quota

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/payment"
	"github.com/bitmark-inc/marketd/storage"
)

// DefaultPerSale - native amount reserved by one sale
const DefaultPerSale = currency.Amount(1000)

// Quota - per account storage deposits
type Quota struct {
	log        *logger.L
	pool       *storage.PoolHandle
	dispatcher payment.Dispatcher
	perSale    currency.Amount
}

// New - create quota bookkeeping on a deposits pool
func New(log *logger.L, pool *storage.PoolHandle, dispatcher payment.Dispatcher, perSale currency.Amount) *Quota {
	if 0 == perSale {
		perSale = DefaultPerSale
	}
	return &Quota{
		log:        log,
		pool:       pool,
		dispatcher: dispatcher,
		perSale:    perSale,
	}
}

// Minimum - cost of a single sale
func (q *Quota) Minimum() currency.Amount {
	return q.perSale
}

// Balance - committed deposit of an account
func (q *Quota) Balance(account string) currency.Amount {
	n, _ := q.pool.GetN([]byte(account))
	return currency.Amount(n)
}

// Deposit - add to an account's deposit, at least one sale's worth
func (q *Quota) Deposit(trx storage.Transaction, account string, amount currency.Amount) (currency.Amount, error) {
	if "" == account {
		return 0, fault.InvalidAccount
	}
	if amount < q.perSale {
		return 0, fault.DepositTooSmall
	}

	n, _ := trx.GetN(q.pool, []byte(account))
	balance := currency.Amount(n) + amount
	if balance < amount {
		return 0, fault.InvalidAmount
	}
	trx.PutN(q.pool, []byte(account), uint64(balance))

	q.log.Infof("deposit: %q  amount: %s  balance: %s", account, amount, balance)
	return balance, nil
}

// Withdraw - return everything above what the active sales use
func (q *Quota) Withdraw(trx storage.Transaction, account string, activeSales int) (currency.Amount, error) {
	n, _ := trx.GetN(q.pool, []byte(account))
	paid := currency.Amount(n)
	inUse := currency.Amount(activeSales) * q.perSale

	excess, ok := paid.Sub(inUse)
	if !ok || 0 == excess {
		return 0, nil
	}

	transfer := payment.For(currency.Native).Transfer(account, excess, "")
	if err := q.dispatcher.Dispatch(trx, transfer); nil != err {
		return 0, err
	}

	if 0 == inUse {
		trx.Delete(q.pool, []byte(account))
	} else {
		trx.PutN(q.pool, []byte(account), uint64(inUse))
	}

	q.log.Infof("withdraw: %q  amount: %s", account, excess)
	return excess, nil
}

// Require - room for one more sale
func (q *Quota) Require(trx storage.Transaction, account string, activeSales int) error {
	n, _ := trx.GetN(q.pool, []byte(account))
	required := currency.Amount(activeSales+1) * q.perSale
	if currency.Amount(n) < required {
		return fault.InsufficientQuota
	}
	return nil
}
