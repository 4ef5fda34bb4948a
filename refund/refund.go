// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package refund - return bid funds to their owners
package refund

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/payment"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/storage"
)

// Engine - issues refunds through a dispatcher
type Engine struct {
	log        *logger.L
	dispatcher payment.Dispatcher
}

// New - create a refund engine
func New(log *logger.L, dispatcher payment.Dispatcher) *Engine {
	return &Engine{
		log:        log,
		dispatcher: dispatcher,
	}
}

// Refund - return a bid to its owner
//
// the transfer is not confirmed, a failure downstream is not reported back
func (e *Engine) Refund(trx storage.Transaction, c currency.Id, bid sale.Bid) error {
	e.log.Infof("refund: %s %s to: %q", bid.Price, c, bid.Owner)
	return e.dispatcher.Dispatch(trx, payment.For(c).Transfer(bid.Owner, bid.Price, ""))
}

// RefundAll - refund the highest bid of every currency
//
// lower bids were refunded when they were outbid
func (e *Engine) RefundAll(trx storage.Transaction, bids sale.Bids) error {
	currencies := make([]string, 0, len(bids))
	for c, list := range bids {
		if 0 != len(list) {
			currencies = append(currencies, string(c))
		}
	}
	sort.Strings(currencies)

	for _, c := range currencies {
		list := bids[currency.Id(c)]
		if err := e.Refund(trx, currency.Id(c), list[len(list)-1]); nil != err {
			return err
		}
	}
	return nil
}
