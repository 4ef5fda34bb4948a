// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"sort"

	"github.com/bitmark-inc/marketd/collection"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/payment"
	"github.com/bitmark-inc/marketd/storage"
)

type payee struct {
	account string
	amount  currency.Amount
}

// Resolve - Phase 2, run once per task with the outcome of the remote call
//
// the caller commits trx then passes the resolution to Deliver
func (s *Settlement) Resolve(trx storage.Transaction, task *Task, result []byte, callErr error) (Resolution, error) {
	r := Resolution{
		TaskId:   task.Id,
		Currency: task.Currency,
		Buyer:    task.Buyer,
	}

	trx.Delete(s.pending, task.Id[:])

	payees, reason := s.advisory(task, result, callErr)
	transferor := payment.For(task.Currency)

	// the sale is gone either way, so are its remaining bids
	if err := s.refunds.RefundAll(trx, task.Sale.Bids); nil != err {
		return r, err
	}

	if nil == payees {
		s.log.Warnf("task: %s  advisory rejected: %s", task.Id, reason)
		if task.Currency.IsNative() {
			err := s.dispatcher.Dispatch(trx, transferor.Transfer(task.Buyer, task.Price, ""))
			if nil != err {
				return r, err
			}
		}
		r.Outcome = Refunded
		r.Returned = task.Price
		r.Reason = reason
		return r, nil
	}

	for _, p := range payees {
		err := s.dispatcher.Dispatch(trx, transferor.Transfer(p.account, p.amount, task.Memo))
		if nil != err {
			return r, err
		}
	}

	r.Outcome = Paid
	if task.Currency.IsNative() {
		r.Returned = task.Price
	}
	s.log.Infof("task: %s  paid: %d accounts", task.Id, len(payees))
	return r, nil
}

// validate an advisory, nil payees means it was rejected
func (s *Settlement) advisory(task *Task, result []byte, callErr error) ([]payee, string) {
	if nil != callErr {
		return nil, "transfer failed: " + callErr.Error()
	}

	p, err := collection.ParsePayout(result)
	if nil != err {
		return nil, "malformed payout"
	}
	if 0 == len(p.Payout) {
		return nil, "empty payout"
	}
	if len(p.Payout)+len(task.Sale.Bids) > task.MaxPayees {
		return nil, "too many payees"
	}

	remainder := task.Price
	payees := make([]payee, 0, len(p.Payout))
	for account, amount := range p.Payout {
		r, ok := remainder.Sub(amount)
		if !ok {
			return nil, "payout exceeds price"
		}
		remainder = r
		payees = append(payees, payee{account: account, amount: amount})
	}
	if remainder > 1 {
		return nil, "payout below price"
	}

	sort.Slice(payees, func(i, j int) bool {
		return payees[i].account < payees[j].account
	})
	return payees, ""
}
