// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/payment"
)

func TestTransferorSelection(t *testing.T) {
	n := payment.For(currency.Native).Transfer("alice", 100, "refund")
	assert.Equal(t, payment.Direct, n.Kind, "wrong native kind")
	assert.Equal(t, currency.Native, n.Currency, "wrong native currency")
	assert.Equal(t, currency.Amount(100), n.Amount, "wrong amount")
	assert.Equal(t, "alice", n.Receiver, "wrong receiver")

	c := payment.For("usdc.token").Transfer("bob", 5, "")
	assert.Equal(t, payment.Request, c.Kind, "wrong contract kind")
	assert.Equal(t, currency.Id("usdc.token"), c.Currency, "wrong contract currency")
	assert.NotEqual(t, n.Id, c.Id, "transfer ids not unique")
}

func TestOutbox(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db := fixtures.Database(t)
	defer db.Close()

	outbox := payment.NewOutbox(logger.New(fixtures.LogCategory), db)

	// aborted transfers are never queued
	trx := fixtures.Begin(t, db)
	assert.Nil(t, outbox.Dispatch(trx, payment.For(currency.Native).Transfer("nobody", 1, "")), "dispatch error")
	trx.Abort()
	assert.Equal(t, 0, outbox.Count(), "aborted transfer queued")

	trx = fixtures.Begin(t, db)
	first := payment.For(currency.Native).Transfer("alice", 100, "")
	second := payment.For("usdc.token").Transfer("bob", 200, "")
	assert.Nil(t, outbox.Dispatch(trx, first), "dispatch error")
	assert.Nil(t, outbox.Dispatch(trx, second), "dispatch error")
	assert.Nil(t, trx.Commit(), "commit error")

	pending, err := outbox.Pending(10)
	assert.Nil(t, err, "pending error")
	assert.Equal(t, 2, len(pending), "wrong pending count")
	assert.Equal(t, first, pending[0].Transfer, "wrong first transfer")
	assert.Equal(t, second, pending[1].Transfer, "wrong second transfer")
	assert.True(t, pending[0].Sequence < pending[1].Sequence, "sequence out of order")

	assert.Nil(t, outbox.Acknowledge(pending[0].Sequence), "acknowledge error")

	pending, err = outbox.Pending(10)
	assert.Nil(t, err, "pending error")
	assert.Equal(t, 1, len(pending), "acknowledged transfer remains")
	assert.Equal(t, second.Id, pending[0].Transfer.Id, "wrong remaining transfer")
}
