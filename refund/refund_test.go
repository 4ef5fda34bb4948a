// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package refund_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/mocks"
	"github.com/bitmark-inc/marketd/refund"
	"github.com/bitmark-inc/marketd/sale"
)

func TestRefundNative(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().Dispatch(nil, mocks.TransferOf(currency.Native, "alice", 100)).Return(nil).Times(1)

	e := refund.New(logger.New(fixtures.LogCategory), d)
	err := e.Refund(nil, currency.Native, sale.Bid{Owner: "alice", Price: 100})
	assert.Nil(t, err, "wrong Refund")
}

func TestRefundToken(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().Dispatch(nil, mocks.TransferOf("usdc.token", "bob", 7)).Return(nil).Times(1)

	e := refund.New(logger.New(fixtures.LogCategory), d)
	err := e.Refund(nil, "usdc.token", sale.Bid{Owner: "bob", Price: 7})
	assert.Nil(t, err, "wrong Refund")
}

func TestRefundAllOnlyTopBids(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDispatcher(ctl)
	gomock.InOrder(
		d.EXPECT().Dispatch(nil, mocks.TransferOf(currency.Native, "carol", 150)).Return(nil).Times(1),
		d.EXPECT().Dispatch(nil, mocks.TransferOf("usdc.token", "dave", 9)).Return(nil).Times(1),
	)

	bids := sale.Bids{
		currency.Native: {
			{Owner: "alice", Price: 100},
			{Owner: "carol", Price: 150},
		},
		"usdc.token": {
			{Owner: "dave", Price: 9},
		},
		"dai.token": {},
	}

	e := refund.New(logger.New(fixtures.LogCategory), d)
	err := e.RefundAll(nil, bids)
	assert.Nil(t, err, "wrong RefundAll")
}

func TestRefundAllStopsOnError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(fault.InvalidAmount).Times(1)

	bids := sale.Bids{
		"a.token": {{Owner: "x", Price: 1}},
		"b.token": {{Owner: "y", Price: 2}},
	}

	e := refund.New(logger.New(fixtures.LogCategory), d)
	err := e.RefundAll(nil, bids)
	assert.Equal(t, fault.InvalidAmount, err, "error not returned")
}
