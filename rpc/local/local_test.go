// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package local_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/collection"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/mocks"
	"github.com/bitmark-inc/marketd/rpc/local"
	"github.com/bitmark-inc/marketd/rpc/sales"
	"github.com/bitmark-inc/marketd/sale"
)

const contractId = "nft.collection"

func TestMintApproveOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockOperations(ctl)
	c := local.New(
		logger.New(fixtures.LogCategory),
		m,
		map[string]*collection.Local{contractId: collection.NewLocal("nft.owner")},
	)

	var minted local.TokenReply
	err := c.Mint(&local.MintArguments{
		Contract: contractId,
		AssetId:  "cat#1",
		Receiver: "seller",
		Royalty:  map[string]uint32{"artist": 500},
	}, &minted)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, "seller", minted.Owner, "wrong owner")

	msg := `{"sale_conditions":{"native":"100"}}`
	listed := &sale.Sale{Seller: "seller", Contract: contractId, AssetId: "cat#1"}

	m.EXPECT().Owner().Return("market.owner").Times(1)
	m.EXPECT().OnApproved(&market.ApprovedArguments{
		Contract:   contractId,
		Signer:     "seller",
		AssetId:    "cat#1",
		Owner:      "seller",
		ApprovalId: 0,
		Msg:        msg,
	}).Return(listed, nil).Times(1)

	var reply sales.SaleReply
	err = c.Approve(&local.ApproveArguments{
		Contract: contractId,
		AssetId:  "cat#1",
		Owner:    "seller",
		Msg:      msg,
	}, &reply)
	assert.Nil(t, err, "wrong Approve")
	assert.Equal(t, listed.Key(), reply.Key, "wrong key")

	var owner local.TokenReply
	err = c.Owner(&local.OwnerArguments{Contract: contractId, AssetId: "cat#1"}, &owner)
	assert.Nil(t, err, "wrong Owner")
	assert.Equal(t, "seller", owner.Owner, "wrong owner")
}

func TestApproveRejects(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockOperations(ctl)
	l := collection.NewLocal("nft.owner")
	c := local.New(logger.New(fixtures.LogCategory), m, map[string]*collection.Local{contractId: l})

	_ = l.Mint("cat#1", "seller", nil, "")

	m.EXPECT().Owner().Return("market.owner").AnyTimes()

	var reply sales.SaleReply
	err := c.Approve(&local.ApproveArguments{Contract: "other", AssetId: "cat#1", Owner: "seller"}, &reply)
	assert.Equal(t, fault.UnknownCollection, err, "wrong unknown collection error")

	err = c.Approve(&local.ApproveArguments{Contract: contractId, AssetId: "cat#1", Owner: "thief"}, &reply)
	assert.Equal(t, fault.NotTokenOwner, err, "wrong owner error")
}
