// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/mocks"
	"github.com/bitmark-inc/marketd/rpc/offer"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/settlement"
)

const (
	token = currency.Id("usdc.token")
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockOperations, *offer.Offer) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	m := mocks.NewMockOperations(ctl)

	return ctl, m, offer.New(logger.New(fixtures.LogCategory), m, 10*time.Millisecond)
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestDepositBecomesBid(t *testing.T) {
	ctl, m, o := setup(t)
	defer teardown(ctl)

	key := sale.NewKey("nft.collection", "cat#1")

	m.EXPECT().Offer(key, "A", currency.Amount(50)).Return(nil, nil).Times(1)

	var reply offer.Reply
	err := o.Deposit(&offer.DepositArguments{Key: key, Buyer: "A", Deposit: 50}, &reply)
	assert.Nil(t, err, "wrong Deposit")
	assert.True(t, reply.Bid, "not a bid")
	assert.Nil(t, reply.TaskId, "unexpected task")
}

func TestDepositStartsSettlement(t *testing.T) {
	ctl, m, o := setup(t)
	defer teardown(ctl)

	key := sale.NewKey("nft.collection", "cat#1")
	task := &settlement.Task{
		Id:       settlement.Id{1, 2, 3},
		Currency: currency.Native,
		Buyer:    "A",
		Price:    100,
	}

	m.EXPECT().Offer(key, "A", currency.Amount(100)).Return(settlement.NewTicket(task), nil).Times(1)

	// nothing resolves the ticket so the wait times out
	var reply offer.Reply
	err := o.Deposit(&offer.DepositArguments{Key: key, Buyer: "A", Deposit: 100, Wait: true}, &reply)
	assert.Nil(t, err, "wrong Deposit")
	assert.False(t, reply.Bid, "reported as bid")
	assert.Equal(t, task.Id, *reply.TaskId, "wrong task id")
	assert.Nil(t, reply.Resolution, "unexpected resolution")
}

func TestDepositRejects(t *testing.T) {
	ctl, m, o := setup(t)
	defer teardown(ctl)

	key := sale.NewKey("nft.collection", "cat#1")

	m.EXPECT().Offer(key, "seller", currency.Amount(100)).Return(nil, fault.SelfBid).Times(1)

	var reply offer.Reply
	err := o.Deposit(&offer.DepositArguments{Key: key, Buyer: "seller", Deposit: 100}, &reply)
	assert.Equal(t, fault.SelfBid, err, "wrong error")

	err = o.Deposit(&offer.DepositArguments{Key: key, Deposit: 100}, &reply)
	assert.Equal(t, fault.InvalidAccount, err, "wrong empty buyer error")

	err = o.Deposit(&offer.DepositArguments{Buyer: "A", Deposit: 100}, &reply)
	assert.Equal(t, fault.InvalidKey, err, "wrong empty key error")
}

func TestTransfer(t *testing.T) {
	ctl, m, o := setup(t)
	defer teardown(ctl)

	msg := `{"nft_contract_id":"nft.collection","token_id":"cat#1"}`
	task := &settlement.Task{Id: settlement.Id{9}, Currency: token, Buyer: "B", Price: 75}

	m.EXPECT().OnTransfer(token, "B", currency.Amount(75), msg).Return(settlement.NewTicket(task), nil).Times(1)

	var reply offer.Reply
	err := o.Transfer(&offer.TransferArguments{Currency: token, Sender: "B", Amount: 75, Msg: msg}, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, task.Id, *reply.TaskId, "wrong task id")
}

func TestAccept(t *testing.T) {
	ctl, m, o := setup(t)
	defer teardown(ctl)

	key := sale.NewKey("nft.collection", "cat#1")

	m.EXPECT().AcceptOffer(key, token, "seller").Return(nil, fault.BidNotFound).Times(1)

	var reply offer.Reply
	err := o.Accept(&offer.AcceptArguments{Key: key, Currency: token, Caller: "seller"}, &reply)
	assert.Equal(t, fault.BidNotFound, err, "wrong error")
}

func TestResolution(t *testing.T) {
	ctl, m, o := setup(t)
	defer teardown(ctl)

	id := settlement.Id{7}
	r := settlement.Resolution{
		TaskId:   id,
		Outcome:  settlement.Paid,
		Currency: currency.Native,
		Buyer:    "A",
	}

	m.EXPECT().Resolution(id).Return(r, true).Times(1)
	m.EXPECT().Resolution(settlement.Id{8}).Return(settlement.Resolution{}, false).Times(1)

	var reply settlement.Resolution
	err := o.Resolution(&offer.ResolutionArguments{TaskId: id}, &reply)
	assert.Nil(t, err, "wrong Resolution")
	assert.Equal(t, r, reply, "wrong resolution")

	err = o.Resolution(&offer.ResolutionArguments{TaskId: settlement.Id{8}}, &reply)
	assert.Equal(t, fault.ResolutionNotFound, err, "wrong error")
}
