// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/rpc/ratelimit"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/settlement"
)

const (
	rateLimitOffer = 100
	rateBurstOffer = 50
)

// Offer - type for the RPC
type Offer struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Market      market.Operations
	WaitTimeout time.Duration
}

func New(log *logger.L, m market.Operations, waitTimeout time.Duration) *Offer {
	return &Offer{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitOffer, rateBurstOffer),
		Market:      m,
		WaitTimeout: waitTimeout,
	}
}

// Reply - either the deposit became a bid or a settlement started
//
// Resolution is only present when the caller asked to wait and the
// settlement finished within the wait timeout
type Reply struct {
	Bid        bool                   `json:"bid"`
	TaskId     *settlement.Id         `json:"task_id,omitempty"`
	Resolution *settlement.Resolution `json:"resolution,omitempty"`
}

func (o *Offer) reply(ticket *settlement.Ticket, wait bool, reply *Reply) {
	if nil == ticket {
		reply.Bid = true
		return
	}

	id := ticket.Task.Id
	reply.TaskId = &id

	if !wait {
		return
	}

	select {
	case r := <-ticket.Done():
		reply.Resolution = &r
	case <-time.After(o.WaitTimeout):
		o.Log.Warnf("task: %s  still pending after: %s", id, o.WaitTimeout)
	}
}

// Native deposit
// --------------

// DepositArguments - a native deposit against a sale
type DepositArguments struct {
	Key     sale.Key        `json:"key"`
	Buyer   string          `json:"buyer_id"`
	Deposit currency.Amount `json:"deposit"`
	Wait    bool            `json:"wait"`
}

// Deposit - buy at or above the price, otherwise bid
func (o *Offer) Deposit(arguments *DepositArguments, reply *Reply) error {

	if err := ratelimit.LimitSettlement(o.Limiter); nil != err {
		return err
	}

	log := o.Log

	log.Infof("Offer.Deposit: %+v", arguments)

	if nil == arguments || 0 == len(arguments.Key) {
		return fault.InvalidKey
	}
	if "" == arguments.Buyer {
		return fault.InvalidAccount
	}

	ticket, err := o.Market.Offer(arguments.Key, arguments.Buyer, arguments.Deposit)
	if nil != err {
		return err
	}

	o.reply(ticket, arguments.Wait, reply)

	return nil
}

// Token transfer
// --------------

// TransferArguments - a fungible token contract forwarded a transfer
type TransferArguments struct {
	Currency currency.Id     `json:"ft_token_id"`
	Sender   string          `json:"sender_id"`
	Amount   currency.Amount `json:"amount"`
	Msg      string          `json:"msg"`
	Wait     bool            `json:"wait"`
}

// Transfer - token deposit naming a sale in msg
func (o *Offer) Transfer(arguments *TransferArguments, reply *Reply) error {

	if err := ratelimit.LimitSettlement(o.Limiter); nil != err {
		return err
	}

	log := o.Log

	log.Infof("Offer.Transfer: %+v", arguments)

	if nil == arguments || "" == arguments.Sender {
		return fault.InvalidAccount
	}

	ticket, err := o.Market.OnTransfer(arguments.Currency, arguments.Sender, arguments.Amount, arguments.Msg)
	if nil != err {
		return err
	}

	o.reply(ticket, arguments.Wait, reply)

	return nil
}

// Accept
// ------

// AcceptArguments - seller accepts the top bid in a currency
type AcceptArguments struct {
	Key      sale.Key    `json:"key"`
	Currency currency.Id `json:"ft_token_id"`
	Caller   string      `json:"caller_id"`
	Wait     bool        `json:"wait"`
}

// Accept - settle with the highest bidder
func (o *Offer) Accept(arguments *AcceptArguments, reply *Reply) error {

	if err := ratelimit.LimitSettlement(o.Limiter); nil != err {
		return err
	}

	log := o.Log

	log.Infof("Offer.Accept: %+v", arguments)

	if nil == arguments || 0 == len(arguments.Key) {
		return fault.InvalidKey
	}

	ticket, err := o.Market.AcceptOffer(arguments.Key, arguments.Currency, arguments.Caller)
	if nil != err {
		return err
	}

	o.reply(ticket, arguments.Wait, reply)

	return nil
}

// Resolution
// ----------

// ResolutionArguments - task returned by an earlier call
type ResolutionArguments struct {
	TaskId settlement.Id `json:"task_id"`
}

// Resolution - outcome of a recent settlement
func (o *Offer) Resolution(arguments *ResolutionArguments, reply *settlement.Resolution) error {

	if err := ratelimit.Limit(o.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	r, ok := o.Market.Resolution(arguments.TaskId)
	if !ok {
		return fault.ResolutionNotFound
	}

	*reply = r

	return nil
}
