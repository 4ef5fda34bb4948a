// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Market  market.Operations
	counter *counter.Counter
}

func New(log *logger.L, m market.Operations, start time.Time, version string, chain string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		Market:  m,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain              string          `json:"chain"`
	Owner              string          `json:"owner_id"`
	Currencies         []currency.Id   `json:"currencies"`
	StorageMinimum     currency.Amount `json:"storage_minimum"`
	Sales              int             `json:"sales"`
	PendingSettlements int             `json:"pending_settlements"`
	RPCs               uint64          `json:"rpcs"`
	Version            string          `json:"version"`
	Uptime             string          `json:"uptime"`
}

// Info - return some information about this market
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	currencies, err := node.Market.SupportedCurrencies()
	if nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Owner = node.Market.Owner()
	reply.Currencies = currencies
	reply.StorageMinimum = node.Market.StorageMinimum()
	reply.Sales = node.Market.Supply()
	reply.PendingSettlements = node.Market.PendingSettlements()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}

// ---

// CurrenciesArguments - currencies the market owner adds
type CurrenciesArguments struct {
	Caller     string        `json:"caller_id"`
	Currencies []currency.Id `json:"currencies"`
}

// CurrenciesReply - which of the currencies were new
type CurrenciesReply struct {
	Added []bool `json:"added"`
}

// AddCurrencies - extend the set of accepted currencies
func (node *Node) AddCurrencies(arguments *CurrenciesArguments, reply *CurrenciesReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	log := node.Log

	log.Infof("Node.AddCurrencies: %+v", arguments)

	if nil == arguments || 0 == len(arguments.Currencies) {
		return fault.MissingParameters
	}

	added, err := node.Market.AddCurrencies(arguments.Caller, arguments.Currencies...)
	if nil != err {
		return err
	}

	reply.Added = added

	return nil
}
