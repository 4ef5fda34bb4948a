// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package local - RPC access to in-process collection contracts
//
// only registered on the "local" chain so that a single daemon can be
// exercised end to end: mint a token, approve the market and trade it
package local

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/collection"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/rpc/ratelimit"
	"github.com/bitmark-inc/marketd/rpc/sales"
)

const (
	rateLimitCollection = 100
	rateBurstCollection = 50
)

// Collection - type for the RPC
type Collection struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Market    market.Operations
	contracts map[string]*collection.Local
}

func New(log *logger.L, m market.Operations, contracts map[string]*collection.Local) *Collection {
	return &Collection{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitCollection, rateBurstCollection),
		Market:    m,
		contracts: contracts,
	}
}

func (c *Collection) contract(id string) (*collection.Local, error) {
	l, ok := c.contracts[id]
	if !ok {
		return nil, fault.UnknownCollection
	}
	return l, nil
}

// MintArguments - create a token
type MintArguments struct {
	Contract string            `json:"nft_contract_id"`
	AssetId  string            `json:"token_id"`
	Receiver string            `json:"receiver_id"`
	Royalty  map[string]uint32 `json:"royalty"`
	TypeTag  string            `json:"token_type"`
}

// TokenReply - a token and its owner
type TokenReply struct {
	Contract string `json:"nft_contract_id"`
	AssetId  string `json:"token_id"`
	Owner    string `json:"owner_id"`
}

// Mint - create a token owned by the receiver
func (c *Collection) Mint(arguments *MintArguments, reply *TokenReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	log := c.Log

	log.Infof("Collection.Mint: %+v", arguments)

	if nil == arguments || "" == arguments.AssetId || "" == arguments.Receiver {
		return fault.MissingParameters
	}

	l, err := c.contract(arguments.Contract)
	if nil != err {
		return err
	}

	err = l.Mint(arguments.AssetId, arguments.Receiver, arguments.Royalty, arguments.TypeTag)
	if nil != err {
		return err
	}

	reply.Contract = arguments.Contract
	reply.AssetId = arguments.AssetId
	reply.Owner = arguments.Receiver

	return nil
}

// ApproveArguments - owner approves the market and lists the token
type ApproveArguments struct {
	Contract string `json:"nft_contract_id"`
	AssetId  string `json:"token_id"`
	Owner    string `json:"owner_id"`
	Msg      string `json:"msg"`
}

// Approve - approve the market, which then lists the token using msg
//
// the collection contract is the caller and the owner signed
func (c *Collection) Approve(arguments *ApproveArguments, reply *sales.SaleReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	log := c.Log

	log.Infof("Collection.Approve: %+v", arguments)

	if nil == arguments || "" == arguments.AssetId {
		return fault.MissingParameters
	}

	l, err := c.contract(arguments.Contract)
	if nil != err {
		return err
	}

	approval, err := l.Approve(arguments.AssetId, arguments.Owner, c.Market.Owner())
	if nil != err {
		return err
	}

	created, err := c.Market.OnApproved(&market.ApprovedArguments{
		Contract:   arguments.Contract,
		Signer:     arguments.Owner,
		AssetId:    arguments.AssetId,
		Owner:      arguments.Owner,
		ApprovalId: approval,
		Msg:        arguments.Msg,
	})
	if nil != err {
		return err
	}

	reply.Key = created.Key()
	reply.Sale = created

	return nil
}

// OwnerArguments - a token
type OwnerArguments struct {
	Contract string `json:"nft_contract_id"`
	AssetId  string `json:"token_id"`
}

// Owner - current owner of a token
func (c *Collection) Owner(arguments *OwnerArguments, reply *TokenReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	l, err := c.contract(arguments.Contract)
	if nil != err {
		return err
	}

	owner, err := l.Owner(arguments.AssetId)
	if nil != err {
		return err
	}

	reply.Contract = arguments.Contract
	reply.AssetId = arguments.AssetId
	reply.Owner = owner

	return nil
}
