// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quota

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/rpc/ratelimit"
)

const (
	rateLimitStorage = 100
	rateBurstStorage = 50
)

// Storage - type for the RPC, prepaid storage for listed sales
type Storage struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Market  market.Operations
}

func New(log *logger.L, m market.Operations) *Storage {
	return &Storage{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitStorage, rateBurstStorage),
		Market:  m,
	}
}

// BalanceReply - storage held for an account
type BalanceReply struct {
	Account string          `json:"account_id"`
	Balance currency.Amount `json:"balance"`
	Minimum currency.Amount `json:"minimum"`
	Sales   int             `json:"sales"`
}

func (s *Storage) balance(account string, reply *BalanceReply) {
	reply.Account = account
	reply.Balance = s.Market.StorageBalance(account)
	reply.Minimum = s.Market.StorageMinimum()
	reply.Sales = s.Market.SupplyBySeller(account)
}

// DepositArguments - native amount to add to an account's storage
type DepositArguments struct {
	Account string          `json:"account_id"`
	Amount  currency.Amount `json:"amount"`
}

// Deposit - pay for storage
func (s *Storage) Deposit(arguments *DepositArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log

	log.Infof("Storage.Deposit: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}

	_, err := s.Market.StorageDeposit(arguments.Account, arguments.Amount)
	if nil != err {
		return err
	}

	s.balance(arguments.Account, reply)

	return nil
}

// AccountArguments - an account
type AccountArguments struct {
	Account string `json:"account_id"`
}

// WithdrawReply - native amount paid back
type WithdrawReply struct {
	Account  string          `json:"account_id"`
	Returned currency.Amount `json:"returned"`
}

// Withdraw - return storage not covering active sales
func (s *Storage) Withdraw(arguments *AccountArguments, reply *WithdrawReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log

	log.Infof("Storage.Withdraw: %+v", arguments)

	if nil == arguments || "" == arguments.Account {
		return fault.InvalidAccount
	}

	excess, err := s.Market.StorageWithdraw(arguments.Account)
	if nil != err {
		return err
	}

	reply.Account = arguments.Account
	reply.Returned = excess

	return nil
}

// Balance - storage paid by an account and the number of sales it covers
func (s *Storage) Balance(arguments *AccountArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Account {
		return fault.InvalidAccount
	}

	s.balance(arguments.Account, reply)

	return nil
}
