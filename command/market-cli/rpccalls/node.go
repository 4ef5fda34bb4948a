// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/rpc/node"
	"github.com/bitmark-inc/marketd/rpc/quota"
)

// GetInfo - request status from marketd
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddCurrencies - owner only
func (c *Client) AddCurrencies(caller string, ids []currency.Id) ([]bool, error) {
	var reply node.CurrenciesReply
	if err := c.call("Node.AddCurrencies", &node.CurrenciesArguments{Caller: caller, Currencies: ids}, &reply); nil != err {
		return nil, err
	}
	return reply.Added, nil
}

// StorageDeposit - pay for sale storage
func (c *Client) StorageDeposit(account string, amount currency.Amount) (*quota.BalanceReply, error) {
	var reply quota.BalanceReply
	if err := c.call("Storage.Deposit", &quota.DepositArguments{Account: account, Amount: amount}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// StorageWithdraw - recover unused storage
func (c *Client) StorageWithdraw(account string) (*quota.WithdrawReply, error) {
	var reply quota.WithdrawReply
	if err := c.call("Storage.Withdraw", &quota.AccountArguments{Account: account}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// StorageBalance - storage held for an account
func (c *Client) StorageBalance(account string) (*quota.BalanceReply, error) {
	var reply quota.BalanceReply
	if err := c.call("Storage.Balance", &quota.AccountArguments{Account: account}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
