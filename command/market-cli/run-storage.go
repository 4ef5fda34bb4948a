// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/rpc/quota"
)

type balanceDisplay struct {
	quota.BalanceReply
	Display string `json:"display"`
}

func runStorageDeposit(c *cli.Context) error {

	account, err := checkRequired(c, "account")
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	amount, err := getAmount(c, "amount", m.decimals)
	if nil != err {
		return err
	}

	reply, err := client.StorageDeposit(account, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, balanceDisplay{
		BalanceReply: *reply,
		Display:      formatAmount(reply.Balance, m.decimals),
	})
}

func runStorageWithdraw(c *cli.Context) error {

	account, err := checkRequired(c, "account")
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.StorageWithdraw(account)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runStorageBalance(c *cli.Context) error {

	account, err := checkRequired(c, "account")
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.StorageBalance(account)
	if nil != err {
		return err
	}

	return printJson(m.w, balanceDisplay{
		BalanceReply: *reply,
		Display:      formatAmount(reply.Balance, m.decimals),
	})
}
