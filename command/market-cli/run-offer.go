// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/rpc/offer"
	"github.com/bitmark-inc/marketd/settlement"
)

func runOffer(c *cli.Context) error {

	key, err := getKey(c)
	if nil != err {
		return err
	}
	buyer, err := checkRequired(c, "buyer")
	if nil != err {
		return err
	}
	m := c.App.Metadata["config"].(*metadata)
	amount, err := getAmount(c, "amount", m.decimals)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Deposit(&offer.DepositArguments{
		Key:     key,
		Buyer:   buyer,
		Deposit: amount,
		Wait:    c.Bool("wait"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runTransfer(c *cli.Context) error {

	id, err := getCurrency(c, "currency")
	if nil != err {
		return err
	}
	if id.IsNative() {
		return fmt.Errorf("native currency is offered with: offer")
	}
	sender, err := checkRequired(c, "sender")
	if nil != err {
		return err
	}
	contract, err := checkRequired(c, "contract")
	if nil != err {
		return err
	}
	token, err := checkRequired(c, "token")
	if nil != err {
		return err
	}
	m := c.App.Metadata["config"].(*metadata)
	amount, err := getAmount(c, "amount", m.decimals)
	if nil != err {
		return err
	}

	msg, err := json.Marshal(settlement.TransferMessage{
		Contract: contract,
		AssetId:  token,
	})
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Transfer(&offer.TransferArguments{
		Currency: id,
		Sender:   sender,
		Amount:   amount,
		Msg:      string(msg),
		Wait:     c.Bool("wait"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAccept(c *cli.Context) error {

	key, err := getKey(c)
	if nil != err {
		return err
	}
	id, err := getCurrency(c, "currency")
	if nil != err {
		return err
	}
	caller, err := checkRequired(c, "caller")
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Accept(&offer.AcceptArguments{
		Key:      key,
		Currency: id,
		Caller:   caller,
		Wait:     c.Bool("wait"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runResolution(c *cli.Context) error {

	s, err := checkRequired(c, "id")
	if nil != err {
		return err
	}
	id, err := settlement.ParseId(s)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Resolution(id)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
