// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/rpc/local"
)

func runMint(c *cli.Context) error {

	contract, err := checkRequired(c, "contract")
	if nil != err {
		return err
	}
	token, err := checkRequired(c, "token")
	if nil != err {
		return err
	}
	receiver, err := checkRequired(c, "receiver")
	if nil != err {
		return err
	}
	royalty, err := parseRoyalty(c.StringSlice("royalty"))
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Mint(&local.MintArguments{
		Contract: contract,
		AssetId:  token,
		Receiver: receiver,
		Royalty:  royalty,
		TypeTag:  c.String("type"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runApprove(c *cli.Context) error {

	contract, err := checkRequired(c, "contract")
	if nil != err {
		return err
	}
	token, err := checkRequired(c, "token")
	if nil != err {
		return err
	}
	owner, err := checkRequired(c, "owner")
	if nil != err {
		return err
	}
	if 0 == len(c.StringSlice("price")) {
		return fmt.Errorf("--price is required")
	}

	m := c.App.Metadata["config"].(*metadata)
	prices, err := parsePrices(c.StringSlice("price"), m.decimals)
	if nil != err {
		return err
	}

	msg, err := json.Marshal(market.SaleArguments{
		SaleConditions: prices,
		TokenType:      c.String("type"),
		IsAuction:      c.Bool("auction"),
	})
	if nil != err {
		return err
	}

	client, _, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Approve(&local.ApproveArguments{
		Contract: contract,
		AssetId:  token,
		Owner:    owner,
		Msg:      string(msg),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
