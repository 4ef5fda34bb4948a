// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/rpc/sales"
)

func runSale(c *cli.Context) error {

	key, err := getKey(c)
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetSale(key)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSales(c *cli.Context) error {

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListSales(&sales.ListArguments{
		Seller:   c.String("seller"),
		Contract: c.String("contract"),
		Type:     c.String("type"),
		Start:    c.Int("start"),
		Count:    c.Int("count"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSupply(c *cli.Context) error {

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	count, err := client.Supply(&sales.SupplyArguments{
		Seller:   c.String("seller"),
		Contract: c.String("contract"),
		Type:     c.String("type"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, sales.SupplyReply{Count: count})
}

type bidDisplay struct {
	Owner  string `json:"owner_id"`
	Price  string `json:"price"`
	Amount string `json:"amount"`
}

func runBids(c *cli.Context) error {

	key, err := getKey(c)
	if nil != err {
		return err
	}
	id, err := getCurrency(c, "currency")
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	bids, err := client.Bids(key, id)
	if nil != err {
		return err
	}

	display := make([]bidDisplay, 0, len(bids))
	for _, b := range bids {
		display = append(display, bidDisplay{
			Owner:  b.Owner,
			Price:  b.Price.String(),
			Amount: formatAmount(b.Price, m.decimals),
		})
	}
	return printJson(m.w, display)
}

func runUpdatePrice(c *cli.Context) error {

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

	price, err := getAmount(c, "price", m.decimals)
	if nil != err {
		return err
	}

	reply, err := client.UpdatePrice(&sales.UpdatePriceArguments{
		Key:      key,
		Currency: id,
		Price:    price,
		Caller:   caller,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runRemove(c *cli.Context) error {

	key, err := getKey(c)
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

	reply, err := client.RemoveSale(key, caller)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
