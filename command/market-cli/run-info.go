// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/currency"
)

func runInfo(c *cli.Context) error {

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAddCurrencies(c *cli.Context) error {

	caller, err := checkRequired(c, "caller")
	if nil != err {
		return err
	}

	items := c.StringSlice("currency")
	if 0 == len(items) {
		return fmt.Errorf("--currency is required")
	}
	ids := make([]currency.Id, 0, len(items))
	for _, s := range items {
		id := currency.Id(s)
		if !id.Valid() {
			return fmt.Errorf("%q is not a valid currency", s)
		}
		ids = append(ids, id)
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	added, err := client.AddCurrencies(caller, ids)
	if nil != err {
		return err
	}

	result := make(map[currency.Id]bool, len(ids))
	for i, id := range ids {
		if i < len(added) {
			result[id] = added[i]
		}
	}
	return printJson(m.w, result)
}
