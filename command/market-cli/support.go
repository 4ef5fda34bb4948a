// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/sale"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// a flag that must be present
func checkRequired(c *cli.Context, name string) (string, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return "", fmt.Errorf("--%s is required", name)
	}
	return s, nil
}

// sale key from --key or --contract with --token
func getKey(c *cli.Context) (sale.Key, error) {
	if s := c.String("key"); "" != s {
		return sale.ParseKey(s)
	}
	contract := c.String("contract")
	token := c.String("token")
	if "" == contract || "" == token {
		return nil, fmt.Errorf("either --key or both --contract and --token are required")
	}
	return sale.NewKey(contract, token), nil
}

func getCurrency(c *cli.Context, name string) (currency.Id, error) {
	id := currency.Id(c.String(name))
	if !id.Valid() {
		return "", fmt.Errorf("--%s: %q is not a valid currency", name, id)
	}
	return id, nil
}

func getAmount(c *cli.Context, name string, decimals int32) (currency.Amount, error) {
	s, err := checkRequired(c, name)
	if nil != err {
		return 0, err
	}
	return parseAmount(s, decimals)
}

// split NAME=VALUE items
func splitPairs(items []string) (map[string]string, error) {
	pairs := make(map[string]string, len(items))
	for _, item := range items {
		s := strings.SplitN(item, "=", 2)
		if 2 != len(s) || "" == s[0] || "" == s[1] {
			return nil, fmt.Errorf("%q is not NAME=VALUE", item)
		}
		if _, ok := pairs[s[0]]; ok {
			return nil, fmt.Errorf("%q is duplicated", s[0])
		}
		pairs[s[0]] = s[1]
	}
	return pairs, nil
}

// CURRENCY=AMOUNT items as sale conditions
func parsePrices(items []string, decimals int32) (sale.Prices, error) {
	pairs, err := splitPairs(items)
	if nil != err {
		return nil, err
	}
	prices := make(sale.Prices, len(pairs))
	for k, v := range pairs {
		id := currency.Id(k)
		if !id.Valid() {
			return nil, fmt.Errorf("%q is not a valid currency", k)
		}
		a, err := parseAmount(v, decimals)
		if nil != err {
			return nil, err
		}
		prices[id] = a
	}
	return prices, nil
}

// ACCOUNT=BPS items as a royalty table
func parseRoyalty(items []string) (map[string]uint32, error) {
	pairs, err := splitPairs(items)
	if nil != err {
		return nil, err
	}
	royalty := make(map[string]uint32, len(pairs))
	for k, v := range pairs {
		bps, err := strconv.ParseUint(v, 10, 32)
		if nil != err {
			return nil, fmt.Errorf("royalty: %q  error: %s", v, err)
		}
		royalty[k] = uint32(bps)
	}
	return royalty, nil
}
