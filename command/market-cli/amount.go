// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/marketd/currency"
)

// largest uint64
var maximumAmount = decimal.RequireFromString("18446744073709551615")

// convert a human decimal like "1.25" into base units
func parseAmount(s string, decimals int32) (currency.Amount, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return 0, fmt.Errorf("amount: %q  error: %s", s, err)
	}
	units := d.Shift(decimals)
	if units.IsNegative() {
		return 0, fmt.Errorf("amount: %q is negative", s)
	}
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("amount: %q has more than %d decimal places", s, decimals)
	}
	if units.GreaterThan(maximumAmount) {
		return 0, fmt.Errorf("amount: %q is too large", s)
	}

	var a currency.Amount
	if err := a.UnmarshalText([]byte(units.String())); nil != err {
		return 0, err
	}
	return a, nil
}

// display base units with the decimal point restored
func formatAmount(a currency.Amount, decimals int32) string {
	d, err := decimal.NewFromString(a.String())
	if nil != err {
		return a.String()
	}
	return d.Shift(-decimals).String()
}
