// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"strconv"

	"github.com/bitmark-inc/marketd/fault"
)

// Amount - a quantity in the smallest indivisible unit of a currency
//
// JSON form is a decimal string so that clients in languages without
// 64 bit integers do not lose precision
type Amount uint64

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// MarshalText - convert an amount to a decimal string
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert a decimal string to an amount
func (a *Amount) UnmarshalText(s []byte) error {
	n, err := strconv.ParseUint(string(s), 10, 64)
	if nil != err {
		return fault.InvalidAmount
	}
	*a = Amount(n)
	return nil
}

// Sub - checked subtraction, false if the result would be negative
func (a Amount) Sub(b Amount) (Amount, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}
