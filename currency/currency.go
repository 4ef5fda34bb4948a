// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - currency identifiers, amounts and the set of
// currencies the market accepts
package currency

import (
	"strings"
	"unicode"

	"github.com/bitmark-inc/marketd/fault"
)

// Id - identifier of a currency
//
// Native is the base asset paid by direct balance transfer, every
// other id names the contract that manages a fungible token
type Id string

// Native - the platform's base currency
const Native = Id("native")

const maximumIdLength = 64

// IsNative - true for the base currency
func (id Id) IsNative() bool {
	return Native == id
}

// Valid - check that an identifier is usable as a key
func (id Id) Valid() bool {
	if 0 == len(id) || len(id) > maximumIdLength {
		return false
	}
	return -1 == strings.IndexFunc(string(id), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

func (id Id) String() string {
	return string(id)
}

// MarshalText - convert a currency id into JSON
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id), nil
}

// UnmarshalText - convert a JSON string to a currency id
func (id *Id) UnmarshalText(s []byte) error {
	c := Id(s)
	if !c.Valid() {
		return fault.InvalidCurrency
	}
	*id = c
	return nil
}
