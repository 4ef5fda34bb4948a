// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the networks a market can run against
package chain

import (
	"strings"
)

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// Normalise - lower case name, false if not a known chain
func Normalise(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	return n, Valid(n)
}

// AllowsLocalCollections - only the local chain may host in-process collection contracts
func AllowsLocalCollections(name string) bool {
	return Local == name
}
