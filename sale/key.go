// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

// Key - unique key of a sale built from the collection contract id
// and the asset id
//
// each part is length prefixed so no pair of identifiers can
// produce the key of a different pair
type Key []byte

// NewKey - create the key for a contract and asset
func NewKey(contract string, assetId string) Key {
	return Key(util.Prefixed(nil, []byte(contract), []byte(assetId)))
}

// Split - recover the contract and asset ids
func (k Key) Split() (string, string, error) {
	contract, rest, err := util.SplitPrefixed(k)
	if nil != err {
		return "", "", err
	}
	if 0 == len(contract) || 0 == len(rest) {
		return "", "", fault.InvalidKey
	}
	return string(contract), string(rest), nil
}

// String - base58 text form of a key
func (k Key) String() string {
	return base58.Encode(k)
}

// ParseKey - convert base58 text to a key
func ParseKey(s string) (Key, error) {
	b, err := base58.Decode(s)
	if nil != err || 0 == len(b) {
		return nil, fault.InvalidKey
	}
	k := Key(b)
	if _, _, err := k.Split(); nil != err {
		return nil, err
	}
	return k, nil
}

// MarshalText - key to base58 text for JSON
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - base58 text to key
func (k *Key) UnmarshalText(s []byte) error {
	key, err := ParseKey(string(s))
	if nil != err {
		return err
	}
	*k = key
	return nil
}
