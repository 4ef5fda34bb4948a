// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

func TestPrefixedIsUnambiguous(t *testing.T) {
	a := util.Prefixed(nil, []byte("nft||x"), []byte("1"))
	b := util.Prefixed(nil, []byte("nft"), []byte("x||1"))
	assert.NotEqual(t, a, b, "different pairs must not collide")

	first, rest, err := util.SplitPrefixed(a)
	assert.Nil(t, err, "split error")
	assert.Equal(t, []byte("nft||x"), first, "wrong first part")

	second, rest, err := util.SplitPrefixed(rest)
	assert.Nil(t, err, "split error")
	assert.Equal(t, []byte("1"), second, "wrong second part")
	assert.Equal(t, 0, len(rest), "unexpected trailing bytes")
}

func TestSplitPrefixedTruncated(t *testing.T) {
	testData := [][]byte{
		{},
		{0x80},
		{0x05, 'a', 'b'},
	}
	for i, d := range testData {
		_, _, err := util.SplitPrefixed(d)
		assert.Equal(t, fault.InvalidKey, err, "%d: wrong error for: %x", i, d)
	}
}

func TestPrefixedEmptyPart(t *testing.T) {
	b := util.Prefixed(nil, []byte{}, []byte("z"))
	assert.Equal(t, []byte{0x00, 0x01, 'z'}, b, "wrong encoding")
}
