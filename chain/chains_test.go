// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Live, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "chain: %q", name)
	}
	assert.False(t, chain.Valid("bitmark"), "old chain name accepted")
	assert.False(t, chain.Valid(""), "empty chain name accepted")
}

func TestNormalise(t *testing.T) {
	n, ok := chain.Normalise(" Testing ")
	assert.True(t, ok, "testing rejected")
	assert.Equal(t, chain.Testing, n, "wrong name")

	_, ok = chain.Normalise("mainnet")
	assert.False(t, ok, "unknown chain accepted")

	assert.True(t, chain.AllowsLocalCollections(chain.Local), "local chain")
	assert.False(t, chain.AllowsLocalCollections(chain.Live), "live chain")
}
