// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/storage"
)

// configure for testing
func setup(t *testing.T) *storage.Database {
	fixtures.SetupTestLogger()
	return fixtures.Database(t)
}

// post test cleanup
func teardown(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// store some elements in a single transaction
func store(t *testing.T, db *storage.Database, pool *storage.PoolHandle, elements []stringElement) {
	trx := fixtures.Begin(t, db)
	for _, e := range elements {
		trx.Put(pool, []byte(e.key), []byte(e.value))
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
