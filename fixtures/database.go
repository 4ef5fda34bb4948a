// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"testing"

	"github.com/bitmark-inc/marketd/storage"
)

// Database - an empty in-memory database, the caller closes it
func Database(t *testing.T) *storage.Database {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

// Begin - start a transaction or fail the test
func Begin(t *testing.T, db *storage.Database) storage.Transaction {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	return trx
}
