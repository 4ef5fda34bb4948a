// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/fault"
)

func TestReadYourWrites(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	pool := db.Pool.Sales

	trx, err := db.Begin()
	assert.Nil(t, err, "begin error")

	trx.Put(pool, []byte("key-one"), []byte("data-one"))
	assert.Equal(t, []byte("data-one"), trx.Get(pool, []byte("key-one")), "uncommitted value not visible")
	assert.True(t, trx.Has(pool, []byte("key-one")), "uncommitted key not visible")
	assert.Nil(t, pool.Get([]byte("key-one")), "uncommitted value visible outside transaction")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")
	assert.Equal(t, []byte("data-one"), pool.Get([]byte("key-one")), "committed value not visible")
}

func TestDeleteIsVisible(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	pool := db.Pool.Sales
	store(t, db, pool, []stringElement{{"key-one", "data-one"}})

	trx, _ := db.Begin()
	trx.Delete(pool, []byte("key-one"))
	assert.Nil(t, trx.Get(pool, []byte("key-one")), "deleted value still visible")
	assert.False(t, trx.Has(pool, []byte("key-one")), "deleted key still visible")
	assert.True(t, pool.Has([]byte("key-one")), "delete visible before commit")
	trx.Abort()

	assert.True(t, pool.Has([]byte("key-one")), "aborted delete was applied")
}

func TestAbortDiscards(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	pool := db.Pool.Deposits

	trx, _ := db.Begin()
	trx.PutN(pool, []byte("alice"), 1000)
	n, found := trx.GetN(pool, []byte("alice"))
	assert.True(t, found, "value not found")
	assert.Equal(t, uint64(1000), n, "wrong value")
	trx.Abort()

	_, found = pool.GetN([]byte("alice"))
	assert.False(t, found, "aborted value was stored")

	// a second abort and a late commit are harmless
	trx.Abort()
	assert.Equal(t, fault.TransactionNotStarted, trx.Commit(), "wrong commit error")
}

func TestTransactionsAreExclusive(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	pool := db.Pool.Settings

	first, _ := db.Begin()
	first.Put(pool, []byte("k"), []byte("1"))

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		second, _ := db.Begin()
		close(started)
		second.Put(pool, []byte("k"), []byte("2"))
		_ = second.Commit()
		close(done)
	}()

	select {
	case <-started:
		t.Fatal("second transaction started while first in use")
	case <-time.After(20 * time.Millisecond):
	}

	err := first.Commit()
	assert.Nil(t, err, "commit error")

	<-done
	assert.Equal(t, []byte("2"), pool.Get([]byte("k")), "second transaction not applied")
}

func TestCommitAfterAbortOfOtherTransaction(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	pool := db.Pool.Settings

	first, _ := db.Begin()
	first.Put(pool, []byte("a"), []byte("1"))
	assert.Nil(t, first.Commit(), "commit error")

	second, _ := db.Begin()
	second.Put(pool, []byte("b"), []byte("2"))

	// deferred abort of the finished transaction must not touch the active one
	first.Abort()

	assert.Nil(t, second.Commit(), "commit error")
	assert.Equal(t, []byte("2"), pool.Get([]byte("b")), "second transaction lost")
}
