// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/fault"
)

// Transaction - a set of writes applied together on Commit
//
// reads through the transaction see its own uncommitted writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	exclusive *sync.Mutex // held from begin until commit or abort

	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func begin(db *leveldb.DB, exclusive *sync.Mutex) *transaction {
	exclusive.Lock()
	return &transaction{
		exclusive: exclusive,
		inUse:     true,
		db:        db,
		batch:     new(leveldb.Batch),
		cache:     newCache(),
	}
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	k := handle.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.Put(handle, key, encodeN(value))
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	value, cached, deleted := t.cache.Get(string(handle.prefixKey(key)))
	if deleted {
		return nil
	}
	if cached {
		return value
	}
	return handle.Get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	_, cached, deleted := t.cache.Get(string(handle.prefixKey(key)))
	if deleted {
		return false
	}
	if cached {
		return true
	}
	return handle.Has(key)
}

// Commit - write the batch and release the transaction
func (t *transaction) Commit() error {
	if !t.inUse {
		return fault.TransactionNotStarted
	}
	err := t.db.Write(t.batch, nil)
	if nil != err {
		logger.Criticalf("transaction commit error: %s", err)
	}
	t.finish()
	return err
}

// Abort - discard the batch and release the transaction
//
// does nothing if already finished so it can be deferred
func (t *transaction) Abort() {
	if !t.inUse {
		return
	}
	t.finish()
}

func (t *transaction) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
	t.exclusive.Unlock()
}
