// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/storage"
)

// Set - the persisted set of accepted currencies
//
// the native currency is always accepted and never stored
type Set struct {
	pool *storage.PoolHandle
}

// NewSet - currency set backed by a storage pool
func NewSet(pool *storage.PoolHandle) *Set {
	return &Set{
		pool: pool,
	}
}

// Add - add currencies, for each id returns true if it was newly added
func (set *Set) Add(trx storage.Transaction, ids ...Id) ([]bool, error) {
	added := make([]bool, len(ids))
	for _, id := range ids {
		if !id.Valid() {
			return nil, fault.InvalidCurrency
		}
	}
	for i, id := range ids {
		if id.IsNative() || trx.Has(set.pool, []byte(id)) {
			continue
		}
		trx.Put(set.pool, []byte(id), []byte{})
		added[i] = true
	}
	return added, nil
}

// IsSupported - check a currency within a transaction
func (set *Set) IsSupported(trx storage.Transaction, id Id) bool {
	if id.IsNative() {
		return true
	}
	return trx.Has(set.pool, []byte(id))
}

// List - all accepted currencies, native first
func (set *Set) List() ([]Id, error) {
	ids := []Id{Native}
	err := set.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		ids = append(ids, Id(key))
		return nil
	})
	if nil != err {
		return nil, err
	}
	return ids, nil
}
