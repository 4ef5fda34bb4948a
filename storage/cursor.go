// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/marketd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	strip    int
	maxRange *ldb_util.Range
}

// NewFetchCursor - initialise a cursor to the start of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		strip:    1,
		maxRange: p.prefixRange(nil),
	}
}

// NewPrefixCursor - initialise a cursor over keys beginning with start
//
// the start bytes are removed from the keys returned
func (p *PoolHandle) NewPrefixCursor(start []byte) *FetchCursor {
	return &FetchCursor{
		pool:     p,
		strip:    1 + len(start),
		maxRange: p.prefixRange(start),
	}
}

// Skip - move the cursor past the next n elements
func (cursor *FetchCursor) Skip(n int) error {
	if nil == cursor {
		return fault.InvalidCursor
	}
	if n <= 0 {
		return nil
	}
	_, err := cursor.Fetch(n)
	return err
}

// Fetch - return up to count elements and advance the cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	iter := cursor.pool.db.NewIterator(cursor.maxRange, nil)

	results := make([]Element, 0, count)
	var lastKey []byte
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		lastKey = append(lastKey[:0], key...)

		results = append(results, element(key[cursor.strip:], value))
		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// the next possible key is the last key followed by a zero byte
	if nil != lastKey {
		cursor.maxRange.Start = append(lastKey, 0x00)
	}
	return results, err
}

// Map - run a function on all remaining elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	iter := cursor.pool.db.NewIterator(cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {
		e := element(iter.Key()[cursor.strip:], iter.Value())
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

func element(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key))
	copy(dataKey, key)

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
