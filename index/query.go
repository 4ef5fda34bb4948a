// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

// Count - number of active sales
func (ix *Index) Count() int {
	return ix.pools.Sales.Count(nil)
}

// CountBySeller - number of sales listed by a seller
func (ix *Index) CountBySeller(seller string) int {
	return ix.pools.SellerIndex.Count(util.Prefixed(nil, []byte(seller)))
}

// CountByContract - number of sales from one collection contract
func (ix *Index) CountByContract(contract string) int {
	return ix.pools.ContractIndex.Count(util.Prefixed(nil, []byte(contract)))
}

// CountByType - number of sales with a type tag
func (ix *Index) CountByType(tag string) int {
	return ix.pools.TypeIndex.Count(util.Prefixed(nil, []byte(tag)))
}

// List - a page of all sales
func (ix *Index) List(start int, count int) ([]*sale.Sale, error) {
	cursor := ix.pools.Sales.NewFetchCursor()
	elements, err := page(cursor, start, count)
	if nil != err {
		return nil, err
	}
	sales := make([]*sale.Sale, 0, len(elements))
	for _, e := range elements {
		s, err := sale.Unpack(e.Value)
		if nil != err {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, nil
}

// BySeller - a page of the sales listed by a seller
func (ix *Index) BySeller(seller string, start int, count int) ([]*sale.Sale, error) {
	cursor := ix.pools.SellerIndex.NewPrefixCursor(util.Prefixed(nil, []byte(seller)))
	return ix.resolve(cursor, start, count, func(remainder []byte) sale.Key {
		return sale.Key(remainder)
	})
}

// ByContract - a page of the sales from one collection contract
func (ix *Index) ByContract(contract string, start int, count int) ([]*sale.Sale, error) {
	cursor := ix.pools.ContractIndex.NewPrefixCursor(util.Prefixed(nil, []byte(contract)))
	return ix.resolve(cursor, start, count, func(remainder []byte) sale.Key {
		return sale.NewKey(contract, string(remainder))
	})
}

// ByType - a page of the sales with a type tag
func (ix *Index) ByType(tag string, start int, count int) ([]*sale.Sale, error) {
	cursor := ix.pools.TypeIndex.NewPrefixCursor(util.Prefixed(nil, []byte(tag)))
	return ix.resolve(cursor, start, count, func(remainder []byte) sale.Key {
		return sale.Key(remainder)
	})
}

// convert index entries to the sales they refer to
func (ix *Index) resolve(cursor *storage.FetchCursor, start int, count int, toKey func([]byte) sale.Key) ([]*sale.Sale, error) {
	elements, err := page(cursor, start, count)
	if nil != err {
		return nil, err
	}

	sales := make([]*sale.Sale, 0, len(elements))
	for _, e := range elements {
		key := toKey(e.Key)
		s, err := ix.Get(key)
		if nil != err {
			ix.log.Errorf("index entry: %x refers to missing sale: %s", e.Key, key)
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, nil
}

func page(cursor *storage.FetchCursor, start int, count int) ([]storage.Element, error) {
	if start < 0 || count <= 0 {
		return nil, fault.InvalidCount
	}
	if err := cursor.Skip(start); nil != err {
		return nil, err
	}
	return cursor.Fetch(count)
}
