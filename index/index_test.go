// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/index"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/storage"
)

func setup(t *testing.T) (*storage.Database, *index.Index) {
	fixtures.SetupTestLogger()
	db := fixtures.Database(t)
	ix := index.New(logger.New(fixtures.LogCategory), index.Handles{
		Sales:         db.Pool.Sales,
		SellerIndex:   db.Pool.SellerIndex,
		ContractIndex: db.Pool.ContractIndex,
		TypeIndex:     db.Pool.TypeIndex,
	})
	return db, ix
}

func teardown(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func newSale(seller string, contract string, asset string, tag string) *sale.Sale {
	return &sale.Sale{
		Seller:     seller,
		ApprovalId: 1,
		Contract:   contract,
		AssetId:    asset,
		Prices:     sale.Prices{currency.Native: 100},
		Bids:       sale.Bids{},
		TypeTag:    tag,
	}
}

func insert(t *testing.T, db *storage.Database, ix *index.Index, sales ...*sale.Sale) {
	trx := fixtures.Begin(t, db)
	for _, s := range sales {
		if err := ix.Insert(trx, s); nil != err {
			t.Fatalf("insert error: %s", err)
		}
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestInsertAndQuery(t *testing.T) {
	db, ix := setup(t)
	defer teardown(db)

	insert(t, db, ix,
		newSale("alice", "cat.collection", "cat#1", "cat"),
		newSale("alice", "cat.collection", "cat#2", ""),
		newSale("bob", "dog.collection", "dog#1", "dog"),
	)

	assert.Equal(t, 3, ix.Count(), "wrong count")
	assert.Equal(t, 2, ix.CountBySeller("alice"), "wrong alice count")
	assert.Equal(t, 1, ix.CountBySeller("bob"), "wrong bob count")
	assert.Equal(t, 0, ix.CountBySeller("ali"), "seller prefix matched")
	assert.Equal(t, 2, ix.CountByContract("cat.collection"), "wrong contract count")
	assert.Equal(t, 1, ix.CountByType("cat"), "wrong type count")

	sales, err := ix.BySeller("alice", 0, 10)
	assert.Nil(t, err, "query error")
	assert.Equal(t, 2, len(sales), "wrong number of sales")

	sales, err = ix.BySeller("alice", 1, 10)
	assert.Nil(t, err, "query error")
	assert.Equal(t, 1, len(sales), "wrong page size")

	sales, err = ix.ByContract("cat.collection", 0, 1)
	assert.Nil(t, err, "query error")
	assert.Equal(t, 1, len(sales), "limit not applied")
	assert.Equal(t, "cat#1", sales[0].AssetId, "wrong first asset")

	sales, err = ix.ByType("dog", 0, 10)
	assert.Nil(t, err, "query error")
	assert.Equal(t, "bob", sales[0].Seller, "wrong seller")

	_, err = ix.BySeller("alice", 0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero limit accepted")
}

func TestInsertDuplicate(t *testing.T) {
	db, ix := setup(t)
	defer teardown(db)

	s := newSale("alice", "cat.collection", "cat#1", "")
	insert(t, db, ix, s)

	trx := fixtures.Begin(t, db)
	defer trx.Abort()
	assert.Equal(t, fault.SaleAlreadyExists, ix.Insert(trx, s), "duplicate accepted")
}

func TestRemoveLeavesNoEmptySets(t *testing.T) {
	db, ix := setup(t)
	defer teardown(db)

	s := newSale("alice", "cat.collection", "cat#1", "cat")
	insert(t, db, ix, s)

	trx := fixtures.Begin(t, db)
	removed, err := ix.Remove(trx, s.Key())
	assert.Nil(t, err, "remove error")
	assert.Equal(t, "alice", removed.Seller, "wrong removed sale")
	assert.False(t, ix.Has(trx, s.Key()), "sale still visible in transaction")
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, 0, ix.Count(), "sale remains")
	assert.Equal(t, 0, db.Pool.SellerIndex.Count(nil), "seller entries remain")
	assert.Equal(t, 0, db.Pool.ContractIndex.Count(nil), "contract entries remain")
	assert.Equal(t, 0, db.Pool.TypeIndex.Count(nil), "type entries remain")

	_, err = ix.Get(s.Key())
	assert.Equal(t, fault.SaleNotFound, err, "removed sale found")
}

func TestRemoveMissing(t *testing.T) {
	db, ix := setup(t)
	defer teardown(db)

	trx := fixtures.Begin(t, db)
	defer trx.Abort()

	_, err := ix.Remove(trx, sale.NewKey("cat.collection", "cat#9"))
	assert.Equal(t, fault.SaleNotFound, err, "wrong error")
}

func TestUpdateKeepsIndexes(t *testing.T) {
	db, ix := setup(t)
	defer teardown(db)

	s := newSale("alice", "cat.collection", "cat#1", "")
	insert(t, db, ix, s)

	trx := fixtures.Begin(t, db)
	s.Prices[currency.Native] = 250
	assert.Nil(t, ix.Update(trx, s), "update error")
	assert.Nil(t, trx.Commit(), "commit error")

	u, err := ix.Get(s.Key())
	assert.Nil(t, err, "get error")
	assert.Equal(t, currency.Amount(250), u.Prices[currency.Native], "price not updated")
	assert.Equal(t, 1, ix.CountBySeller("alice"), "index changed")

	trx = fixtures.Begin(t, db)
	defer trx.Abort()
	assert.Equal(t, fault.SaleNotFound, ix.Update(trx, newSale("bob", "x", "y", "")), "update of missing sale accepted")
}
