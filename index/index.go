// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - sale records and the seller, collection and type
// indexes that must always agree with them
//
// an index set is stored as one key per member so a set with no
// members has no keys at all
package index

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/util"
)

// Handles - the storage pools used by the index
type Handles struct {
	Sales         *storage.PoolHandle
	SellerIndex   *storage.PoolHandle
	ContractIndex *storage.PoolHandle
	TypeIndex     *storage.PoolHandle
}

// Index - sale store
type Index struct {
	log   *logger.L
	pools Handles
}

// New - create an index over a set of pools
func New(log *logger.L, pools Handles) *Index {
	return &Index{
		log:   log,
		pools: pools,
	}
}

func sellerKey(seller string, key sale.Key) []byte {
	return append(util.Prefixed(nil, []byte(seller)), key...)
}

func contractKey(contract string, assetId string) []byte {
	return append(util.Prefixed(nil, []byte(contract)), assetId...)
}

func typeKey(tag string, key sale.Key) []byte {
	return append(util.Prefixed(nil, []byte(tag)), key...)
}

// Insert - store a new sale and add it to every index
func (ix *Index) Insert(trx storage.Transaction, s *sale.Sale) error {
	key := s.Key()
	if trx.Has(ix.pools.Sales, key) {
		return fault.SaleAlreadyExists
	}

	packed, err := s.Pack()
	if nil != err {
		return err
	}

	trx.Put(ix.pools.Sales, key, packed)
	trx.Put(ix.pools.SellerIndex, sellerKey(s.Seller, key), []byte{})
	trx.Put(ix.pools.ContractIndex, contractKey(s.Contract, s.AssetId), []byte{})
	if "" != s.TypeTag {
		trx.Put(ix.pools.TypeIndex, typeKey(s.TypeTag, key), []byte{})
	}

	ix.log.Debugf("insert: %s  seller: %q", key, s.Seller)
	return nil
}

// Update - replace the record of an existing sale
//
// only prices and bids may change so the indexes are not touched
func (ix *Index) Update(trx storage.Transaction, s *sale.Sale) error {
	key := s.Key()
	if !trx.Has(ix.pools.Sales, key) {
		return fault.SaleNotFound
	}
	packed, err := s.Pack()
	if nil != err {
		return err
	}
	trx.Put(ix.pools.Sales, key, packed)
	return nil
}

// Remove - delete a sale and all of its index entries
//
// everything is read before anything is deleted so a failure leaves
// the transaction unchanged
func (ix *Index) Remove(trx storage.Transaction, key sale.Key) (*sale.Sale, error) {
	s, err := ix.Fetch(trx, key)
	if nil != err {
		return nil, err
	}

	sk := sellerKey(s.Seller, key)
	ck := contractKey(s.Contract, s.AssetId)
	if !trx.Has(ix.pools.SellerIndex, sk) || !trx.Has(ix.pools.ContractIndex, ck) {
		ix.log.Criticalf("sale: %s missing index entry", key)
		return nil, fault.SaleNotFound
	}
	tk := []byte(nil)
	if "" != s.TypeTag {
		tk = typeKey(s.TypeTag, key)
		if !trx.Has(ix.pools.TypeIndex, tk) {
			ix.log.Criticalf("sale: %s missing type entry", key)
			return nil, fault.SaleNotFound
		}
	}

	trx.Delete(ix.pools.Sales, key)
	trx.Delete(ix.pools.SellerIndex, sk)
	trx.Delete(ix.pools.ContractIndex, ck)
	if nil != tk {
		trx.Delete(ix.pools.TypeIndex, tk)
	}

	ix.log.Debugf("remove: %s  seller: %q", key, s.Seller)
	return s, nil
}

// Fetch - read a sale inside a transaction
func (ix *Index) Fetch(trx storage.Transaction, key sale.Key) (*sale.Sale, error) {
	packed := trx.Get(ix.pools.Sales, key)
	if nil == packed {
		return nil, fault.SaleNotFound
	}
	return sale.Unpack(packed)
}

// Has - check if a sale exists inside a transaction
func (ix *Index) Has(trx storage.Transaction, key sale.Key) bool {
	return trx.Has(ix.pools.Sales, key)
}

// Get - read a committed sale
func (ix *Index) Get(key sale.Key) (*sale.Sale, error) {
	packed := ix.pools.Sales.Get(key)
	if nil == packed {
		return nil, fault.SaleNotFound
	}
	return sale.Unpack(packed)
}
