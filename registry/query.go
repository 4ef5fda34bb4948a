// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/marketd/sale"
)

// Supply - number of sales
func (r *Registry) Supply() int {
	return r.index.Count()
}

// SupplyBySeller - number of sales listed by one account
func (r *Registry) SupplyBySeller(seller string) int {
	return r.index.CountBySeller(seller)
}

// SupplyByContract - number of sales of one collection
func (r *Registry) SupplyByContract(contract string) int {
	return r.index.CountByContract(contract)
}

// SupplyByType - number of sales with a type tag
func (r *Registry) SupplyByType(tag string) int {
	return r.index.CountByType(tag)
}

// List - all sales in key order
func (r *Registry) List(start int, count int) ([]*sale.Sale, error) {
	return r.index.List(start, count)
}

// BySeller - page of one seller's sales
func (r *Registry) BySeller(seller string, start int, count int) ([]*sale.Sale, error) {
	return r.index.BySeller(seller, start, count)
}

// ByContract - page of one collection's sales
func (r *Registry) ByContract(contract string, start int, count int) ([]*sale.Sale, error) {
	return r.index.ByContract(contract, start, count)
}

// ByType - page of sales with a type tag
func (r *Registry) ByType(tag string, start int, count int) ([]*sale.Sale, error) {
	return r.index.ByType(tag, start, count)
}
