// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/sale"
	"github.com/bitmark-inc/marketd/settlement"
)

// Owner - account allowed to change the currencies
func (m *Market) Owner() string {
	return m.owner
}

func (m *Market) Sale(key sale.Key) (*sale.Sale, error) {
	return m.registry.Get(key)
}

func (m *Market) Sales(start int, count int) ([]*sale.Sale, error) {
	return m.registry.List(start, count)
}

func (m *Market) SalesBySeller(seller string, start int, count int) ([]*sale.Sale, error) {
	return m.registry.BySeller(seller, start, count)
}

func (m *Market) SalesByContract(contract string, start int, count int) ([]*sale.Sale, error) {
	return m.registry.ByContract(contract, start, count)
}

func (m *Market) SalesByType(tag string, start int, count int) ([]*sale.Sale, error) {
	return m.registry.ByType(tag, start, count)
}

func (m *Market) Supply() int {
	return m.registry.Supply()
}

func (m *Market) SupplyBySeller(seller string) int {
	return m.registry.SupplyBySeller(seller)
}

func (m *Market) SupplyByContract(contract string) int {
	return m.registry.SupplyByContract(contract)
}

func (m *Market) SupplyByType(tag string) int {
	return m.registry.SupplyByType(tag)
}

func (m *Market) BidHistory(key sale.Key, c currency.Id) ([]sale.Bid, error) {
	return m.registry.BidHistory(key, c)
}

func (m *Market) SupportedCurrencies() ([]currency.Id, error) {
	return m.registry.SupportedCurrencies()
}

func (m *Market) StorageBalance(account string) currency.Amount {
	return m.quota.Balance(account)
}

func (m *Market) StorageMinimum() currency.Amount {
	return m.quota.Minimum()
}

// Resolution - outcome of a recent settlement
func (m *Market) Resolution(id settlement.Id) (settlement.Resolution, bool) {
	return m.settlement.Resolution(id)
}

// PendingSettlements - tasks awaiting the collection contract
func (m *Market) PendingSettlements() int {
	return m.db.Pool.Pending.Count(nil)
}
