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

// Operations - the market as seen by the RPC services
type Operations interface {
	Owner() string

	OnApproved(arguments *ApprovedArguments) (*sale.Sale, error)
	UpdatePrice(key sale.Key, c currency.Id, price currency.Amount, caller string) error
	RemoveSale(key sale.Key, caller string) error

	Offer(key sale.Key, buyer string, deposit currency.Amount) (*settlement.Ticket, error)
	OnTransfer(c currency.Id, sender string, amount currency.Amount, msg string) (*settlement.Ticket, error)
	AcceptOffer(key sale.Key, c currency.Id, caller string) (*settlement.Ticket, error)
	Resolution(id settlement.Id) (settlement.Resolution, bool)
	PendingSettlements() int

	StorageDeposit(account string, amount currency.Amount) (currency.Amount, error)
	StorageWithdraw(account string) (currency.Amount, error)
	StorageBalance(account string) currency.Amount
	StorageMinimum() currency.Amount

	AddCurrencies(caller string, ids ...currency.Id) ([]bool, error)
	SupportedCurrencies() ([]currency.Id, error)

	Sale(key sale.Key) (*sale.Sale, error)
	Sales(start int, count int) ([]*sale.Sale, error)
	SalesBySeller(seller string, start int, count int) ([]*sale.Sale, error)
	SalesByContract(contract string, start int, count int) ([]*sale.Sale, error)
	SalesByType(tag string, start int, count int) ([]*sale.Sale, error)
	Supply() int
	SupplyBySeller(seller string) int
	SupplyByContract(contract string) int
	SupplyByType(tag string) int
	BidHistory(key sale.Key, c currency.Id) ([]sale.Bid, error)
}

var _ Operations = (*Market)(nil)
