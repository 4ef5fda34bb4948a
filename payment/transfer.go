// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - outgoing transfers of funds held by the market
//
// a transfer is never executed here, it is staged in the outbox as
// part of the storage transaction that caused it and delivered later
// by the publisher, receivers deduplicate on the transfer id
package payment

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/marketd/currency"
)

// Kind - how a transfer is executed
type Kind string

// transfer kinds
const (
	Direct  = Kind("direct")  // native balance transfer
	Request = Kind("request") // transfer request to the currency contract
)

// Transfer - one outgoing payment
type Transfer struct {
	Id       uuid.UUID       `json:"id"`
	Kind     Kind            `json:"kind"`
	Currency currency.Id     `json:"currency"`
	Receiver string          `json:"receiver_id"`
	Amount   currency.Amount `json:"amount"`
	Memo     string          `json:"memo,omitempty"`
}

// Transferor - builds transfers for one currency
type Transferor interface {
	Transfer(receiver string, amount currency.Amount, memo string) Transfer
}

// For - select the transferor for a currency
func For(c currency.Id) Transferor {
	if c.IsNative() {
		return native{}
	}
	return contract{currency: c}
}

type native struct{}

func (native) Transfer(receiver string, amount currency.Amount, memo string) Transfer {
	return Transfer{
		Id:       uuid.New(),
		Kind:     Direct,
		Currency: currency.Native,
		Receiver: receiver,
		Amount:   amount,
		Memo:     memo,
	}
}

type contract struct {
	currency currency.Id
}

func (c contract) Transfer(receiver string, amount currency.Amount, memo string) Transfer {
	return Transfer{
		Id:       uuid.New(),
		Kind:     Request,
		Currency: c.currency,
		Receiver: receiver,
		Amount:   amount,
		Memo:     memo,
	}
}
