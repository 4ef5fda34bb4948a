// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mocks

import (
	"fmt"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/payment"
)

type transferMatcher struct {
	kind     payment.Kind
	currency currency.Id
	receiver string
	amount   currency.Amount
}

// TransferOf - match a transfer ignoring its random id and memo
func TransferOf(c currency.Id, receiver string, amount currency.Amount) interface{} {
	kind := payment.Request
	if c.IsNative() {
		kind = payment.Direct
	}
	return transferMatcher{
		kind:     kind,
		currency: c,
		receiver: receiver,
		amount:   amount,
	}
}

func (m transferMatcher) Matches(x interface{}) bool {
	t, ok := x.(payment.Transfer)
	if !ok {
		return false
	}
	return m.kind == t.Kind && m.currency == t.Currency && m.receiver == t.Receiver && m.amount == t.Amount
}

func (m transferMatcher) String() string {
	return fmt.Sprintf("%s transfer of %s %s to %q", m.kind, m.amount, m.currency, m.receiver)
}
