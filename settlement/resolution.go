// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"github.com/bitmark-inc/marketd/currency"
)

// Outcome - final state of a settlement
type Outcome string

const (
	Paid     = Outcome("paid")
	Refunded = Outcome("refunded")
)

// Resolution - result of Phase 2
//
// Returned is zero when all funds were consumed, otherwise the amount
// handed back (or already paid out directly for the native currency)
type Resolution struct {
	TaskId   Id              `json:"task_id"`
	Outcome  Outcome         `json:"outcome"`
	Currency currency.Id     `json:"currency"`
	Buyer    string          `json:"buyer_id"`
	Returned currency.Amount `json:"returned"`
	Reason   string          `json:"reason,omitempty"`
}

// Ticket - handle on a settlement in progress
type Ticket struct {
	Task *Task
	done chan Resolution
}

// NewTicket - handle for a task whose resolution is not yet known
func NewTicket(task *Task) *Ticket {
	return &Ticket{
		Task: task,
		done: make(chan Resolution, 1),
	}
}

// Done - receives the resolution once
func (t *Ticket) Done() <-chan Resolution {
	return t.done
}
