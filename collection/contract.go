// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package collection - access to the asset ownership contracts
package collection

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
)

// TransferPayoutArguments - transfer an asset and ask for the split of balance
//
// Account is the holder of the approval, a repeated TaskId returns the
// payout of the first successful call
type TransferPayoutArguments struct {
	TaskId       string          `json:"task_id"`
	Account      string          `json:"account_id"`
	Receiver     string          `json:"receiver_id"`
	AssetId      string          `json:"token_id"`
	ApprovalId   uint64          `json:"approval_id"`
	Memo         string          `json:"memo"`
	Balance      currency.Amount `json:"balance"`
	MaxLenPayout int             `json:"max_len_payout"`
}

// Payout - account to amount advisory returned by a transfer
type Payout struct {
	Payout map[string]currency.Amount `json:"payout"`
}

// Contract - a collection contract
//
// the result is the raw payout advisory, it is validated by the caller
type Contract interface {
	TransferPayout(ctx context.Context, arguments *TransferPayoutArguments) ([]byte, error)
}

// ParsePayout - decode an advisory
func ParsePayout(buffer []byte) (*Payout, error) {
	p := &Payout{}
	if err := json.Unmarshal(buffer, p); nil != err {
		return nil, err
	}
	return p, nil
}

// Directory - contract id to contract
type Directory struct {
	sync.RWMutex
	contracts map[string]Contract
}

// NewDirectory - empty directory
func NewDirectory() *Directory {
	return &Directory{
		contracts: make(map[string]Contract),
	}
}

// Register - add or replace a contract
func (d *Directory) Register(id string, contract Contract) {
	d.Lock()
	d.contracts[id] = contract
	d.Unlock()
}

// Lookup - find a contract by id
func (d *Directory) Lookup(id string) (Contract, error) {
	d.RLock()
	defer d.RUnlock()
	contract, ok := d.contracts[id]
	if !ok {
		return nil, fault.UnknownCollection
	}
	return contract, nil
}

// Ids - registered contract ids
func (d *Directory) Ids() []string {
	d.RLock()
	defer d.RUnlock()
	ids := make([]string, 0, len(d.contracts))
	for id := range d.contracts {
		ids = append(ids, id)
	}
	return ids
}
