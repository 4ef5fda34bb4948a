// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collection

import (
	"context"
	"encoding/json"
	"time"
)

// Service - net/rpc export of a contract, registered as "Collection"
type Service struct {
	contract Contract
	timeout  time.Duration
}

// NewService - wrap a contract for an RPC server
func NewService(contract Contract, timeout time.Duration) *Service {
	return &Service{
		contract: contract,
		timeout:  timeout,
	}
}

// TransferPayout - RPC form of Contract.TransferPayout
func (s *Service) TransferPayout(arguments *TransferPayoutArguments, reply *json.RawMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result, err := s.contract.TransferPayout(ctx, arguments)
	if nil != err {
		return err
	}
	*reply = result
	return nil
}
