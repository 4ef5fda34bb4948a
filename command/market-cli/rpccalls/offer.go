// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/marketd/rpc/offer"
	"github.com/bitmark-inc/marketd/settlement"
)

// Deposit - native offer
func (c *Client) Deposit(arguments *offer.DepositArguments) (*offer.Reply, error) {
	var reply offer.Reply
	if err := c.call("Offer.Deposit", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transfer - fungible token offer
func (c *Client) Transfer(arguments *offer.TransferArguments) (*offer.Reply, error) {
	var reply offer.Reply
	if err := c.call("Offer.Transfer", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Accept - seller takes the top bid
func (c *Client) Accept(arguments *offer.AcceptArguments) (*offer.Reply, error) {
	var reply offer.Reply
	if err := c.call("Offer.Accept", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Resolution - outcome of a settlement
func (c *Client) Resolution(id settlement.Id) (*settlement.Resolution, error) {
	var reply settlement.Resolution
	if err := c.call("Offer.Resolution", &offer.ResolutionArguments{TaskId: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
