// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/marketd/rpc/local"
	"github.com/bitmark-inc/marketd/rpc/sales"
)

// Mint - local chain only
func (c *Client) Mint(arguments *local.MintArguments) (*local.TokenReply, error) {
	var reply local.TokenReply
	if err := c.call("Collection.Mint", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Approve - local chain only, lists the token using the msg
func (c *Client) Approve(arguments *local.ApproveArguments) (*sales.SaleReply, error) {
	var reply sales.SaleReply
	if err := c.call("Collection.Approve", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TokenOwner - local chain only
func (c *Client) TokenOwner(contract string, assetId string) (string, error) {
	var reply local.TokenReply
	if err := c.call("Collection.Owner", &local.OwnerArguments{Contract: contract, AssetId: assetId}, &reply); nil != err {
		return "", err
	}
	return reply.Owner, nil
}
