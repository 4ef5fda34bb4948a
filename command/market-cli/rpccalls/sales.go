// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/rpc/sales"
	"github.com/bitmark-inc/marketd/sale"
)

// GetSale - one listed sale
func (c *Client) GetSale(key sale.Key) (*sales.SaleReply, error) {
	var reply sales.SaleReply
	if err := c.call("Sales.Get", &sales.GetArguments{Key: key}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListSales - a page of sales, at most one filter may be set
func (c *Client) ListSales(arguments *sales.ListArguments) (*sales.ListReply, error) {
	var reply sales.ListReply
	if err := c.call("Sales.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Supply - count of sales matching the filter
func (c *Client) Supply(arguments *sales.SupplyArguments) (int, error) {
	var reply sales.SupplyReply
	if err := c.call("Sales.Supply", arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Count, nil
}

// Bids - retained bid history
func (c *Client) Bids(key sale.Key, id currency.Id) ([]sale.Bid, error) {
	var reply sales.BidsReply
	if err := c.call("Sales.Bids", &sales.BidsArguments{Key: key, Currency: id}, &reply); nil != err {
		return nil, err
	}
	return reply.Bids, nil
}

// UpdatePrice - seller changes a price
func (c *Client) UpdatePrice(arguments *sales.UpdatePriceArguments) (*sales.UpdatePriceReply, error) {
	var reply sales.UpdatePriceReply
	if err := c.call("Sales.UpdatePrice", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RemoveSale - seller delists
func (c *Client) RemoveSale(key sale.Key, caller string) (*sales.RemoveReply, error) {
	var reply sales.RemoveReply
	if err := c.call("Sales.Remove", &sales.RemoveArguments{Key: key, Caller: caller}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
