// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/rpc/node"
	"github.com/bitmark-inc/marketd/rpc/offer"
	"github.com/bitmark-inc/marketd/rpc/quota"
	"github.com/bitmark-inc/marketd/rpc/sales"
)

// how long an RPC call may wait for its settlement to resolve
const waitTimeout = 20 * time.Second

// Create - register all services on a new server
//
// extra services are registered after the market services
func Create(log *logger.L, m market.Operations, version string, chain string, rpcCount *counter.Counter, extra ...interface{}) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(sales.New(log, m))
	_ = server.Register(offer.New(log, m, waitTimeout))
	_ = server.Register(quota.New(log, m))
	_ = server.Register(node.New(log, m, start, version, chain, rpcCount))

	for _, service := range extra {
		err := server.Register(service)
		if nil != err {
			log.Errorf("register service: %T  error: %s", service, err)
		}
	}

	return server
}
