// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/rpc/certificate"
	"github.com/bitmark-inc/marketd/rpc/handler"
	"github.com/bitmark-inc/marketd/rpc/listeners"
	"github.com/bitmark-inc/marketd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// shared by the RPC and HTTPS listeners
	connections counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	m market.Operations,
	version string,
	chain string,
	extra ...interface{},
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, m, version, chain, &globalData.connections, extra...)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.connections,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			shutdown()
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		h := handler.New(
			log,
			s,
			m,
			time.Now(),
			version,
			chain,
			&globalData.connections,
			httpsConfiguration.MaximumConnections,
		)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, h)
		if nil != err {
			shutdown()
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			shutdown()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	shutdown()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - open client connections
func ConnectionCount() uint64 {
	return globalData.connections.Uint64()
}

func shutdown() {
	for _, l := range globalData.listeners {
		l.Close()
	}
	globalData.listeners = nil
}
