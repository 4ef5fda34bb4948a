// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast queued transfers on a CurveZMQ PUB socket
//
// delivery is at least once, subscribers deduplicate by transfer id
package publish

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/marketd/background"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/zmqutil"
)

const (
	zapDomain       = "publisher"
	defaultInterval = time.Second
)

// Configuration - publisher section of the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
	Interval   string   `gluamapper:"interval" json:"interval"`
}

type publishData struct {
	sync.Mutex

	log        *logger.L
	socket4    *zmq.Socket
	socket6    *zmq.Socket
	background *background.T

	initialised bool
}

var globalData publishData

// Initialise - bind the sockets and start publishing from source
func Initialise(configuration *Configuration, source Source) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log
	log.Info("starting…")

	interval := defaultInterval
	if "" != configuration.Interval {
		d, err := time.ParseDuration(configuration.Interval)
		if nil != err {
			log.Errorf("interval: %q  error: %s", configuration.Interval, err)
			return err
		}
		interval = d
	}

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}

	if err := zmqutil.StartAuthentication(); nil != err {
		return err
	}

	globalData.socket4, globalData.socket6, err = zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	senders := []Sender{}
	if nil != globalData.socket4 {
		senders = append(senders, globalData.socket4)
	}
	if nil != globalData.socket6 {
		senders = append(senders, globalData.socket6)
	}

	processes := background.Processes{
		newBroadcaster(logger.New("broadcaster"), source, interval, senders...),
	}
	globalData.background = background.Start(processes, nil)
	globalData.initialised = true

	return nil
}

// Finalise - stop publishing and close the sockets
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.background.Stop()

	if nil != globalData.socket4 {
		globalData.socket4.Close()
	}
	if nil != globalData.socket6 {
		globalData.socket6.Close()
	}

	globalData.initialised = false
	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}
