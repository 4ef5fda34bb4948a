// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/rpc/listeners"
)

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := randomListen()
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	if err := s.Register(Add{}); nil != err {
		t.Fatalf("register error: %s", err)
	}

	conf, fin := tlsConfig(t)

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		conf,
		fin,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	conn := dialTLS(t, listen)
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 2, B: 5}, &reply)
	assert.Nil(t, err, "wrong call")
	assert.Equal(t, 7, reply, "wrong reply")
}

func TestNewRPCRejects(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	log := logger.New(fixtures.LogCategory)

	_, err := listeners.NewRPC(
		&listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{randomListen()}},
		log, &count, rpc.NewServer(), nil, [32]byte{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong connection limit error")

	_, err = listeners.NewRPC(
		&listeners.RPCConfiguration{MaximumConnections: 5},
		log, &count, rpc.NewServer(), nil, [32]byte{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong missing listen error")

	_, err = listeners.NewRPC(
		&listeners.RPCConfiguration{MaximumConnections: 5, Listen: []string{"not.an.ip:1234"}},
		log, &count, rpc.NewServer(), nil, [32]byte{},
	)
	assert.Equal(t, fault.InvalidIpAddress, err, "wrong address error")
}
