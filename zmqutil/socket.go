// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/marketd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind a list of host:port addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil)
	socket6 := (*zmq.Socket)(nil)

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := util.CanonicalIPandPort("tcp://", address)
		if nil != err {
			return fail(err)
		}

		socket := &socket4
		if v6 {
			socket = &socket6
		}
		if nil == *socket {
			*socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
		}

		if err := (*socket).Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - curve server socket accepting any client
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	socket.SetCurveServer(1)
	socket.SetCurveSecretkey(string(privateKey))
	socket.SetZapDomain(zapDomain)
	socket.SetIdentity(string(publicKey))
	socket.SetIpv6(v6)

	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}

// NewSubscriber - curve client SUB socket connected to a publisher
func NewSubscriber(serverPublicKey []byte, privateKey []byte, publicKey []byte, address string, topic string) (*zmq.Socket, error) {

	connectTo, v6, err := util.CanonicalIPandPort("tcp://", address)
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	socket.SetCurveServerkey(string(serverPublicKey))
	socket.SetCurvePublickey(string(publicKey))
	socket.SetCurveSecretkey(string(privateKey))
	socket.SetIpv6(v6)
	socket.SetLinger(0)

	if err := socket.SetSubscribe(topic); nil != err {
		socket.Close()
		return nil, err
	}
	if err := socket.Connect(connectTo); nil != err {
		socket.Close()
		return nil, err
	}
	return socket, nil
}
