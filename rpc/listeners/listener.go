// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/util"
)

const (
	minConnectionCount = 1
)

// Listener - a server accepting client connections
type Listener interface {
	Serve() error
	Close()
}

// canonical listen addresses and the network for each
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	listen := make([]string, len(addrs))
	for i, address := range addrs {
		canonical, err := util.ListenAddress(address)
		if nil != err {
			log.Errorf("listen address: %q  error: %s", address, err)
			return nil, nil, err
		}
		listen[i] = canonical

		switch {
		case strings.HasPrefix(canonical, "[::]:"):
			networks[i] = "tcp"
		case strings.HasPrefix(canonical, "["):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}
	}
	return networks, listen, nil
}

// close every listener that was opened
func closeAll(listeners []net.Listener) {
	for _, l := range listeners {
		_ = l.Close()
	}
}
