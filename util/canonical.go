// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/marketd/fault"
)

// CanonicalIPandPort - make the IP:Port canonical and add a prefix
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// the second result is true for an IPv6 address
func CanonicalIPandPort(prefix string, hostPort string) (string, bool, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, fault.InvalidIpAddress
	}

	IP := net.ParseIP(strings.Trim(host, " "))
	if nil == IP {
		return "", false, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if nil != err {
		return "", false, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", false, fault.InvalidPortNumber
	}

	if nil != IP.To4() {
		return prefix + IP.String() + ":" + strconv.Itoa(numericPort), false, nil
	}
	return prefix + "[" + IP.String() + "]:" + strconv.Itoa(numericPort), true, nil
}

// ListenAddress - expand "*:PORT" to "[::]:PORT" on the assumption
// that this will listen on tcp4 and tcp6, any other address is made
// canonical
func ListenAddress(listen string) (string, error) {
	listen = strings.TrimSpace(listen)
	if strings.HasPrefix(listen, "*:") {
		return "[::]" + listen[1:], nil
	}
	c, _, err := CanonicalIPandPort("", listen)
	return c, err
}
