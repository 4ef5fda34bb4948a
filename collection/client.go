// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collection

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/marketd/fault"
)

// Client - JSON-RPC access to a remote collection contract
type Client struct {
	address     string
	fingerprint []byte
}

// NewClient - connect lazily to address, pinning the server certificate
// to a SHA3-256 fingerprint when one is given
func NewClient(address string, fingerprint []byte) *Client {
	return &Client{
		address:     address,
		fingerprint: fingerprint,
	}
}

// Fingerprint - SHA3-256 of a DER certificate
func Fingerprint(certificate []byte) []byte {
	f := sha3.Sum256(certificate)
	return f[:]
}

func (c *Client) tlsConfig() *tls.Config {
	config := &tls.Config{
		InsecureSkipVerify: true,
	}
	if 0 == len(c.fingerprint) {
		return config
	}
	config.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		if 0 == len(rawCerts) || !bytes.Equal(c.fingerprint, Fingerprint(rawCerts[0])) {
			return fault.WrongFingerprint
		}
		return nil
	}
	return config
}

// TransferPayout - call Collection.TransferPayout on the remote
//
// only an error returned by the contract itself is a failed transfer,
// transport failures and an expired context give fault.PayoutOutcomeUnknown
// and the call must be repeated with the same TaskId
func (c *Client) TransferPayout(ctx context.Context, arguments *TransferPayoutArguments) ([]byte, error) {

	dialer := &net.Dialer{}
	raw, err := dialer.DialContext(ctx, "tcp", c.address)
	if nil != err {
		return nil, fault.PayoutOutcomeUnknown
	}
	conn := tls.Client(raw, c.tlsConfig())
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply json.RawMessage
	call := client.Go("Collection.TransferPayout", arguments, &reply, nil)

	select {
	case <-ctx.Done():
		return nil, fault.PayoutOutcomeUnknown
	case <-call.Done:
	}
	if nil != call.Error {
		if _, ok := call.Error.(rpc.ServerError); ok {
			return nil, call.Error
		}
		return nil, fault.PayoutOutcomeUnknown
	}
	return reply, nil
}
