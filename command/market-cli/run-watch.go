// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/payment"
	"github.com/bitmark-inc/marketd/publish"
	"github.com/bitmark-inc/marketd/zmqutil"
)

type transferDisplay struct {
	payment.Transfer
	Display string `json:"display"`
}

// print published transfers, duplicates are dropped by transfer id
func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publisher, err := checkRequired(c, "publisher")
	if nil != err {
		return err
	}
	serverKeyFile, err := checkRequired(c, "server-key")
	if nil != err {
		return err
	}
	publicKeyFile, err := checkRequired(c, "public-key")
	if nil != err {
		return err
	}
	privateKeyFile, err := checkRequired(c, "private-key")
	if nil != err {
		return err
	}

	serverKey, err := zmqutil.ReadPublicKeyFile(serverKeyFile)
	if nil != err {
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(publicKeyFile)
	if nil != err {
		return err
	}
	privateKey, err := zmqutil.ReadPrivateKeyFile(privateKeyFile)
	if nil != err {
		return err
	}

	socket, err := zmqutil.NewSubscriber(serverKey, privateKey, publicKey, publisher, publish.Topic)
	if nil != err {
		return err
	}
	defer socket.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "subscribed to: %s\n", publisher)
	}

	limit := c.Int("limit")
	seen := make(map[string]struct{})

	for n := 0; 0 == limit || n < limit; {
		parts, err := socket.RecvMessageBytes(0)
		if nil != err {
			return err
		}
		if 2 != len(parts) || publish.Topic != string(parts[0]) {
			fmt.Fprintf(m.e, "ignored message with: %d parts\n", len(parts))
			continue
		}

		var t payment.Transfer
		if err := json.Unmarshal(parts[1], &t); nil != err {
			fmt.Fprintf(m.e, "decode error: %s\n", err)
			continue
		}
		id := t.Id.String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		printJson(m.w, transferDisplay{
			Transfer: t,
			Display:  formatAmount(t.Amount, m.decimals),
		})
		n += 1
	}
	return nil
}
