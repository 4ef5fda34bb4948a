// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/command/market-cli/rpccalls"
)

type metadata struct {
	connect  string
	decimals int32
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "market-cli"
	app.Usage = "command line access to a marketd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " marketd RPC `HOST:PORT`",
			EnvVar: "MARKETD_CONNECT",
		},
		cli.IntFlag{
			Name:  "decimals, d",
			Value: 0,
			Usage: " decimal places of the currency `N`, amounts are base units when zero",
		},
	}

	keyFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "key, k",
			Usage: "+sale `KEY`",
		},
		cli.StringFlag{
			Name:  "contract",
			Usage: "+collection contract `ID` (with --token)",
		},
		cli.StringFlag{
			Name:  "token, t",
			Usage: "+token `ID` (with --contract)",
		},
	}

	filterFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "seller, s",
			Usage: " only sales by seller `ACCOUNT`",
		},
		cli.StringFlag{
			Name:  "contract",
			Usage: " only sales from collection `ID`",
		},
		cli.StringFlag{
			Name:  "type",
			Usage: " only sales of token type `TAG`",
		},
	}

	waitFlag := cli.BoolFlag{
		Name:  "wait, w",
		Usage: " wait for the settlement to resolve",
	}

	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display marketd status",
			Action: runInfo,
		},
		{
			Name:      "sale",
			Usage:     "display one sale",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     keyFlags,
			Action:    runSale,
		},
		{
			Name:      "sales",
			Usage:     "list sales in key order",
			ArgsUsage: "\n   (at most one filter)",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "start",
					Value: 0,
					Usage: " first sale `INDEX`",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 20,
					Usage: " maximum sales to show `COUNT`",
				},
			}, filterFlags...),
			Action: runSales,
		},
		{
			Name:      "supply",
			Usage:     "count sales",
			ArgsUsage: "\n   (at most one filter)",
			Flags:     filterFlags,
			Action:    runSupply,
		},
		{
			Name:      "bids",
			Usage:     "bid history of a sale in one currency",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "currency",
					Value: "native",
					Usage: " currency `ID`",
				},
			}, keyFlags...),
			Action: runBids,
		},
		{
			Name:      "update-price",
			Usage:     "change the price of a sale",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "currency",
					Value: "native",
					Usage: " currency `ID`",
				},
				cli.StringFlag{
					Name:  "price, p",
					Usage: "*new price `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "caller",
					Usage: "*seller `ACCOUNT`",
				},
			}, keyFlags...),
			Action: runUpdatePrice,
		},
		{
			Name:      "remove",
			Usage:     "delist a sale, bids are refunded",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "caller",
					Usage: "*seller `ACCOUNT`",
				},
			}, keyFlags...),
			Action: runRemove,
		},
		{
			Name:      "offer",
			Usage:     "native currency offer, buys at or above the price",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Usage: "*buyer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Usage: "*attached deposit `AMOUNT`",
				},
				waitFlag,
			}, keyFlags...),
			Action: runOffer,
		},
		{
			Name:      "transfer",
			Usage:     "fungible token offer, as delivered by the token contract",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "currency",
					Usage: "*token contract `ID`",
				},
				cli.StringFlag{
					Name:  "sender",
					Usage: "*buyer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Usage: "*transferred `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "contract",
					Usage: "*collection contract `ID`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Usage: "*token `ID`",
				},
				waitFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "accept",
			Usage:     "seller accepts the top bid",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "currency",
					Value: "native",
					Usage: " currency `ID`",
				},
				cli.StringFlag{
					Name:  "caller",
					Usage: "*seller `ACCOUNT`",
				},
				waitFlag,
			}, keyFlags...),
			Action: runAccept,
		},
		{
			Name:      "resolution",
			Usage:     "outcome of a recent settlement",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*settlement task `ID`",
				},
			},
			Action: runResolution,
		},
		{
			Name:      "storage",
			Usage:     "storage deposits that pay for listed sales",
			ArgsUsage: "\n   (* = required)",
			Subcommands: []cli.Command{
				{
					Name:  "deposit",
					Usage: "add to an account's storage",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "account",
							Usage: "*`ACCOUNT`",
						},
						cli.StringFlag{
							Name:  "amount, a",
							Usage: "*native `AMOUNT`",
						},
					},
					Action: runStorageDeposit,
				},
				{
					Name:  "withdraw",
					Usage: "return storage not needed by active sales",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "account",
							Usage: "*`ACCOUNT`",
						},
					},
					Action: runStorageWithdraw,
				},
				{
					Name:  "balance",
					Usage: "display an account's storage",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "account",
							Usage: "*`ACCOUNT`",
						},
					},
					Action: runStorageBalance,
				},
			},
		},
		{
			Name:      "add-currency",
			Usage:     "accept more currencies, market owner only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller",
					Usage: "*market owner `ACCOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "currency",
					Usage: "*currency `ID` (repeatable)",
				},
			},
			Action: runAddCurrencies,
		},
		{
			Name:      "mint",
			Usage:     "create a token in a local collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract",
					Usage: "*collection contract `ID`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Usage: "*owner `ACCOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "royalty",
					Usage: " perpetual royalty `ACCOUNT=BPS` (repeatable)",
				},
				cli.StringFlag{
					Name:  "type",
					Usage: " token type `TAG`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "approve",
			Usage:     "approve the market for a token in a local collection and list it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract",
					Usage: "*collection contract `ID`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Usage: "*token owner `ACCOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "price, p",
					Usage: "*sale condition `CURRENCY=AMOUNT` (repeatable)",
				},
				cli.StringFlag{
					Name:  "type",
					Usage: " token type `TAG`",
				},
				cli.BoolFlag{
					Name:  "auction",
					Usage: " offers below the price become bids",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "watch",
			Usage:     "display transfers published by marketd",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher",
					Usage: "*publisher `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "server-key",
					Usage: "*publisher public key `FILE`",
				},
				cli.StringFlag{
					Name:  "public-key",
					Usage: "*client public key `FILE`",
				},
				cli.StringFlag{
					Name:  "private-key",
					Usage: "*client private key `FILE`",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 0,
					Usage: " stop after `COUNT` transfers, zero for no limit",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display market-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		decimals := c.GlobalInt("decimals")
		if decimals < 0 || decimals > 32 {
			return fmt.Errorf("decimals: %d is out of range", decimals)
		}

		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			decimals: int32(decimals),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// connect to the configured marketd
func getClient(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}
