// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from sellers, buyers, collection contracts and fungible token contracts
//
// services:
//   Sales    approve, list, update price, remove, bid history
//   Offer    native deposits, token transfers, accept, resolution
//   Storage  deposit, withdraw, balance
//   Node     market information, add currencies
//
// standard golang RPC services can be used on the client side to
// access these services, the same codec is available as an HTTPS POST
// to /marketd/rpc
//
// account names in the arguments (Caller, Buyer, Sender, Signer, Owner)
// are taken as given: the listeners must only be reachable by a gateway
// that has already authenticated the chain transaction carrying them,
// any client that can connect can act as any account
package rpc
