// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// the market state is kept in a single LevelDB database split into
// pools, each pool is identified by a one byte key prefix:
//
//   S - sale key                               → packed sale record
//   O - prefixed(seller) ⧺ sale key            → nil
//   C - prefixed(contract) ⧺ asset id          → nil
//   T - prefixed(type tag) ⧺ sale key          → nil
//   F - currency id                            → nil
//   D - account                                → uint64 storage paid
//   X - uint64 sequence                        → JSON transfer
//   K - settlement id                          → JSON settlement task
//   P - setting name                           → setting value
//
// all writes go through a Transaction that collects them in a single
// batch so that an operation either changes everything or nothing
package storage
