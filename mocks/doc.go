// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=dispatcher.go -package=mocks github.com/bitmark-inc/marketd/payment Dispatcher
//go:generate mockgen -destination=contract.go -package=mocks github.com/bitmark-inc/marketd/collection Contract
//go:generate mockgen -destination=operations.go -package=mocks github.com/bitmark-inc/marketd/market Operations

package mocks
