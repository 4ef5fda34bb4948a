// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/marketd/fault"
)

// weights of the market requests
const (
	// a purchase or bid that may queue a settlement
	SettlementCost = 5

	// longest a request is held back before it is refused
	MaximumDelay = 2 * time.Second
)

// Limit - a single query or listing change
func Limit(limiter *rate.Limiter) error {
	return take(limiter, 1)
}

// LimitSettlement - a request that moves funds
func LimitSettlement(limiter *rate.Limiter) error {
	return take(limiter, SettlementCost)
}

// LimitN - a page of count items, a count outside 1..maximumCount
// still costs one token and gives fault.InvalidCount
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := take(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return take(limiter, count)
}

func take(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	delay := r.Delay()
	if delay > MaximumDelay {
		r.Cancel()
		return fault.RateLimiting
	}
	time.Sleep(delay)
	return nil
}
