// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/marketd/counter"
)

func TestCounter(t *testing.T) {

	var c counter.Counter

	if 0 != c.Uint64() {
		t.Errorf("counter is not zero at start: %d", c.Uint64())
	}

	c.Increment()
	c.Increment()
	if 2 != c.Uint64() {
		t.Errorf("counter is not 2 after incrementing: %d", c.Uint64())
	}

	c.Release()
	c.Release()
	if 0 != c.Uint64() {
		t.Errorf("counter did not return to zero: %d", c.Uint64())
	}
}

func TestAcquireLimit(t *testing.T) {

	var c counter.Counter

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(10) {
				mu.Lock()
				accepted += 1
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if 10 != accepted {
		t.Errorf("accepted: %d  expected: 10", accepted)
	}
	if c.Acquire(10) {
		t.Error("acquired past the limit")
	}
	c.Release()
	if !c.Acquire(10) {
		t.Error("could not acquire after release")
	}
}
