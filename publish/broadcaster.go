// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/payment"
)

// Topic - first frame of every published transfer
const Topic = "transfer"

const batchSize = 50

// Sender - a publishing socket
type Sender interface {
	SendMessage(parts ...interface{}) (int, error)
}

// Source - queued transfers
type Source interface {
	Pending(count int) ([]payment.Queued, error)
	Acknowledge(sequences ...uint64) error
}

type broadcaster struct {
	log      *logger.L
	source   Source
	senders  []Sender
	interval time.Duration
}

func newBroadcaster(log *logger.L, source Source, interval time.Duration, senders ...Sender) *broadcaster {
	return &broadcaster{
		log:      log,
		source:   source,
		senders:  senders,
		interval: interval,
	}
}

// Run - background process loop
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log
	log.Info("starting…")

	ticker := time.NewTicker(brdc.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			for brdc.drain() {
			}
		}
	}

	log.Info("shutting down…")
}

// publish one batch, true if there may be more
func (brdc *broadcaster) drain() bool {
	queued, err := brdc.source.Pending(batchSize)
	if nil != err {
		brdc.log.Errorf("outbox error: %s", err)
		return false
	}
	if 0 == len(queued) {
		return false
	}

	sent := make([]uint64, 0, len(queued))
	for _, q := range queued {
		packed, err := json.Marshal(q.Transfer)
		if nil != err {
			brdc.log.Criticalf("transfer[%d] encode error: %s", q.Sequence, err)
			break
		}
		if !brdc.send(packed) {
			break
		}
		brdc.log.Debugf("sent[%d]: %s", q.Sequence, packed)
		sent = append(sent, q.Sequence)
	}

	if err := brdc.source.Acknowledge(sent...); nil != err {
		brdc.log.Errorf("acknowledge error: %s", err)
		return false
	}
	return len(sent) == len(queued)
}

func (brdc *broadcaster) send(packed []byte) bool {
	for _, s := range brdc.senders {
		if _, err := s.SendMessage(Topic, packed); nil != err {
			brdc.log.Errorf("send error: %s", err)
			return false
		}
	}
	return true
}
