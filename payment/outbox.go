// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/storage"
)

// Dispatcher - accepts transfers as part of a transaction
type Dispatcher interface {
	Dispatch(trx storage.Transaction, transfer Transfer) error
}

// Queued - a transfer waiting to be delivered
type Queued struct {
	Sequence uint64   `json:"sequence"`
	Transfer Transfer `json:"transfer"`
}

// Outbox - persistent queue of transfers
type Outbox struct {
	log      *logger.L
	db       *storage.Database
	pool     *storage.PoolHandle
	settings *storage.PoolHandle
}

var nextSequenceKey = []byte("outbox-next")

// NewOutbox - create an outbox in the database
func NewOutbox(log *logger.L, db *storage.Database) *Outbox {
	return &Outbox{
		log:      log,
		db:       db,
		pool:     db.Pool.Outbox,
		settings: db.Pool.Settings,
	}
}

// Dispatch - stage a transfer, it is only queued if the transaction commits
func (o *Outbox) Dispatch(trx storage.Transaction, transfer Transfer) error {
	packed, err := json.Marshal(transfer)
	if nil != err {
		return err
	}

	n, _ := trx.GetN(o.settings, nextSequenceKey)
	trx.PutN(o.settings, nextSequenceKey, n+1)
	trx.Put(o.pool, sequenceKey(n), packed)

	o.log.Debugf("stage[%d]: %s %s %s to: %q", n, transfer.Kind, transfer.Amount, transfer.Currency, transfer.Receiver)
	return nil
}

// Pending - the oldest undelivered transfers
func (o *Outbox) Pending(count int) ([]Queued, error) {
	elements, err := o.pool.NewFetchCursor().Fetch(count)
	if nil != err {
		return nil, err
	}

	queued := make([]Queued, 0, len(elements))
	for _, e := range elements {
		q := Queued{
			Sequence: binary.BigEndian.Uint64(e.Key),
		}
		if err := json.Unmarshal(e.Value, &q.Transfer); nil != err {
			o.log.Errorf("corrupt transfer[%d]: %s", q.Sequence, err)
			return nil, err
		}
		queued = append(queued, q)
	}
	return queued, nil
}

// Acknowledge - remove delivered transfers
func (o *Outbox) Acknowledge(sequences ...uint64) error {
	if 0 == len(sequences) {
		return nil
	}
	trx, err := o.db.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	for _, n := range sequences {
		trx.Delete(o.pool, sequenceKey(n))
	}
	return trx.Commit()
}

// Count - number of undelivered transfers
func (o *Outbox) Count() int {
	return o.pool.Count(nil)
}

// big endian so keys sort in sequence order
func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
