// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/collection"
	"github.com/bitmark-inc/marketd/fault"
)

// Resolver - receives the outcome of each remote transfer exactly once
type Resolver interface {
	ResolvePurchase(task *Task, result []byte, callErr error)
}

// delays between attempts of a task whose outcome is not known
const (
	retryDelay    = 250 * time.Millisecond
	maxRetryDelay = time.Minute
)

// Worker - background process performing the remote hop of each task
type Worker struct {
	sync.Mutex
	log       *logger.L
	account   string
	directory *collection.Directory
	resolver  Resolver
	timeout   time.Duration
	queue     chan *Task
	attempts  map[Id]uint
	stop      chan struct{}
}

// NewWorker - create a worker, Submit blocks once queueSize tasks wait
//
// account is the holder of the sale approvals
func NewWorker(log *logger.L, account string, directory *collection.Directory, resolver Resolver, timeout time.Duration, queueSize int) *Worker {
	return &Worker{
		log:       log,
		account:   account,
		directory: directory,
		resolver:  resolver,
		timeout:   timeout,
		queue:     make(chan *Task, queueSize),
		attempts:  make(map[Id]uint),
		stop:      make(chan struct{}),
	}
}

// Submit - queue a committed task
func (w *Worker) Submit(task *Task) {
	w.queue <- task
}

// Retry - queue a still pending task again after a growing delay
func (w *Worker) Retry(task *Task) {
	w.Lock()
	n := w.attempts[task.Id]
	w.attempts[task.Id] = n + 1
	w.Unlock()

	delay := maxRetryDelay
	if n < 8 {
		delay = retryDelay << n
	}
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}

	w.log.Warnf("task: %s  retry: %d  after: %s", task.Id, n+1, delay)
	time.AfterFunc(delay, func() {
		select {
		case w.queue <- task:
		case <-w.stop:
		}
	})
}

// Run - background process loop
func (w *Worker) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case task := <-w.queue:
			w.execute(task)
		}
	}
	close(w.stop)

	w.log.Info("shutting down…")
}

func (w *Worker) execute(task *Task) {
	w.log.Debugf("execute task: %s", task.Id)

	contract, err := w.directory.Lookup(task.Sale.Contract)
	if nil != err {
		w.log.Errorf("task: %s  contract: %q  error: %s", task.Id, task.Sale.Contract, err)
		w.resolver.ResolvePurchase(task, nil, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	result, err := contract.TransferPayout(ctx, &collection.TransferPayoutArguments{
		TaskId:       task.Id.String(),
		Account:      w.account,
		Receiver:     task.Buyer,
		AssetId:      task.Sale.AssetId,
		ApprovalId:   task.Sale.ApprovalId,
		Memo:         task.Memo,
		Balance:      task.Price,
		MaxLenPayout: task.MaxPayees,
	})
	if fault.PayoutOutcomeUnknown == err {
		w.Retry(task)
		return
	}
	if nil != err {
		w.log.Warnf("task: %s  transfer error: %s", task.Id, err)
	}

	w.Lock()
	delete(w.attempts, task.Id)
	w.Unlock()

	w.resolver.ResolvePurchase(task, result, err)
}
