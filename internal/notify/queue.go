// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync"
	"time"
)

const defaultQueueSize = 16

// Queue is a bounded toast buffer. When it is full the oldest toast is
// dropped so the newest feedback always reaches the UI.
type Queue struct {
	mu      sync.Mutex
	ch      chan Toast
	dropped int
	now     func() time.Time
}

// NewQueue returns a queue holding up to size toasts. A non-positive size
// selects the default.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		ch:  make(chan Toast, size),
		now: time.Now,
	}
}

// Success implements [Notifier].
func (q *Queue) Success(msg string) {
	q.push(Toast{Kind: KindSuccess, Message: msg, At: q.now()})
}

// Error implements [Notifier].
func (q *Queue) Error(msg string) {
	q.push(Toast{Kind: KindError, Message: msg, At: q.now()})
}

// C returns the channel the UI reads toasts from.
func (q *Queue) C() <-chan Toast {
	return q.ch
}

// Dropped reports how many toasts were discarded because the queue was full.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

func (q *Queue) push(t Toast) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		select {
		case q.ch <- t:
			return
		default:
		}

		select {
		case <-q.ch:
			q.dropped++
		default:
		}
	}
}
