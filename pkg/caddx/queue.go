// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import "sync"

// outboundQueue is the communicator's send queue. Callers append at the
// tail; acknowledges and retries go to the head.
type outboundQueue struct {
	mu    sync.Mutex
	items []*Message
}

func newOutboundQueue() *outboundQueue {
	return &outboundQueue{}
}

func (q *outboundQueue) pushBack(m *Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, m)
}

func (q *outboundQueue) pushFront(m *Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, nil)
	copy(q.items[1:], q.items)
	q.items[0] = m
}

// poll removes and returns the head, or nil when empty.
func (q *outboundQueue) poll() *Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	m := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return m
}

func (q *outboundQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
