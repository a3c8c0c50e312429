// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watch provides a single-writer, multi-reader "latest value" cell
// with change notification. Readers always observe a fully committed value;
// slow subscribers skip intermediate values and only see the latest one.
package watch

import (
	"context"
	"sync"
)

// Value holds the current value of type T and notifies subscribers on every
// change.
type Value[T any] struct {
	mu      sync.RWMutex
	current T
	version uint64
	subs    map[chan T]struct{}
}

// New returns a Value initialised with initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[chan T]struct{}),
	}
}

// Get returns the latest committed value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Version returns a counter incremented on every Set.
func (v *Value[T]) Version() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.version
}

// Set stores next and notifies all subscribers.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.commit(next)
}

// Update applies fn to the current value under the write lock and stores the
// result. It returns the stored value.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	next := fn(v.current)
	v.commit(next)
	return next
}

func (v *Value[T]) commit(next T) {
	v.current = next
	v.version++
	for ch := range v.subs {
		// keep only the newest value in the buffer
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}

// Subscribe returns a channel that immediately receives the current value and
// then every subsequent one. The channel is closed when ctx is done.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	ch <- v.current
	v.subs[ch] = struct{}{}
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.subs, ch)
		close(ch)
		v.mu.Unlock()
	}()

	return ch
}

// Subscribers returns the number of active subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}
