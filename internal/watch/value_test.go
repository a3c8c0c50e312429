// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package watch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_GetSet(t *testing.T) {
	v := New(1)
	assert.Equal(t, 1, v.Get())
	assert.Equal(t, uint64(0), v.Version())

	v.Set(2)
	assert.Equal(t, 2, v.Get())
	assert.Equal(t, uint64(1), v.Version())
}

func TestValue_Update(t *testing.T) {
	v := New(10)
	got := v.Update(func(cur int) int { return cur + 5 })
	assert.Equal(t, 15, got)
	assert.Equal(t, 15, v.Get())
}

func TestValue_Subscribe_ReceivesCurrentThenLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := New("a")
	ch := v.Subscribe(ctx)

	assert.Equal(t, "a", <-ch)

	v.Set("b")
	v.Set("c")
	// промежуточное значение пропускается
	assert.Equal(t, "c", <-ch)
}

func TestValue_Subscribe_ClosedOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	v := New(0)
	ch := v.Subscribe(ctx)
	<-ch

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription channel was not closed")
	}
	require.Eventually(t, func() bool { return v.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
}

func TestValue_ConcurrentReadersNeverSeeTornState(t *testing.T) {
	type pair struct{ a, b int }
	v := New(pair{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				p := v.Get()
				assert.Equal(t, p.a, p.b)
			}
		}()
	}
	for i := 0; i < 1000; i++ {
		v.Set(pair{i, i})
	}
	wg.Wait()
}
