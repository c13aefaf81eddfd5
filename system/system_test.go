package system

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequential_Order(t *testing.T) {
	var calls []int
	sys := Sequential(
		Func(func(context.Context) error { calls = append(calls, 1); return nil }),
		Func(func(context.Context) error { calls = append(calls, 2); return nil }),
		Func(func(context.Context) error { calls = append(calls, 3); return nil }),
	)

	require.NoError(t, sys.Update(t.Context()))
	assert.Equal(t, []int{1, 2, 3}, calls)
}

func TestSequential_StopsOnError(t *testing.T) {
	errBoom := errors.New("boom")
	ran := false
	sys := Sequential(
		Func(func(context.Context) error { return errBoom }),
		Func(func(context.Context) error { ran = true; return nil }),
	)

	assert.ErrorIs(t, sys.Update(t.Context()), errBoom)
	assert.False(t, ran)
}

func TestSequential_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	ran := false
	sys := Sequential(Func(func(context.Context) error { ran = true; return nil }))

	assert.ErrorIs(t, sys.Update(ctx), context.Canceled)
	assert.False(t, ran)
}

func TestParallel_RunsAll(t *testing.T) {
	var count atomic.Int32
	var wg sync.WaitGroup
	wg.Add(3)

	// Each child waits for the others, which only works if they run concurrently.
	child := Func(func(context.Context) error {
		count.Add(1)
		wg.Done()
		wg.Wait()
		return nil
	})

	require.NoError(t, Parallel(child, child, child).Update(t.Context()))
	assert.Equal(t, int32(3), count.Load())
}

func TestParallel_Error(t *testing.T) {
	errBoom := errors.New("boom")
	sys := Parallel(
		Func(func(context.Context) error { return errBoom }),
		Func(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
	)

	assert.ErrorIs(t, sys.Update(t.Context()), errBoom)
}

func TestParallelLimit(t *testing.T) {
	var running, peak atomic.Int32
	child := Func(func(context.Context) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		running.Add(-1)
		return nil
	})

	sys := ParallelLimit(1, child, child, child, child)
	require.NoError(t, sys.Update(t.Context()))
	assert.Equal(t, int32(1), peak.Load())
}
