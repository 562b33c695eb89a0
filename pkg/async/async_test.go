package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	future := async.Async(context.Background(), 42, func(_ context.Context, n int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("Number: %d", n), nil
	})

	result, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, "Number: 42", result)
	assert.True(t, future.IsComplete())
}

func TestAsync_ErrorPropagation(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
		return 0, want
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, want)
}

func TestAsync_PreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	future := async.Async(ctx, 1, func(_ context.Context, n int) (int, error) {
		called.Store(true)
		return n, nil
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestAsync_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	future := async.Async(ctx, 42, func(ctx context.Context, n int) (int, error) {
		select {
		case <-time.After(time.Second):
			return n, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAsync_RecoversPanic(t *testing.T) {
	t.Parallel()

	future := async.Async(context.Background(), "x", func(_ context.Context, _ string) (int, error) {
		panic("callback exploded")
	})

	result, err := future.Await()
	assert.Zero(t, result)
	assert.ErrorIs(t, err, async.ErrPanic)
	assert.Contains(t, err.Error(), "callback exploded")
}

func TestFuture_IsComplete(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
		<-release
		return 1, nil
	})

	assert.False(t, future.IsComplete())
	close(release)
	<-future.Done()
	assert.True(t, future.IsComplete())
}

func TestResolved(t *testing.T) {
	t.Parallel()

	future := async.Resolved("done", nil)
	assert.True(t, future.IsComplete())

	result, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", result)

	want := errors.New("busy")
	_, err = async.Resolved(0, want).Await()
	assert.ErrorIs(t, err, want)
}
