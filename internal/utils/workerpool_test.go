package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packdist/distmap/internal/utils"
)

func TestProcess_AllItems(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	results := utils.Process(context.Background(), 3, items, func(ctx context.Context, n int) (any, error) {
		return n * 2, nil
	})

	require.Len(t, results, len(items))
	sum := 0
	for _, task := range results {
		require.NoError(t, task.Err)
		sum += task.Result.(int)
	}
	assert.Equal(t, 30, sum)
}

func TestProcess_ErrorsReported(t *testing.T) {
	wantErr := errors.New("boom")

	results := utils.Process(context.Background(), 2, []string{"ok", "bad"}, func(ctx context.Context, s string) (any, error) {
		if s == "bad" {
			return nil, wantErr
		}
		return s, nil
	})

	require.Len(t, results, 2)
	var failed int
	for _, task := range results {
		if task.Err != nil {
			failed++
			assert.ErrorIs(t, task.Err, wantErr)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestProcess_CancellationReturns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One worker and many more items than the queue buffers, with the
	// worker held until cancellation, so the producer is blocked on a
	// full queue when the context ends.
	items := make([]int, 20)
	running := make(chan struct{}, 1)

	done := make(chan []*utils.Task[int])
	go func() {
		done <- utils.Process(ctx, 1, items, func(ctx context.Context, n int) (any, error) {
			select {
			case running <- struct{}{}:
			default:
			}
			<-ctx.Done()
			return nil, ctx.Err()
		})
	}()

	select {
	case <-running:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never started")
	}
	cancel()

	select {
	case results := <-done:
		assert.LessOrEqual(t, len(results), len(items))
	case <-time.After(2 * time.Second):
		t.Fatal("Process did not return after cancellation")
	}
}

func TestPool_SubmitRejectsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	block := make(chan struct{})
	defer close(block)
	pool := utils.NewPool(1, func(ctx context.Context, n int) (any, error) {
		<-block
		return n, nil
	})
	pool.Start(ctx)

	// The worker holds the first task, so the next two fill the buffer.
	for i := 0; i < 3; i++ {
		require.True(t, pool.Submit(ctx, i))
	}

	cancel()
	assert.False(t, pool.Submit(ctx, 99))
}

func TestPool_StopIdempotent(t *testing.T) {
	pool := utils.NewPool(2, func(ctx context.Context, n int) (any, error) {
		return n, nil
	})
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()
}
