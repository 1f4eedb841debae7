package utils

import (
	"context"
	"sync"
)

// Task represents a unit of work
type Task[T any] struct {
	Data   T
	Result any
	Err    error
}

// Worker is a function that processes a task
type Worker[T any] func(ctx context.Context, data T) (any, error)

// Pool is a worker pool for concurrent task processing
type Pool[T any] struct {
	workers    int
	taskQueue  chan *Task[T]
	resultChan chan *Task[T]
	wg         sync.WaitGroup
	worker     Worker[T]
	stopOnce   sync.Once
}

// NewPool creates a new worker pool
func NewPool[T any](workers int, worker Worker[T]) *Pool[T] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T]{
		workers:    workers,
		taskQueue:  make(chan *Task[T], workers*2),
		resultChan: make(chan *Task[T], workers*2),
		worker:     worker,
	}
}

// Start starts the worker pool
func (p *Pool[T]) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.runWorker(ctx)
	}
}

func (p *Pool[T]) runWorker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-p.taskQueue:
			if !ok {
				return
			}
			result, err := p.worker(ctx, task.Data)
			task.Result = result
			task.Err = err

			select {
			case p.resultChan <- task:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Submit submits a task to the pool. It reports false when the context is
// cancelled before the queue accepts the task; workers stop draining the
// queue on cancellation, so an unconditional send could block forever.
func (p *Pool[T]) Submit(ctx context.Context, data T) bool {
	select {
	case p.taskQueue <- &Task[T]{Data: data}:
		return true
	case <-ctx.Done():
		return false
	}
}

// Results returns the results channel
func (p *Pool[T]) Results() <-chan *Task[T] {
	return p.resultChan
}

// Stop stops the pool and waits for workers to finish
func (p *Pool[T]) Stop() {
	p.stopOnce.Do(func() {
		close(p.taskQueue)
		p.wg.Wait()
		close(p.resultChan)
	})
}

// Process runs worker over every item concurrently and returns the finished
// tasks in completion order. On cancellation it returns whatever completed
// before the context ended.
func Process[T any](ctx context.Context, workers int, items []T, worker Worker[T]) []*Task[T] {
	pool := NewPool(workers, worker)
	pool.Start(ctx)

	go func() {
		defer pool.Stop()
		for _, item := range items {
			if !pool.Submit(ctx, item) {
				return
			}
		}
	}()

	results := make([]*Task[T], 0, len(items))
	for {
		select {
		case task, ok := <-pool.Results():
			if !ok {
				return results
			}
			results = append(results, task)
		case <-ctx.Done():
			return results
		}
	}
}
