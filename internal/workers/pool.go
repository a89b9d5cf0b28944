// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolStopped is returned by Submit after the pool has been stopped.
var ErrPoolStopped = errors.New("worker pool is stopped")

type job struct {
	ctx  context.Context
	fn   func() error
	err  error
	done chan struct{}
}

// Pool executes submitted functions on a fixed number of goroutines.
// Submit blocks until a goroutine picks the job up, so at most size
// functions run at once.
type Pool struct {
	size int
	jobs chan *job
	quit chan struct{}
	wg   sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPool creates a pool with size goroutines. Values below one are
// treated as one. The pool does nothing until Run is called.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		size: size,
		jobs: make(chan *job),
		quit: make(chan struct{}),
	}
}

// Run implements [Worker]. It starts the pool goroutines once.
func (p *Pool) Run() {
	p.startOnce.Do(func() {
		for range p.size {
			p.wg.Add(1)
			go p.loop()
		}
	})
}

// Stop implements [Worker]. It waits for running jobs to finish.
// Jobs still waiting to be picked up fail with ErrPoolStopped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

// Size returns the number of pool goroutines.
func (p *Pool) Size() int {
	return p.size
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case j := <-p.jobs:
			if err := j.ctx.Err(); err != nil {
				j.err = err
			} else {
				j.err = j.fn()
			}
			close(j.done)
		}
	}
}

// Submit runs fn on the pool and returns its error.
//
// ctx bounds both the wait for a free goroutine and the wait for the
// result. If ctx ends first Submit returns ctx.Err(); a function already
// running is not interrupted and its result is discarded.
func (p *Pool) Submit(ctx context.Context, fn func() error) error {
	j := &job{ctx: ctx, fn: fn, done: make(chan struct{})}

	select {
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- j:
	}

	select {
	case <-j.done:
		return j.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn on p and returns its result.
func Do[T any](ctx context.Context, p *Pool, fn func() (T, error)) (T, error) {
	var result T
	var fnErr error

	err := p.Submit(ctx, func() error {
		result, fnErr = fn()
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, fnErr
}
