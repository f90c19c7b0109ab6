package rworker

import (
	"context"
	"sync"
)

// Job runs fn on its own goroutine once a slot in rate is free. Errors go
// to errCh while it has room and are dropped after that.
func Job(ctx context.Context, wg *sync.WaitGroup, fn func(context.Context) error, rate chan struct{}, errCh chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case rate <- struct{}{}:
		case <-ctx.Done():
			send(errCh, ctx.Err())
			return
		}
		defer func() { <-rate }()
		if err := fn(ctx); err != nil {
			send(errCh, err)
		}
	}()
}

func send(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
	}
}

// Run calls fn for every i in [0, n) with at most limit calls in flight
// and returns the first error reported.
func Run(ctx context.Context, n, limit int, fn func(ctx context.Context, i int) error) error {
	if limit <= 0 {
		limit = 1
	}
	var (
		wg    sync.WaitGroup
		rate  = make(chan struct{}, limit)
		errCh = make(chan error, 1)
	)
	for i := 0; i < n; i++ {
		i := i
		Job(ctx, &wg, func(ctx context.Context) error {
			return fn(ctx, i)
		}, rate, errCh)
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
