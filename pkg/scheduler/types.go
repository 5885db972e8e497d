package scheduler

import (
	"context"
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type Future[T any] struct {
	input  chan T
	cancel func()
}

func NewFuture[T any](input chan T, cancel func()) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() chan T {
	return f.input
}

// Stop cancels the context of the underlying work.
func (f *Future[T]) Stop() {
	f.cancel()
}

// Await blocks until every future has delivered its result and returns the
// results in submission order.
func Await[T any](futures ...*Future[Result[T]]) []Result[T] {
	results := make([]Result[T], 0, len(futures))
	for _, f := range futures {
		r := <-f.C()
		f.Stop()
		results = append(results, r)
	}
	return results
}
