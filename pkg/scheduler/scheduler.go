package scheduler

import (
	"context"
	"fmt"
	"sync"
)

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type request[T any] struct {
	fn  Work[T]
	c   chan Result[T]
	ctx context.Context
}

type worker[T any] struct {
	done chan any
	wg   *sync.WaitGroup
}

func (w worker[T]) Work(r request[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result[T]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[T]{Data: v, Err: err}
}

// Scheduler runs work on a fixed pool of workers. Work submitted while every
// worker is busy waits in a FIFO queue.
type Scheduler[T any] struct {
	workers    *queue[worker[T]]
	pending    *queue[request[T]]
	close      chan any
	done       chan any
	stopped    chan struct{}
	work       chan request[T]
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
}

func NewScheduler[T any](nbWorkers int) *Scheduler[T] {
	if nbWorkers < 1 {
		nbWorkers = 1
	}
	done := make(chan any, nbWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler[T]{
		workers:    &queue[worker[T]]{},
		pending:    &queue[request[T]]{},
		close:      make(chan any),
		done:       done,
		stopped:    make(chan struct{}),
		work:       make(chan request[T]),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	for range nbWorkers {
		s.workers.Push(worker[T]{done: done, wg: &s.wg})
	}
	go s.run()
	return s
}

// AddWork queues w and returns a future receiving exactly one result.
// The context handed to w is cancelled by Future.Stop, by Close, or when ctx is done.
func (s *Scheduler[T]) AddWork(ctx context.Context, w Work[T]) *Future[Result[T]] {
	c := make(chan Result[T], 1)
	workCtx, cancel := context.WithCancel(s.mainCtx)
	stop := context.AfterFunc(ctx, cancel)

	select {
	case <-s.mainCtx.Done():
		// closing: answer right away
		c <- Result[T]{Err: context.Canceled}
	case <-ctx.Done():
		c <- Result[T]{Err: ctx.Err()}
	case s.work <- request[T]{w, c, workCtx}:
	}

	return NewFuture(c, func() {
		stop()
		cancel()
	})
}

// Close cancels pending work and returns once every started worker is done.
func (s *Scheduler[T]) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.stopped
	})
}

func (s *Scheduler[T]) run() {
	defer close(s.stopped)
	for {
		select {
		case w := <-s.work:
			s.pending.Push(w)
			s.dispatch()
		case <-s.done:
			s.workers.Push(worker[T]{done: s.done, wg: &s.wg})
			s.dispatch()
		case <-s.close:
			s.wg.Wait()
			return
		}
	}
}

// dispatch drains the pending queue as far as free workers allow.
func (s *Scheduler[T]) dispatch() {
	for s.workers.Len() > 0 && s.pending.Len() > 0 {
		r := s.pending.Pop()
		w := s.workers.Pop()
		s.wg.Add(1)
		go w.Work(r)
	}
}
