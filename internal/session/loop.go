package session

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Do once the loop has stopped
var ErrStopped = errors.New("session: loop stopped")

// Loop runs submitted functions one at a time on a single goroutine.
// Everything a presenter owns is only touched from inside the loop.
type Loop struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

func NewLoop(buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Run executes queued functions until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	defer l.stopOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Execute queues fn. It is dropped if the loop has already stopped.
func (l *Loop) Execute(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// Do queues fn and waits until it has run
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		fn()
	}

	select {
	case l.tasks <- task:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once Run has returned
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
