// Package mainloop provides the single goroutine that owns presentation
// state. Work finished elsewhere is posted here and runs in FIFO order.
package mainloop

import (
	"context"
	"sync"
)

type Loop struct {
	queue    chan func()
	mutex    sync.RWMutex
	stopped  bool
	done     chan struct{}
	stopOnce sync.Once
}

func New(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Post queues fn to run on the loop. It blocks while the buffer is full and
// returns false once the loop has been stopped.
func (l *Loop) Post(fn func()) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	if l.stopped {
		return false
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run executes posted functions on the calling goroutine until Stop is called
// or ctx is done. Functions already queued when Stop is called still run.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.done:
			l.drain()
			return
		case <-ctx.Done():
			l.Stop()
			l.drain()
			return
		}
	}
}

func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.queue:
			fn()
		default:
			return
		}
	}
}

// Stop ends Run. It is safe to call more than once and from inside a posted
// function.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
		l.mutex.Lock()
		l.stopped = true
		l.mutex.Unlock()
	})
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.stopped
}
