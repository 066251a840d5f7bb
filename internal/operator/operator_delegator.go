package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/compte-client/internal/operator/actions"
)

const DefaultQueueSize = 1000

var (
	ErrQueueFull = errors.New("operator: queue full")
	ErrStopped   = errors.New("operator: stopped")
)

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	accounts   actions.AccountClient
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup

	mutex    sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

func NewOperatorDelegator(accounts actions.AccountClient, numWorkers int, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	return &OperatorDelegator{
		accounts:   accounts,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.accounts, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop refuses new work, lets the workers finish what is queued and waits
// for them.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mutex.Lock()
		d.stopped = true
		close(d.queue)
		d.mutex.Unlock()

		d.wg.Wait()
	})
}

// Submit enqueues action without blocking. done is called exactly once,
// from a worker with the action's outcome, or right away with ErrQueueFull
// or ErrStopped.
func (d *OperatorDelegator) Submit(ctx context.Context, action actions.IAction, done func(error)) {
	if err := d.enqueue(ActionItem{ctx: ctx, action: action, done: done}); err != nil {
		done(err)
	}
}

func (d *OperatorDelegator) enqueue(item ActionItem) error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Process runs action on a worker and waits for its outcome.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan error, 1)
	d.Submit(ctx, action, func(err error) {
		respCh <- err
	})

	select {
	case err := <-respCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
