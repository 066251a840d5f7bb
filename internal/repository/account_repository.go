// Package repository is the non-blocking face of the account client used by
// presentation code. Calls return at once and their single callback runs on
// the Deliverer, never on a worker.
package repository

import (
	"context"
	"errors"

	"github.com/carson-networks/compte-client/internal/client"
	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/operator"
	"github.com/carson-networks/compte-client/internal/operator/actions"
)

// Deliverer runs callbacks on the goroutine that owns presentation state.
// *mainloop.Loop satisfies it.
type Deliverer interface {
	Post(fn func()) bool
}

type options struct {
	clientOptions []client.Option
	workers       int
	queueSize     int
}

// Option configures New.
type Option func(*options)

// WithClientOptions passes opts to the underlying client.
func WithClientOptions(opts ...client.Option) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, opts...)
	}
}

// WithWorkers sets the number of workers. The default is 2.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithQueueSize bounds the number of pending calls. Calls beyond it fail
// with a TransportError.
func WithQueueSize(size int) Option {
	return func(o *options) {
		o.queueSize = size
	}
}

// AccountRepository runs account calls on background workers and hands
// each result to the Deliverer.
type AccountRepository struct {
	format    string
	deliverer Deliverer
	delegator *operator.OperatorDelegator
}

// New binds the repository to format ("XML", anything else is JSON) and
// starts its workers. Close releases them.
func New(format string, baseURL string, deliverer Deliverer, opts ...Option) *AccountRepository {
	o := options{workers: 2}
	for _, opt := range opts {
		opt(&o)
	}

	c := client.NewForFormat(format, baseURL, o.clientOptions...)
	return NewWithClient(c, c.Format(), deliverer, o.workers, o.queueSize)
}

// NewWithClient runs actions against accounts instead of an HTTP client.
func NewWithClient(accounts actions.AccountClient, format string, deliverer Deliverer, workers, queueSize int) *AccountRepository {
	delegator := operator.NewOperatorDelegator(accounts, workers, queueSize)
	delegator.Start()

	return &AccountRepository{
		format:    format,
		deliverer: deliverer,
		delegator: delegator,
	}
}

// Format reports the bound format token.
func (r *AccountRepository) Format() string {
	return r.format
}

// Close stops the workers after queued calls have finished. Calls made
// afterwards fail with a TransportError.
func (r *AccountRepository) Close() {
	r.delegator.Stop()
}

// ListAll fetches the whole collection.
func (r *AccountRepository) ListAll(callback func([]compte.Account, error)) {
	action := &actions.ListAccounts{}
	r.Submit("ListAll", action, func(err error) {
		callback(action.Result, err)
	})
}

// Create stores account and reports it back with its new id.
func (r *AccountRepository) Create(account compte.Account, callback func(compte.Account, error)) {
	action := &actions.CreateAccount{Account: account}
	r.Submit("Create", action, func(err error) {
		callback(action.Result, err)
	})
}

// Update replaces the compte with the given id.
func (r *AccountRepository) Update(id int64, account compte.Account, callback func(compte.Account, error)) {
	action := &actions.UpdateAccount{ID: id, Account: account}
	r.Submit("Update", action, func(err error) {
		callback(action.Result, err)
	})
}

// Delete removes the compte with the given id.
func (r *AccountRepository) Delete(id int64, callback func(error)) {
	r.Submit("Delete", &actions.DeleteAccount{ID: id}, callback)
}

// Submit runs any action on the workers and delivers its outcome like the
// typed calls do. op names the call in a TransportError.
func (r *AccountRepository) Submit(op string, action actions.IAction, callback func(error)) {
	r.delegator.Submit(context.Background(), action, func(err error) {
		deliver := func() {
			callback(poolError(op, err))
		}
		// A refusal is reported on the caller's goroutine, which may be the
		// loop itself; Post must not block it on a full buffer.
		if rejected(err) {
			go r.deliverer.Post(deliver)
			return
		}
		r.deliverer.Post(deliver)
	})
}

func rejected(err error) bool {
	return errors.Is(err, operator.ErrQueueFull) || errors.Is(err, operator.ErrStopped)
}

// poolError reports work the pool refused as a transport failure: the
// request never left the client.
func poolError(op string, err error) error {
	if rejected(err) {
		return &client.TransportError{Op: op, Cause: err}
	}
	return err
}
