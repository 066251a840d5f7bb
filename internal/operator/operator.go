package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/compte-client/internal/operator/actions"
)

var ErrActionPanic = errors.New("operator: action panicked")

// Operator is the worker that processes items from the queue.
type Operator struct {
	accounts actions.AccountClient
	queue    <-chan ActionItem
}

func NewOperator(accounts actions.AccountClient, queue <-chan ActionItem) *Operator {
	return &Operator{
		accounts: accounts,
		queue:    queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	item.done(o.perform(item))
}

func (o *Operator) perform(item ActionItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrActionPanic, r)
		}
	}()

	if err := item.ctx.Err(); err != nil {
		return err
	}
	return item.action.Perform(item.ctx, o.accounts)
}

type ActionItem struct {
	ctx    context.Context
	action actions.IAction
	// done is called exactly once with the outcome.
	done func(error)
}
