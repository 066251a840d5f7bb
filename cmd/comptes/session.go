package main

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/compte-client/internal/client"
	"github.com/carson-networks/compte-client/internal/logging"
	"github.com/carson-networks/compte-client/internal/mainloop"
	"github.com/carson-networks/compte-client/internal/operator"
	"github.com/carson-networks/compte-client/internal/operator/actions"
	"github.com/carson-networks/compte-client/internal/repository"
)

const (
	exitUsage     = 2
	exitTransport = 3
	exitServer    = 4
)

// executor runs an action and hands its outcome to callback.
// *repository.AccountRepository satisfies it.
type executor interface {
	Submit(op string, action actions.IAction, callback func(error))
}

// syncExecutor finishes each action before Submit returns, so callbacks
// run on the caller's goroutine.
type syncExecutor struct {
	ctx       context.Context
	delegator *operator.OperatorDelegator
}

func (e syncExecutor) Submit(_ string, action actions.IAction, callback func(error)) {
	callback(e.delegator.Process(e.ctx, action))
}

// session chains one command's requests. All output happens in callbacks,
// which run on the main loop unless --sync is set.
type session struct {
	out   io.Writer
	debug bool
	exec  executor
	loop  *mainloop.Loop
	close func()
	err   error
}

func newSession(c *cli.Context) *session {
	level := logrus.WarnLevel
	if c.Bool("debug") {
		level = logrus.DebugLevel
	}
	logger := logging.NewLogger(c.App.ErrWriter, level)

	clientOptions := []client.Option{
		client.WithLogger(logger),
		client.WithTimeout(c.Duration("timeout")),
	}

	s := &session{
		out:   c.App.Writer,
		debug: c.Bool("debug"),
	}

	if c.Bool("sync") {
		accounts := client.NewForFormat(c.String("format"), c.String("url"), clientOptions...)
		delegator := operator.NewOperatorDelegator(accounts, 1, 0)
		delegator.Start()

		s.exec = syncExecutor{ctx: c.Context, delegator: delegator}
		s.close = delegator.Stop
		return s
	}

	loop := mainloop.New(16)
	repo := repository.New(c.String("format"), c.String("url"), loop,
		repository.WithClientOptions(clientOptions...),
		repository.WithWorkers(c.Int("workers")),
	)

	s.exec = repo
	s.loop = loop
	s.close = repo.Close
	return s
}

// then submits action and runs success only if it worked.
func (s *session) then(op string, action actions.IAction, success func()) {
	s.exec.Submit(op, action, func(err error) {
		if err != nil {
			s.fail(err)
			return
		}
		success()
	})
}

// list renders the collection and ends the session.
func (s *session) list() {
	accounts := &actions.ListAccounts{}
	s.then("ListAll", accounts, func() {
		renderAccounts(s.out, accounts.Result, s.debug)
		s.finish()
	})
}

func (s *session) fail(err error) {
	s.err = exitError(err)
	s.finish()
}

func (s *session) finish() {
	if s.loop != nil {
		s.loop.Stop()
	}
}

// wait runs the main loop until the session finishes, then releases the
// workers.
func (s *session) wait(ctx context.Context) error {
	if s.loop != nil {
		s.loop.Run(ctx)
	}
	s.close()
	return s.err
}

func exitError(err error) error {
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return err
	}

	var serverErr *client.ServerError
	switch {
	case errors.As(err, &serverErr):
		return cli.Exit(err, exitServer)
	case client.IsTransport(err):
		return cli.Exit(err, exitTransport)
	}
	return cli.Exit(err, 1)
}
