package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/config"
	"github.com/carson-networks/compte-client/internal/operator/actions"
)

const dateLayout = "2006-01-02"

func newApp(env *config.Config, in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "comptes",
		Usage:     "list, add, update and delete comptes on a remote server",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		// main decides the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Value: env.APIURL,
				Usage: "base URL of the compte server",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: env.Format,
				Usage: "wire format, XML or JSON (anything else means JSON)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: env.HTTPTimeout,
				Usage: "per-request timeout",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: env.OperatorWorkers,
				Usage: "background workers running requests",
			},
			&cli.BoolFlag{
				Name:  "sync",
				Usage: "wait for each request instead of delivering results on the main loop",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "dump every record and log requests",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "show every compte",
				Action: listAction,
			},
			{
				Name:  "add",
				Usage: "create a compte dated today",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "solde", Usage: "balance", Required: true},
					&cli.StringFlag{Name: "type", Value: compte.TypeCourant, Usage: "COURANT or EPARGNE"},
				},
				Action: addAction,
			},
			{
				Name:  "update",
				Usage: "change the balance and type of a compte",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "solde", Usage: "balance", Required: true},
					&cli.StringFlag{Name: "type", Usage: "COURANT or EPARGNE, unchanged when omitted"},
				},
				Action: updateAction,
			},
			{
				Name:  "delete",
				Usage: "remove a compte",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
				},
				Action: deleteAction,
			},
		},
	}
}

func listAction(c *cli.Context) error {
	s := newSession(c)
	s.list()
	return s.wait(c.Context)
}

func addAction(c *cli.Context) error {
	balance, err := parseBalance(c.String("solde"))
	if err != nil {
		return cli.Exit(err, exitUsage)
	}
	accountType, err := parseType(c.String("type"))
	if err != nil {
		return cli.Exit(err, exitUsage)
	}

	s := newSession(c)
	create := &actions.CreateAccount{Account: compte.Account{
		Balance:      balance,
		Type:         accountType,
		CreationDate: time.Now().Format(dateLayout),
	}}
	s.then("Create", create, func() {
		fmt.Fprintf(s.out, "Compte %d added\n", create.Result.IDValue())
		s.list()
	})
	return s.wait(c.Context)
}

// updateAction edits the current record so fields the command does not
// touch, such as the creation date, survive the full replace.
func updateAction(c *cli.Context) error {
	id := c.Int64("id")
	balance, err := parseBalance(c.String("solde"))
	if err != nil {
		return cli.Exit(err, exitUsage)
	}
	accountType := ""
	if c.IsSet("type") {
		if accountType, err = parseType(c.String("type")); err != nil {
			return cli.Exit(err, exitUsage)
		}
	}

	s := newSession(c)
	current := &actions.ListAccounts{}
	s.then("ListAll", current, func() {
		account, ok := findAccount(current.Result, id)
		if !ok {
			s.fail(cli.Exit(fmt.Sprintf("compte %d not found", id), exitServer))
			return
		}

		account.Balance = balance
		if accountType != "" {
			account.Type = accountType
		}

		update := &actions.UpdateAccount{ID: id, Account: account}
		s.then("Update", update, func() {
			fmt.Fprintf(s.out, "Compte %d updated\n", id)
			s.list()
		})
	})
	return s.wait(c.Context)
}

func deleteAction(c *cli.Context) error {
	id := c.Int64("id")
	if !c.Bool("yes") && !confirm(c.App.Reader, c.App.Writer, fmt.Sprintf("Delete compte %d?", id)) {
		fmt.Fprintln(c.App.Writer, "Cancelled")
		return nil
	}

	s := newSession(c)
	s.then("Delete", &actions.DeleteAccount{ID: id}, func() {
		fmt.Fprintf(s.out, "Compte %d deleted\n", id)
		s.list()
	})
	return s.wait(c.Context)
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func findAccount(accounts []compte.Account, id int64) (compte.Account, bool) {
	for _, account := range accounts {
		if account.HasID() && account.IDValue() == id {
			return account, true
		}
	}
	return compte.Account{}, false
}
