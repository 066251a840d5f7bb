package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/compte-client/internal/compte"
)

var errBalanceRequired = errors.New("balance is required")

func parseBalance(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errBalanceRequired
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid balance %q", raw)
	}
	value, _ := balance.Float64()
	return value, nil
}

func parseType(raw string) (string, error) {
	switch accountType := strings.ToUpper(strings.TrimSpace(raw)); accountType {
	case compte.TypeCourant, compte.TypeEpargne:
		return accountType, nil
	}
	return "", fmt.Errorf("invalid type %q, expected %s or %s", raw, compte.TypeCourant, compte.TypeEpargne)
}

func formatBalance(balance float64) string {
	return decimal.NewFromFloat(balance).StringFixed(2)
}

func renderAccounts(w io.Writer, accounts []compte.Account, debug bool) {
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No comptes found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSOLDE\tTYPE\tDATE CREATION")
	for _, account := range accounts {
		id := "-"
		if account.HasID() {
			id = fmt.Sprint(account.IDValue())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, formatBalance(account.Balance), account.Type, account.CreationDate)
	}
	_ = tw.Flush()

	if debug {
		spew.Fdump(w, accounts)
	}
}
