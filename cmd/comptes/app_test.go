package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/compte-client/api"
	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/config"
	"github.com/carson-networks/compte-client/internal/service"
	"github.com/carson-networks/compte-client/internal/storage"
)

type cliResult struct {
	out string
	err error
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	rest := &api.Rest{
		Logger:  logger,
		Service: service.NewService(storage.NewMemoryStorage()),
	}
	srv := httptest.NewServer(rest.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, url string, stdin string, args ...string) cliResult {
	t.Helper()
	env := &config.Config{
		APIURL:          url,
		Format:          "JSON",
		HTTPTimeout:     5 * time.Second,
		OperatorWorkers: 2,
	}

	var out bytes.Buffer
	app := newApp(env, strings.NewReader(stdin), &out, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := app.RunContext(ctx, append([]string{"comptes"}, args...))
	return cliResult{out: out.String(), err: err}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr), "%v", err)
	return exitErr.ExitCode()
}

func TestCLI_ListEmpty(t *testing.T) {
	srv := newServer(t)

	res := runCLI(t, srv.URL, "", "list")
	require.NoError(t, res.err)
	assert.Equal(t, "No comptes found\n", res.out)
}

func TestCLI_AddThenList(t *testing.T) {
	for _, mode := range [][]string{{"--format", "XML"}, {"--format", "JSON", "--sync"}} {
		t.Run(strings.Join(mode, " "), func(t *testing.T) {
			srv := newServer(t)

			args := append(append([]string{}, mode...), "add", "--solde", "1500", "--type", "courant")
			res := runCLI(t, srv.URL, "", args...)
			require.NoError(t, res.err)

			assert.Contains(t, res.out, "Compte 1 added")
			assert.Contains(t, res.out, "SOLDE")
			assert.Contains(t, res.out, "1500.00")
			assert.Contains(t, res.out, compte.TypeCourant)
			assert.Contains(t, res.out, time.Now().Format(dateLayout))
		})
	}
}

func TestCLI_UpdateKeepsCreationDate(t *testing.T) {
	srv := newServer(t)

	require.NoError(t, runCLI(t, srv.URL, "", "add", "--solde", "10").err)

	res := runCLI(t, srv.URL, "", "--format", "XML", "update", "--id", "1", "--solde", "2000", "--type", "EPARGNE")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Compte 1 updated")
	assert.Contains(t, res.out, "2000.00")
	assert.Contains(t, res.out, compte.TypeEpargne)
	assert.Contains(t, res.out, time.Now().Format(dateLayout))
}

func TestCLI_UpdateUnknownID(t *testing.T) {
	srv := newServer(t)

	res := runCLI(t, srv.URL, "", "update", "--id", "404", "--solde", "1")
	require.Error(t, res.err)
	assert.Equal(t, exitServer, exitCode(t, res.err))
	assert.Contains(t, res.err.Error(), "compte 404 not found")
}

func TestCLI_DeleteConfirmation(t *testing.T) {
	srv := newServer(t)
	require.NoError(t, runCLI(t, srv.URL, "", "add", "--solde", "10").err)

	res := runCLI(t, srv.URL, "n\n", "delete", "--id", "1")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Cancelled")

	res = runCLI(t, srv.URL, "y\n", "delete", "--id", "1")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Compte 1 deleted")
	assert.Contains(t, res.out, "No comptes found")
}

func TestCLI_DeleteMissing(t *testing.T) {
	srv := newServer(t)

	res := runCLI(t, srv.URL, "", "delete", "--id", "9", "--yes")
	require.Error(t, res.err)
	assert.Equal(t, exitServer, exitCode(t, res.err))
	assert.Contains(t, res.err.Error(), "status 404")
}

func TestCLI_InvalidBalance(t *testing.T) {
	srv := newServer(t)

	for _, balance := range []string{"", "  ", "douze"} {
		res := runCLI(t, srv.URL, "", "add", "--solde", balance)
		require.Error(t, res.err, "balance %q", balance)
		assert.Equal(t, exitUsage, exitCode(t, res.err))
	}
}

func TestCLI_InvalidType(t *testing.T) {
	res := runCLI(t, "http://127.0.0.1:1", "", "add", "--solde", "1", "--type", "LIVRET")
	require.Error(t, res.err)
	assert.Equal(t, exitUsage, exitCode(t, res.err))
}

func TestCLI_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := runCLI(t, url, "", "list")
	require.Error(t, res.err)
	assert.Equal(t, exitTransport, exitCode(t, res.err))
}

func TestCLI_Debug(t *testing.T) {
	srv := newServer(t)
	require.NoError(t, runCLI(t, srv.URL, "", "add", "--solde", "5").err)

	res := runCLI(t, srv.URL, "", "--debug", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "compte.Account")
}
