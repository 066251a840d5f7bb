// Package client talks to the remote Compte collection over HTTP in the
// wire format it was bound to at construction.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carson-networks/compte-client/internal/codec"
	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/logging"
)

const (
	CollectionPath = "/comptes"
	DefaultTimeout = 30 * time.Second

	maxMessageLength = 256
)

// Client is bound to one codec for its whole life and holds no other state,
// so it is safe for concurrent use.
type Client struct {
	baseURL        string
	collectionPath string
	codec          codec.Codec
	httpClient     *http.Client
	timeout        *time.Duration
	logger         *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default otelhttp-instrumented client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each request, whichever HTTP client is in use. The
// client passed to WithHTTPClient is copied, never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// WithLogger sets the logger used for per-call logging.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCollectionPath replaces the default /comptes collection path.
func WithCollectionPath(path string) Option {
	return func(c *Client) {
		c.collectionPath = "/" + strings.Trim(path, "/")
	}
}

// New creates a Client for the service at baseURL, speaking the format of c.
func New(baseURL string, c codec.Codec, opts ...Option) *Client {
	cl := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		collectionPath: CollectionPath,
		codec:          c,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   DefaultTimeout,
		},
		logger: logging.SetupLogging(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	if cl.timeout != nil {
		httpClient := *cl.httpClient
		httpClient.Timeout = *cl.timeout
		cl.httpClient = &httpClient
	}
	return cl
}

// NewForFormat binds the client to the codec selected by format. Only "XML"
// selects XML; anything else falls back to JSON.
func NewForFormat(format string, baseURL string, opts ...Option) *Client {
	return New(baseURL, codec.ForFormat(format), opts...)
}

// Format reports the bound format token.
func (c *Client) Format() string {
	return c.codec.Name()
}

// ListAll fetches the whole collection. An empty collection is an empty,
// non-nil slice.
func (c *Client) ListAll(ctx context.Context) ([]compte.Account, error) {
	const op = "ListAll"

	status, body, err := c.roundTrip(ctx, op, http.MethodGet, c.collectionPath, nil)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &ServerError{Op: op, StatusCode: status, Cause: ErrMissingBody}
	}

	accounts, err := c.codec.UnmarshalAccounts(body)
	if err != nil {
		return nil, &ServerError{Op: op, StatusCode: status, Cause: fmt.Errorf("%w: %w", ErrUnparseableBody, err)}
	}
	return accounts, nil
}

// Create posts account without its id and returns the record the server
// stored, id included.
func (c *Client) Create(ctx context.Context, account compte.Account) (compte.Account, error) {
	const op = "Create"

	status, body, err := c.roundTrip(ctx, op, http.MethodPost, c.collectionPath, account.WithoutID())
	if err != nil {
		return compte.Account{}, err
	}
	return c.decodeAccount(op, status, body)
}

// Update replaces the account addressed by id with the given state. The path
// id wins over any id the account carries.
func (c *Client) Update(ctx context.Context, id int64, account compte.Account) (compte.Account, error) {
	const op = "Update"

	status, body, err := c.roundTrip(ctx, op, http.MethodPut, c.itemPath(id), account.WithID(id))
	if err != nil {
		return compte.Account{}, err
	}
	return c.decodeAccount(op, status, body)
}

// Delete removes the account addressed by id. Any response body is ignored.
func (c *Client) Delete(ctx context.Context, id int64) error {
	_, _, err := c.roundTrip(ctx, "Delete", http.MethodDelete, c.itemPath(id), nil)
	return err
}

func (c *Client) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", c.collectionPath, id)
}

func (c *Client) decodeAccount(op string, status int, body []byte) (compte.Account, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return compte.Account{}, &ServerError{Op: op, StatusCode: status, Cause: ErrMissingBody}
	}

	var account compte.Account
	if err := c.codec.Unmarshal(body, &account); err != nil {
		return compte.Account{}, &ServerError{Op: op, StatusCode: status, Cause: fmt.Errorf("%w: %w", ErrUnparseableBody, err)}
	}
	return account, nil
}

// roundTrip sends one request and returns the status and the full body of a
// 2xx response. Every other outcome is a TransportError or a ServerError.
func (c *Client) roundTrip(ctx context.Context, op, method, path string, payload any) (int, []byte, error) {
	logData := logging.NewLogData(c.logger)
	logData.AddFields(logrus.Fields{
		"op":     op,
		"format": c.codec.Name(),
		"method": method,
		"path":   path,
	})

	var reader io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := c.codec.Marshal(buf, payload); err != nil {
			return 0, nil, &TransportError{Op: op, Cause: fmt.Errorf("encode request: %w", err)}
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Cause: err}
	}
	req.Header.Set("Accept", c.codec.ContentType())
	if payload != nil {
		req.Header.Set("Content-Type", c.codec.ContentType())
	}
	if requestID, err := uuid.NewV4(); err == nil {
		req.Header.Set(logging.RequestIDHeader, requestID.String())
		logData.AddData("requestID", requestID.String())
	}

	stopTimer := logData.AddTiming("requestMs")
	resp, err := c.httpClient.Do(req)
	stopTimer()
	if err != nil {
		logData.Log().WithError(err).Errorf("Client.%v.TransportError", op)
		return 0, nil, &TransportError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	logData.AddData("statusCode", resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logData.Log().WithError(err).Errorf("Client.%v.ReadError", op)
		return resp.StatusCode, nil, &ServerError{Op: op, StatusCode: resp.StatusCode, Cause: fmt.Errorf("%w: %w", ErrUnparseableBody, err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logData.Log().Warnf("Client.%v.ServerError", op)
		return resp.StatusCode, body, &ServerError{Op: op, StatusCode: resp.StatusCode, Message: bodyMessage(body)}
	}

	logData.Log().Debugf("Client.%v.Complete", op)
	return resp.StatusCode, body, nil
}

func bodyMessage(body []byte) string {
	message := strings.TrimSpace(string(body))
	if len(message) <= maxMessageLength {
		return message
	}
	cut := maxMessageLength
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}
	return message[:cut]
}
