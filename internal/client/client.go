// Package client talks to a running lint server over the raw TCP protocol.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"pylintd/internal/server"
	"pylintd/pkg/logger"
	"pylintd/pkg/serrors"
)

// ErrServer is the kind of errors reported by the server in its reply.
var ErrServer = serrors.NewKind("SERVER_ERROR")

// Options configure a Client.
type Options struct {
	// Delimiter terminates the request.
	Delimiter string
	// DialTimeout bounds a single connection attempt.
	DialTimeout time.Duration
	// MaxRetries is the number of extra dial attempts.
	MaxRetries uint64
	// Timeout bounds the whole exchange after connecting; zero means ctx only.
	Timeout time.Duration
}

// DefaultOptions returns the options used by Analyze.
func DefaultOptions() Options {
	return Options{
		Delimiter:   "<<EOF>>",
		DialTimeout: 5 * time.Second,
		MaxRetries:  4,
		Timeout:     2 * time.Minute,
	}
}

// Client sends sources to a lint server.
type Client struct {
	opts Options
}

// New creates a client.
func New(opts Options) *Client {
	if opts.Delimiter == "" {
		opts.Delimiter = "<<EOF>>"
	}

	return &Client{opts: opts}
}

// Analyze sends source to the server at addr with DefaultOptions and returns
// pylint's output.
func Analyze(ctx context.Context, addr, source string) (string, error) {
	return New(DefaultOptions()).Analyze(ctx, addr, source)
}

// Analyze sends source followed by the delimiter, half-closes the connection
// and reads the reply. The banner is stripped; an error reply becomes an error
// of kind ErrServer.
func (c *Client) Analyze(ctx context.Context, addr, source string) (string, error) {
	conn, err := c.dial(ctx, addr)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if c.opts.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(c.opts.Timeout))
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	if _, err := io.WriteString(conn, source+c.opts.Delimiter); err != nil {
		return "", fmt.Errorf("could not send source: %w", err)
	}
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		if err := cw.CloseWrite(); err != nil {
			return "", fmt.Errorf("could not close write side: %w", err)
		}
	}

	reply, err := io.ReadAll(conn)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("could not read reply: %w", ctx.Err())
		}

		return "", fmt.Errorf("could not read reply: %w", err)
	}

	return ParseReply(string(reply))
}

// ParseReply strips the banner from a server reply and turns error replies
// into errors.
func ParseReply(reply string) (string, error) {
	out := strings.TrimPrefix(reply, server.Banner)
	if msg, ok := strings.CutPrefix(out, server.ErrorPrefix); ok {
		return "", serrors.With(ErrServer, "%s", msg)
	}

	return out, nil
}

func (c *Client) dial(ctx context.Context, addr string) (net.Conn, error) {
	dialer := net.Dialer{Timeout: c.opts.DialTimeout}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.opts.MaxRetries), ctx)

	conn, err := backoff.RetryNotifyWithData(func() (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil && ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}

		return conn, err //nolint: wrapcheck
	}, policy, func(err error, wait time.Duration) {
		logger.Warn(ctx, "could not connect to lint server",
			zap.String("addr", addr), zap.Error(err), zap.Duration("retryIn", wait))
	})
	if err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not connect to %s", addr)
	}

	return conn, nil
}
