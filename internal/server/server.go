// Package server implements the raw TCP lint protocol: a client sends Python
// source terminated by a delimiter, the server answers with a banner followed
// by pylint's plain text output and closes the connection.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pylintd/internal/config"
	"pylintd/pkg/domain"
	"pylintd/pkg/logger"
	"pylintd/pkg/metrics"
	"pylintd/pkg/pylint"
	"pylintd/pkg/serrors"
)

const (
	// Banner is written before the analysis result.
	Banner = "Analyzing file... "
	// ErrorPrefix starts every error reply.
	ErrorPrefix = "Server error: "
)

const (
	lingerTimeout  = 500 * time.Millisecond
	lingerMaxBytes = 256 << 10
)

// ErrServerClosed is returned by Serve and ListenAndServe after Shutdown.
var ErrServerClosed = errors.New("tcp server closed")

// Options configure the TCP server.
type Options struct {
	// Addr is the host:port to listen on.
	Addr string
	// Delimiter terminates a request.
	Delimiter string
	// ReadChunkSize is the size of a single read.
	ReadChunkSize int
	// MaxPayloadBytes bounds the received source; <= 0 means unlimited.
	MaxPayloadBytes int
	// ReadTimeout bounds reading the whole request; zero disables it.
	ReadTimeout time.Duration
	// WriteTimeout bounds each write; zero disables it.
	WriteTimeout time.Duration
}

// NewOptions builds Options from the configuration. addr is the validated
// listen address, see config.CheckEnvironment.
func NewOptions(cfg *config.Config, addr string) Options {
	return Options{
		Addr:            addr,
		Delimiter:       cfg.TCP.Delimiter,
		ReadChunkSize:   cfg.TCP.ReadChunkSize,
		MaxPayloadBytes: cfg.TCP.MaxPayloadBytes,
		ReadTimeout:     cfg.TCP.ReadTimeout,
		WriteTimeout:    cfg.TCP.WriteTimeout,
	}
}

// Server accepts lint connections and serves each in its own goroutine.
type Server struct {
	runner pylint.Runner
	opts   Options

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	inShutdown atomic.Bool
}

// New creates a server that analyses requests with runner.
func New(runner pylint.Runner, opts Options) *Server {
	if opts.Delimiter == "" {
		opts.Delimiter = "<<EOF>>"
	}

	return &Server{
		runner: runner,
		opts:   opts,
		conns:  make(map[net.Conn]struct{}),
	}
}

// ListenAndServe listens on Options.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", s.opts.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until Shutdown is called or ctx is done.
// Connection handlers outlive ctx; they are bounded by Shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	handlerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s.mu.Lock()
	if s.inShutdown.Load() {
		s.mu.Unlock()
		cancel()
		_ = ln.Close()

		return ErrServerClosed
	}
	s.listener = ln
	s.cancel = cancel
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	logger.Info(ctx, "tcp server listening", zap.String("addr", ln.Addr().String()))

	delay := backoff.NewExponentialBackOff()
	delay.InitialInterval = 5 * time.Millisecond
	delay.MaxInterval = time.Second
	delay.MaxElapsedTime = 0

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.inShutdown.Load() {
				return ErrServerClosed
			}
			if ctx.Err() != nil {
				return ctx.Err() //nolint: wrapcheck
			}
			if errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("listener closed: %w", err)
			}

			wait := delay.NextBackOff()
			logger.Error(ctx, "could not accept connection", zap.Error(err), zap.Duration("retryIn", wait))
			time.Sleep(wait)

			continue
		}
		delay.Reset()

		if !s.track(conn) {
			_ = conn.Close()

			continue
		}

		go func() {
			defer s.untrack(conn)
			s.handle(handlerCtx, conn)
		}()
	}
}

// Shutdown stops accepting connections and waits for running handlers. When
// ctx ends first the remaining connections are closed, their pylint runs are
// cancelled and ctx's error is returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.inShutdown.Store(true)
	var err error
	if s.listener != nil {
		if cerr := s.listener.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = fmt.Errorf("could not close listener: %w", cerr)
		}
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return err
	case <-ctx.Done():
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return ctx.Err() //nolint: wrapcheck
}

// Addr returns the listener address, or nil before Serve.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// ActiveConnections returns the number of connections being served.
func (s *Server) ActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.conns)
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inShutdown.Load() {
		return false
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	metrics.TCPActiveConnections.Inc()

	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()

	metrics.TCPActiveConnections.Dec()
	s.wg.Done()
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	ctx = logger.WithFields(ctx,
		zap.String("connectionId", uuid.NewString()),
		zap.String("remoteAddr", conn.RemoteAddr().String()))

	logger.Info(ctx, "connection from client")
	start := time.Now()

	defer func() {
		if err := closeConn(conn); err != nil && !errors.Is(err, net.ErrClosed) {
			logger.Warn(ctx, "could not close connection", zap.Error(err))
		}
		logger.Info(ctx, "connection closed", zap.Duration("elapsed", time.Since(start)))
	}()

	if err := s.serve(ctx, conn); err != nil {
		metrics.TCPConnections.WithLabelValues("error").Inc()
		logger.Error(ctx, "error handling connection", zap.Error(err))

		if werr := s.write(conn, ErrorPrefix+serrors.MessageOf(err, err.Error())); werr != nil {
			logger.Warn(ctx, "could not send error reply", zap.Error(werr))
		}

		return
	}
	metrics.TCPConnections.WithLabelValues("ok").Inc()
}

func (s *Server) serve(ctx context.Context, conn net.Conn) error {
	if s.opts.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout))
	}

	source, err := ReadRequest(conn, s.opts.Delimiter, s.opts.ReadChunkSize, s.opts.MaxPayloadBytes)
	if err != nil {
		return err
	}

	logger.Info(ctx, "running pylint on received source",
		zap.String("size", humanize.Bytes(uint64(len(source)))))

	if err := s.write(conn, Banner); err != nil {
		return err
	}

	report, err := s.runner.Run(ctx, domain.DefaultFileName, source)
	if err != nil {
		return fmt.Errorf("could not analyse source: %w", err)
	}

	logger.Debug(ctx, "pylint finished",
		zap.Int("messages", len(report.Messages)),
		zap.Int("exitCode", report.ExitCode))

	return s.write(conn, report.Output)
}

// closeConn sends FIN first and discards what the client still sends, so that
// closing with unread input does not reset the connection before the client
// has read the reply.
func closeConn(conn net.Conn) error {
	if cw, ok := conn.(interface{ CloseWrite() error }); ok && cw.CloseWrite() == nil {
		_ = conn.SetReadDeadline(time.Now().Add(lingerTimeout))
		_, _ = io.Copy(io.Discard, io.LimitReader(conn, lingerMaxBytes))
	}

	return conn.Close() //nolint: wrapcheck
}

func (s *Server) write(conn net.Conn, text string) error {
	if text == "" {
		return nil
	}
	if s.opts.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout))
	}
	if _, err := conn.Write([]byte(text)); err != nil {
		return fmt.Errorf("could not write reply: %w", err)
	}

	return nil
}
