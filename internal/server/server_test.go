package server_test

import (
	"context"
	"io"
	"net"
	"os"
	"pylintd/internal/server"
	"pylintd/pkg/domain"
	"pylintd/pkg/logger"
	mockpylint "pylintd/pkg/pylint/mock"
	"pylintd/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	os.Exit(m.Run())
}

func defaultOptions() server.Options {
	return server.Options{
		Delimiter:       delim,
		ReadChunkSize:   4096,
		MaxPayloadBytes: 1 << 20,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
	}
}

// startServer serves on a loopback port and shuts the server down with the test.
func startServer(t *testing.T, srv *server.Server) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(context.Background(), ln) }()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
		require.ErrorIs(t, <-errCh, server.ErrServerClosed)
	})

	return ln.Addr().String()
}

// roundTrip sends payload, half-closes when closeWrite is set and returns
// everything the server wrote.
func roundTrip(t *testing.T, addr string, payload string, closeWrite bool) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(payload))
	require.NoError(t, err)
	if closeWrite {
		require.NoError(t, conn.(*net.TCPConn).CloseWrite())
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	reply, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(reply)
}

func TestServer_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockpylint.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), domain.DefaultFileName, "import os\n").
		Return(&domain.Report{Output: "main.py:1:0: W0611: Unused import os (unused-import)\n"}, nil)

	addr := startServer(t, server.New(runner, defaultOptions()))

	reply := roundTrip(t, addr, "import os\n"+delim, false)
	require.Equal(t, server.Banner+"main.py:1:0: W0611: Unused import os (unused-import)\n", reply)
}

func TestServer_HalfCloseWithoutDelimiter(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockpylint.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), domain.DefaultFileName, "x = 1\n").
		Return(&domain.Report{Output: "ok\n"}, nil)

	addr := startServer(t, server.New(runner, defaultOptions()))

	require.Equal(t, server.Banner+"ok\n", roundTrip(t, addr, "x = 1\n", true))
}

func TestServer_SmallChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockpylint.NewMockRunner(ctrl)
	source := strings.Repeat("print('chunk')\n", 50)
	runner.EXPECT().Run(gomock.Any(), domain.DefaultFileName, source).
		Return(&domain.Report{Output: "done"}, nil)

	opts := defaultOptions()
	opts.ReadChunkSize = 7
	addr := startServer(t, server.New(runner, opts))

	require.Equal(t, server.Banner+"done", roundTrip(t, addr, source+delim+"ignored", false))
}

func TestServer_RunnerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockpylint.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrLintFailed, "pylint: error: no such option: --bogus"))

	addr := startServer(t, server.New(runner, defaultOptions()))

	reply := roundTrip(t, addr, "x = 1\n"+delim, false)
	require.Equal(t, server.Banner+server.ErrorPrefix+"pylint: error: no such option: --bogus", reply)
}

func TestServer_PayloadTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockpylint.NewMockRunner(ctrl)

	opts := defaultOptions()
	opts.MaxPayloadBytes = 16
	addr := startServer(t, server.New(runner, opts))

	reply := roundTrip(t, addr, strings.Repeat("x", 64)+delim, false)
	require.Equal(t, server.ErrorPrefix+"payload too large", reply)
}

func TestServer_ReadTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockpylint.NewMockRunner(ctrl)

	opts := defaultOptions()
	opts.ReadTimeout = 100 * time.Millisecond
	addr := startServer(t, server.New(runner, opts))

	reply := roundTrip(t, addr, "x = 1\n", false)
	require.True(t, strings.HasPrefix(reply, server.ErrorPrefix), reply)
	require.Contains(t, reply, "timeout")
}

func TestServer_ConcurrentClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockpylint.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), domain.DefaultFileName, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, source string) (*domain.Report, error) {
			return &domain.Report{Output: "got " + source}, nil
		}).
		Times(10)

	addr := startServer(t, server.New(runner, defaultOptions()))

	replies := make(chan string, 10)
	for i := range 10 {
		go func() {
			replies <- roundTrip(t, addr, strings.Repeat("a", i+1)+delim, false)
		}()
	}
	for range 10 {
		reply := <-replies
		require.True(t, strings.HasPrefix(reply, server.Banner+"got a"), reply)
	}
}

func TestServer_ShutdownWaitsThenForcesClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockpylint.NewMockRunner(ctrl)

	started := make(chan struct{})
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string) (*domain.Report, error) {
			close(started)
			<-ctx.Done()

			return nil, serrors.Wrap(serrors.ErrUnavailable, ctx.Err(), "pylint run cancelled")
		})

	srv := server.New(runner, defaultOptions())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(context.Background(), ln) }()

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.Write([]byte("x = 1\n" + delim))
	require.NoError(t, err)
	<-started
	require.Equal(t, 1, srv.ActiveConnections())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, srv.Shutdown(ctx), context.DeadlineExceeded)
	require.ErrorIs(t, <-errCh, server.ErrServerClosed)

	require.Eventually(t, func() bool { return srv.ActiveConnections() == 0 }, 2*time.Second, 10*time.Millisecond)

	_, err = net.Dial("tcp", ln.Addr().String())
	require.Error(t, err)
}

func TestServer_ServeStopsWithContext(t *testing.T) {
	srv := server.New(mockpylint.NewMockRunner(gomock.NewController(t)), defaultOptions())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool { return srv.Addr() != nil }, time.Second, 5*time.Millisecond)
	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)
}
