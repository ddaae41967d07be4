// Package pylint runs the pylint executable on submitted Python source and
// turns its text output into domain reports.
package pylint

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/shlex"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"pylintd/pkg/domain"
	"pylintd/pkg/logger"
	"pylintd/pkg/metrics"
	"pylintd/pkg/serrors"
)

// Bits of pylint's exit status.
const (
	ExitFatal      = 1
	ExitError      = 2
	ExitWarning    = 4
	ExitRefactor   = 8
	ExitConvention = 16
	ExitUsageError = 32
)

// Runner analyses a single Python file.
//
//go:generate mockgen -package mockpylint -source=runner.go -destination=mock/mockpylint.go Runner
type Runner interface {
	// Run analyses source as if it was stored in fileName and returns the report.
	Run(ctx context.Context, fileName, source string) (*domain.Report, error)
}

// Options configure how the executable is invoked.
type Options struct {
	// Binary is the pylint executable.
	Binary string
	// Args are passed before the file name.
	Args []string
	// Timeout bounds one run; zero means no timeout besides ctx.
	Timeout time.Duration
	// MaxConcurrentRuns bounds concurrently running processes; <= 0 means 1.
	MaxConcurrentRuns int64
	// TempDir is where per-run directories are created; empty uses os.TempDir.
	TempDir string
}

// SplitArgs splits a command line fragment such as `--disable="C0114,C0116"`
// using shell quoting rules.
func SplitArgs(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse pylint args")
	}

	return args, nil
}

// Exec runs pylint as a child process. It is safe for concurrent use.
type Exec struct {
	options Options
	sem     *semaphore.Weighted
}

var _ Runner = (*Exec)(nil)

// New creates an Exec runner.
func New(options Options) *Exec {
	if options.MaxConcurrentRuns <= 0 {
		options.MaxConcurrentRuns = 1
	}
	if options.Binary == "" {
		options.Binary = "pylint"
	}

	return &Exec{
		options: options,
		sem:     semaphore.NewWeighted(options.MaxConcurrentRuns),
	}
}

// SanitizeFileName reduces a client supplied name to a bare python file name.
// Names pylint could read as an option fall back to the default name.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.TrimSpace(strings.ReplaceAll(name, `\`, "/")))
	if name == "." || name == "/" || name == "" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "-") {
		return domain.DefaultFileName
	}
	if !strings.HasSuffix(name, ".py") {
		name += ".py"
	}

	return name
}

// Run writes source to a private temporary directory, runs pylint on it and
// parses the output. The directory is always removed.
func (e *Exec) Run(ctx context.Context, fileName, source string) (*domain.Report, error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, serrors.Wrap(serrors.ErrTimeout, err, "waiting for a pylint slot")
	}
	defer e.sem.Release(1)

	start := time.Now()
	report, err := e.run(ctx, SanitizeFileName(fileName), source)
	metrics.LintDuration.WithLabelValues(outcome(err)).Observe(time.Since(start).Seconds())

	return report, err
}

func (e *Exec) run(ctx context.Context, fileName, source string) (*domain.Report, error) {
	// pylint preprocesses options such as --init-hook anywhere in argv, even after "--"
	if strings.HasPrefix(fileName, "-") {
		return nil, serrors.With(serrors.ErrBadRequest, "file name must not start with a dash")
	}

	dir, err := os.MkdirTemp(e.options.TempDir, "pylintd-")
	if err != nil {
		return nil, errors.Wrap(err, "could not create temp dir")
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Warn(ctx, "could not remove temp dir", zap.String("dir", dir), zap.Error(err))
		}
	}()

	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(source), 0o600); err != nil {
		return nil, errors.Wrap(err, "could not write source file")
	}

	runCtx := ctx
	if e.options.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.options.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(e.options.Args)+1)
	args = append(args, e.options.Args...)
	args = append(args, fileName)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, e.options.Binary, args...) //nolint: gosec
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	logger.Debug(ctx, "running pylint", zap.String("file", fileName), zap.Strings("args", args))

	err = cmd.Run()
	if runCtx.Err() != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, runCtx.Err(), "pylint timed out")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, runCtx.Err(), "pylint run cancelled")
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			exitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			return nil, serrors.Wrap(serrors.ErrUnavailable, err, "pylint executable not found")
		default:
			return nil, serrors.Wrap(serrors.ErrLintFailed, err, "could not run pylint")
		}
	}

	if failed(exitCode, stdout.Len()) {
		logger.Error(ctx, "error running pylint",
			zap.Int("exitCode", exitCode),
			zap.String("stderr", stderr.String()))

		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			msg = "pylint exited with status " + strconv.Itoa(exitCode)
		}

		return nil, serrors.With(serrors.ErrLintFailed, "%s", msg)
	}

	report := Parse(stdout.String())
	report.ExitCode = exitCode

	return report, nil
}

// failed interprets pylint's exit status. Message bits mean the analysis
// succeeded; a usage error, a signal, or a fatal error without output did not.
func failed(exitCode int, outputLen int) bool {
	switch {
	case exitCode < 0:
		return true
	case exitCode&ExitUsageError != 0:
		return true
	case exitCode&ExitFatal != 0 && outputLen == 0:
		return true
	case exitCode > ExitFatal|ExitError|ExitWarning|ExitRefactor|ExitConvention|ExitUsageError:
		return true
	default:
		return false
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, serrors.ErrTimeout):
		return "timeout"
	case errors.Is(err, serrors.ErrUnavailable):
		return "unavailable"
	default:
		return "failed"
	}
}
