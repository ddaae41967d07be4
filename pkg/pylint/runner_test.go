package pylint_test

import (
	"context"
	"os"
	"path/filepath"
	"pylintd/pkg/logger"
	"pylintd/pkg/pylint"
	"pylintd/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	os.Exit(m.Run())
}

// fakePylint writes an executable shell script standing in for pylint.
func fakePylint(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pylint")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)) //nolint: gosec

	return path
}

func TestExec_Run_MessagesAreNotFailures(t *testing.T) {
	bin := fakePylint(t, `
for last; do :; done
test -f "$last" || { echo "missing $last" >&2; exit 32; }
grep -q "return a + b" "$last" || { echo "bad content" >&2; exit 32; }
echo "************* Module $(basename "$last" .py)"
echo "$last:1:0: C0114: Missing module docstring (missing-module-docstring)"
echo
echo "Your code has been rated at 5.00/10"
exit 16`)

	r := pylint.New(pylint.Options{Binary: bin, Timeout: 5 * time.Second})
	report, err := r.Run(context.Background(), "add.py", "def add(a, b):\n    return a + b\n")
	require.NoError(t, err)
	require.Equal(t, pylint.ExitConvention, report.ExitCode)
	require.Contains(t, report.Output, "************* Module add")
	require.Len(t, report.Messages, 1)
	require.Equal(t, "add.py", report.Messages[0].Path)
	require.NotNil(t, report.Score)
	require.InDelta(t, 5.0, *report.Score, 1e-9)
}

func TestExec_Run_PassesArgsBeforeFile(t *testing.T) {
	bin := fakePylint(t, `echo "args: $*"`)

	r := pylint.New(pylint.Options{Binary: bin, Args: []string{"--disable=C0114", "--score=y"}})
	report, err := r.Run(context.Background(), "", "x = 1\n")
	require.NoError(t, err)
	require.Equal(t, "args: --disable=C0114 --score=y main.py\n", report.Output)
	require.Equal(t, 0, report.ExitCode)
}

func TestExec_Run_DashedNameNeverReachesArgv(t *testing.T) {
	bin := fakePylint(t, `for a in "$@"; do echo "arg: $a"; done`)

	r := pylint.New(pylint.Options{Binary: bin})
	for _, name := range []string{"-x.py", "--rcfile=a.py", "--init-hook=import os;os.system('id');x='.py"} {
		report, err := r.Run(context.Background(), name, "x = 1\n")
		require.NoError(t, err, name)
		require.Equal(t, "arg: main.py\n", report.Output, name)
	}
}

func TestExec_Run_UsageErrorFails(t *testing.T) {
	bin := fakePylint(t, `echo "pylint: error: no such option: --bogus" >&2; exit 32`)

	r := pylint.New(pylint.Options{Binary: bin})
	_, err := r.Run(context.Background(), "main.py", "x = 1\n")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrLintFailed)
	require.Contains(t, err.Error(), "no such option")
}

func TestExec_Run_FatalWithoutOutputFails(t *testing.T) {
	bin := fakePylint(t, `exit 1`)

	_, err := pylint.New(pylint.Options{Binary: bin}).Run(context.Background(), "main.py", "x = 1\n")
	require.ErrorIs(t, err, serrors.ErrLintFailed)
	require.Contains(t, err.Error(), "status 1")
}

func TestExec_Run_FatalWithOutputSucceeds(t *testing.T) {
	bin := fakePylint(t, `echo "main.py:1:0: F0010: error while code parsing (parse-error)"; exit 1`)

	report, err := pylint.New(pylint.Options{Binary: bin}).Run(context.Background(), "main.py", "x = 1\n")
	require.NoError(t, err)
	require.Equal(t, 1, report.ErrorCount())
}

func TestExec_Run_Timeout(t *testing.T) {
	bin := fakePylint(t, `exec sleep 5`)

	r := pylint.New(pylint.Options{Binary: bin, Timeout: 100 * time.Millisecond})
	start := time.Now()
	_, err := r.Run(context.Background(), "main.py", "x = 1\n")
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Less(t, time.Since(start), 3*time.Second)
}

func TestExec_Run_MissingBinary(t *testing.T) {
	r := pylint.New(pylint.Options{Binary: filepath.Join(t.TempDir(), "does-not-exist")})
	_, err := r.Run(context.Background(), "main.py", "x = 1\n")
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	r = pylint.New(pylint.Options{Binary: "pylintd-no-such-binary-in-path"})
	_, err = r.Run(context.Background(), "main.py", "x = 1\n")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestExec_Run_RemovesTempFiles(t *testing.T) {
	tmp := t.TempDir()
	bin := fakePylint(t, `echo ok`)

	r := pylint.New(pylint.Options{Binary: bin, TempDir: tmp})
	_, err := r.Run(context.Background(), "main.py", "x = 1\n")
	require.NoError(t, err)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestExec_Run_BoundsConcurrency(t *testing.T) {
	bin := fakePylint(t, `exec sleep 5`)
	r := pylint.New(pylint.Options{Binary: bin, MaxConcurrentRuns: 1, Timeout: 500 * time.Millisecond})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = r.Run(context.Background(), "main.py", "x = 1\n")
	}()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := r.Run(ctx, "main.py", "x = 1\n")
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	<-done
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"":                 "main.py",
		"   ":              "main.py",
		"add.py":           "add.py",
		"../../etc/passwd": "passwd.py",
		`C:\src\mod.py`:    "mod.py",
		"script":           "script.py",
		".hidden.py":       "main.py",
		"dir/":             "dir.py",
		"-x.py":            "main.py",
		"--rcfile=a.py":    "main.py",
		"a/--init-hook=import os;os.system('id');x='.py": "main.py",
	}
	for in, want := range cases {
		require.Equal(t, want, pylint.SanitizeFileName(in), "input %q", in)
	}
}

func TestSplitArgs(t *testing.T) {
	args, err := pylint.SplitArgs(`--disable="C0114,C0116" --score=n`)
	require.NoError(t, err)
	require.Equal(t, []string{"--disable=C0114,C0116", "--score=n"}, args)

	args, err = pylint.SplitArgs("")
	require.NoError(t, err)
	require.Empty(t, args)
}
