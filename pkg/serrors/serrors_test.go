package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	faster "github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"pylintd/pkg/serrors"
)

func TestError_String(t *testing.T) {
	cause := errors.New("exit status 32")

	cases := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{name: "message and cause", err: serrors.Wrap(serrors.ErrLintFailed, cause, "running pylint"),
			want: "running pylint: exit status 32"},
		{name: "message only", err: serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", 100),
			want: "limit must be between 1 and 100"},
		{name: "cause only", err: serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, ""),
			want: "context deadline exceeded"},
		{name: "kind only", err: serrors.KindOnly(serrors.ErrPayloadTooLarge), want: "PAYLOAD_TOO_LARGE"},
		{name: "nil", err: nil, want: "<nil>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestKindOf_ThroughWrappers(t *testing.T) {
	lintFailed := serrors.With(serrors.ErrLintFailed, "no such option: --bogus")

	cases := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "nil", err: nil, want: nil},
		{name: "plain", err: errors.New("boom"), want: serrors.ErrInternal},
		{name: "bare kind", err: serrors.ErrUnavailable, want: serrors.ErrUnavailable},
		{name: "fmt wrap", err: fmt.Errorf("could not analyse source: %w", lintFailed), want: serrors.ErrLintFailed},
		{name: "go-faster wrap", err: faster.Wrap(lintFailed, "could not run pylint"), want: serrors.ErrLintFailed},
		{name: "double wrap", err: fmt.Errorf("submit: %w", faster.Wrap(serrors.KindOnly(serrors.ErrConflict), "tx")),
			want: serrors.ErrConflict},
		{name: "outer kind wins", err: serrors.Wrap(serrors.ErrTimeout, lintFailed, "waiting"), want: serrors.ErrTimeout},
		{name: "joined", err: errors.Join(errors.New("first"), serrors.KindOnly(serrors.ErrNotFound)),
			want: serrors.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, serrors.KindOf(tc.err))
		})
	}
}

func TestIs_KindAndCause(t *testing.T) {
	err := fmt.Errorf("could not run pylint: %w",
		serrors.Wrap(serrors.ErrUnavailable, context.Canceled, "pylint run cancelled"))

	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, serrors.ErrTimeout)
	require.NotErrorIs(t, err, context.DeadlineExceeded)
}

func TestAs_ExtractsError(t *testing.T) {
	inner := serrors.Wrap(serrors.ErrBadRequest, errors.New("bad cursor"), "invalid cursor")
	err := faster.Wrap(inner, "listing analyses")

	var se *serrors.Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, serrors.ErrBadRequest, se.Kind())
	require.Equal(t, "invalid cursor", se.Message())
	require.EqualError(t, se.Cause(), "bad cursor")
}

func TestMessageOf_Nested(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "no serrors", err: errors.New("pq: connection refused"), want: "fallback"},
		{name: "kind only", err: serrors.KindOnly(serrors.ErrNotFound), want: "fallback"},
		{name: "direct", err: serrors.With(serrors.ErrNotFound, "analysis not found"), want: "analysis not found"},
		{name: "empty outer message skips to inner",
			err:  fmt.Errorf("submit: %w", serrors.Wrap(serrors.ErrBadRequest, serrors.With(serrors.ErrBadRequest, "source is required"), "")),
			want: "source is required"},
		{name: "outer message wins",
			err:  serrors.Wrap(serrors.ErrTimeout, serrors.With(serrors.ErrLintFailed, "inner"), "pylint timed out"),
			want: "pylint timed out"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, serrors.MessageOf(tc.err, "fallback"))
		})
	}
}

func TestNewKind_Comparable(t *testing.T) {
	k := serrors.NewKind("SERVER_ERROR")
	require.Equal(t, serrors.NewKind("SERVER_ERROR"), k)
	require.NotEqual(t, serrors.ErrInternal, k)
	require.ErrorIs(t, serrors.With(k, "x"), serrors.NewKind("SERVER_ERROR"))
}
