// Package v1handler implements the generated v1specs server interfaces on top
// of the analyzer and the pylint runner.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/validate"
	"go.uber.org/zap"

	"pylintd/internal/analyzer"
	"pylintd/internal/api/specs/v1specs"
	"pylintd/internal/config"
	"pylintd/pkg/logger"
	"pylintd/pkg/pylint"
	"pylintd/pkg/serrors"
)

// Deps are the services behind the handlers.
type Deps struct {
	Analyzer analyzer.Analyzer
	Runner   pylint.Runner
}

// Options tune request handling.
type Options struct {
	// MaxBodyBytes bounds request bodies; <= 0 means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// DefaultMaxBodyBytes is used when Options.MaxBodyBytes is not set.
const DefaultMaxBodyBytes = 2 << 20

// NewOptions builds Options from the configuration. The body limit leaves
// room for JSON escaping of the largest accepted source.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxBodyBytes: int64(cfg.Worker.MaxSourceBytes)*2 + 4096}
}

// BodyLimit is the effective request body limit.
func (o Options) BodyLimit() int64 {
	if o.MaxBodyBytes <= 0 {
		return DefaultMaxBodyBytes
	}

	return o.MaxBodyBytes
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:        "resource not found",
	serrors.ErrUnauthorized:    "unauthorized",
	serrors.ErrForbidden:       "forbidden",
	serrors.ErrBadRequest:      "bad request",
	serrors.ErrConflict:        "conflict",
	serrors.ErrInternal:        "internal error",
	serrors.ErrTimeout:         "request timed out",
	serrors.ErrUnavailable:     "service unavailable",
	serrors.ErrRateLimited:     "too many requests",
	serrors.ErrPayloadTooLarge: "payload too large",
	serrors.ErrLintFailed:      "pylint could not analyse the source",
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case serrors.ErrLintFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// classify gives the errors raised by the generated server their kind.
func classify(err error) error {
	var (
		secErr    *ogenerrors.SecurityError
		paramsErr *ogenerrors.DecodeParamsError
		reqErr    *ogenerrors.DecodeRequestError
	)

	switch {
	case errors.As(err, &secErr):
		if errors.Is(err, ogenerrors.ErrSecurityRequirementIsNotSatisfied) {
			return serrors.Wrap(serrors.ErrUnauthorized, err, "missing bearer token")
		}
		if serrors.KindOf(err) != serrors.ErrUnauthorized {
			return serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
		}

		return err
	case errors.As(err, &paramsErr):
		var paramErr *ogenerrors.DecodeParamError
		if errors.As(err, &paramErr) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s parameter %q", paramErr.In, paramErr.Name)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request parameters")
	case errors.As(err, &reqErr):
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return serrors.Wrap(serrors.ErrPayloadTooLarge, err, "request body is larger than %d bytes", maxErr.Limit)
		}
		if errors.Is(err, validate.ErrBodyRequired) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	default:
		return err
	}
}

// NewError converts err into the reply sent to the client. Internal errors
// never expose their message.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ServerErrorStatusCode {
	err = classify(err)

	kind := serrors.KindOf(err)
	if _, ok := defaultMessages[kind]; !ok {
		kind = serrors.ErrInternal
	}
	status := StatusOf(kind)

	msg := defaultMessages[kind]
	if kind != serrors.ErrInternal {
		msg = serrors.MessageOf(err, msg)
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.Int("statusCode", status))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("statusCode", status))
	}

	return &v1specs.ServerErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

// ErrorHandler writes errors the generated server does not route through
// NewError, such as response encoding failures.
func (h Handler) ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := h.NewError(ctx, err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	b, encodeErr := res.Response.MarshalJSON()
	if encodeErr != nil {
		logger.Error(ctx, "could not encode error response", zap.Error(encodeErr))

		return
	}
	if _, err := w.Write(b); err != nil {
		logger.Debug(ctx, "could not write error response", zap.Error(err))
	}
}
