package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/validate"
	"github.com/stretchr/testify/require"

	"pylintd/internal/api/handler/v1handler"
	"pylintd/internal/api/specs/v1specs"
	"pylintd/pkg/domain"
	"pylintd/pkg/logger"
	"pylintd/pkg/serrors"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	os.Exit(m.Run())
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.With(serrors.ErrBadRequest, "file name must end with .py")
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "file name must end with .py", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized")
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_HidesMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "pq: relation does not exist"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_UnknownKind_IsInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.NewKind("CUSTOM"), "custom"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind serrors.Kind
		want int
	}{
		{serrors.ErrNotFound, http.StatusNotFound},
		{serrors.ErrUnauthorized, http.StatusUnauthorized},
		{serrors.ErrForbidden, http.StatusForbidden},
		{serrors.ErrBadRequest, http.StatusBadRequest},
		{serrors.ErrConflict, http.StatusConflict},
		{serrors.ErrInternal, http.StatusInternalServerError},
		{serrors.ErrTimeout, http.StatusGatewayTimeout},
		{serrors.ErrUnavailable, http.StatusServiceUnavailable},
		{serrors.ErrRateLimited, http.StatusTooManyRequests},
		{serrors.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{serrors.ErrLintFailed, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			require.Equal(t, tt.want, v1handler.StatusOf(tt.kind))
		})
	}
}

func TestNewError_GeneratedServerErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	opCtx := ogenerrors.OperationContext{Name: v1specs.GetAnalysisOperation, ID: "getAnalysis"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "missing credentials",
			err:        &ogenerrors.SecurityError{OperationContext: opCtx, Err: ogenerrors.ErrSecurityRequirementIsNotSatisfied},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantMsg:    "missing bearer token",
		},
		{
			name: "rejected token",
			err: &ogenerrors.SecurityError{
				OperationContext: opCtx,
				Security:         "BearerAuth",
				Err:              serrors.Wrap(serrors.ErrUnauthorized, errors.New("expired"), "invalid token subject"),
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantMsg:    "invalid token subject",
		},
		{
			name:       "security handler failure without kind",
			err:        &ogenerrors.SecurityError{OperationContext: opCtx, Security: "BearerAuth", Err: errors.New("boom")},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantMsg:    "invalid token",
		},
		{
			name: "bad path parameter",
			err: &ogenerrors.DecodeParamsError{
				OperationContext: opCtx,
				Err:              &ogenerrors.DecodeParamError{Name: "id", In: "path", Err: errors.New("invalid uuid")},
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    `invalid path parameter "id"`,
		},
		{
			name:       "missing body",
			err:        &ogenerrors.DecodeRequestError{OperationContext: opCtx, Err: validate.ErrBodyRequired},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "request body is required",
		},
		{
			name:       "malformed body",
			err:        &ogenerrors.DecodeRequestError{OperationContext: opCtx, Err: errors.New("unexpected EOF")},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "invalid request body",
		},
		{
			name:       "body over limit",
			err:        &ogenerrors.DecodeRequestError{OperationContext: opCtx, Err: &http.MaxBytesError{Limit: 64}},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "PAYLOAD_TOO_LARGE",
			wantMsg:    "request body is larger than 64 bytes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.wantStatus, res.StatusCode)
			require.Equal(t, tt.wantCode, res.Response.Code)
			require.Equal(t, tt.wantMsg, res.Response.Message)
		})
	}
}

func TestErrorHandler_WritesServerError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	rec := httptest.NewRecorder()
	h.ErrorHandler(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/v1/analyses", nil), errors.New("write failed"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"code":"INTERNAL","message":"internal error"}`, rec.Body.String())
}

func TestDomainAnalysisToV1Specs(t *testing.T) {
	score, previous := 7.5, 5.0
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	a := &domain.Analysis{
		ID:         domain.AnalysisID(uuid.New()),
		FileName:   "app.py",
		Source:     "x = 1\n",
		SourceHash: "abc",
		Status:     domain.AnalysisStatusCompleted,
		Attempts:   2,
		LastError:  "pylint timed out",
		CreatedAt:  created,
		UpdatedAt:  created.Add(time.Minute),
		Report: &domain.Report{
			Output: "out",
			Messages: []domain.Message{
				{Path: "app.py", Line: 1, ID: "E0602", Symbol: "undefined-variable", Category: domain.CategoryError, Text: "Undefined variable"},
				{Path: "app.py", Line: 2, ID: "C0114", Symbol: "missing-module-docstring", Category: domain.CategoryConvention, Text: "Missing module docstring"},
			},
			Score:         &score,
			PreviousScore: &previous,
			ExitCode:      18,
		},
	}

	got := v1handler.DomainAnalysisToV1Specs(a)
	require.Equal(t, uuid.UUID(a.ID), got.ID)
	require.Equal(t, v1specs.AnalysisStatusCOMPLETED, got.Status)
	require.Equal(t, 2, got.Attempts)
	require.Equal(t, time.UTC, got.CreatedAt.Location())
	require.True(t, got.CreatedAt.Equal(created))
	require.Equal(t, v1specs.NewOptString("pylint timed out"), got.LastError)
	require.True(t, got.UpdatedAt.IsSet())

	report, ok := got.Report.Get()
	require.True(t, ok)
	require.Equal(t, 1, report.ErrorCount)
	require.Equal(t, 1, report.WarningCount)
	require.Equal(t, v1specs.NewOptFloat64(7.5), report.Score)
	require.Equal(t, v1specs.NewOptFloat64(5.0), report.PreviousScore)
	require.Len(t, report.Messages, 2)
	require.Equal(t, v1specs.MessageCategoryError, report.Messages[0].Category)
	require.Equal(t, "E0602", report.Messages[0].MessageID)
}

func TestDomainAnalysisToV1Specs_Pending(t *testing.T) {
	got := v1handler.DomainAnalysisToV1Specs(&domain.Analysis{
		ID:        domain.AnalysisID(uuid.New()),
		Status:    domain.AnalysisStatusPending,
		CreatedAt: time.Now(),
	})
	require.False(t, got.Report.IsSet())
	require.False(t, got.LastError.IsSet())
	require.False(t, got.UpdatedAt.IsSet())
}

func TestDomainReportToV1Specs_EmptyMessages(t *testing.T) {
	got := v1handler.DomainReportToV1Specs(&domain.Report{Output: "", ExitCode: 0})
	require.NotNil(t, got.Messages)
	require.Empty(t, got.Messages)
	require.False(t, got.Score.IsSet())
	require.NoError(t, got.Validate())
}
