package v1handler

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"pylintd/internal/analyzer"
	"pylintd/internal/api/specs/v1specs"
	"pylintd/pkg/domain"
	"pylintd/pkg/serrors"
)

const (
	// DefaultLimit is the page size used when the limit parameter is absent.
	DefaultLimit = 20
	// MaxLimit bounds the limit parameter.
	MaxLimit = 100
)

func DomainReportToV1Specs(r *domain.Report) *v1specs.Report {
	messages := make([]v1specs.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		messages = append(messages, v1specs.Message{
			Path:      m.Path,
			Line:      m.Line,
			Column:    m.Column,
			MessageID: m.ID,
			Symbol:    m.Symbol,
			Category:  v1specs.MessageCategory(m.Category),
			Message:   m.Text,
		})
	}

	report := &v1specs.Report{
		Output:       r.Output,
		Messages:     messages,
		ExitCode:     r.ExitCode,
		ErrorCount:   r.ErrorCount(),
		WarningCount: r.WarningCount(),
	}
	if r.Score != nil {
		report.Score = v1specs.NewOptFloat64(*r.Score)
	}
	if r.PreviousScore != nil {
		report.PreviousScore = v1specs.NewOptFloat64(*r.PreviousScore)
	}

	return report
}

func DomainAnalysisToV1Specs(a *domain.Analysis) *v1specs.Analysis {
	out := &v1specs.Analysis{
		ID:         uuid.UUID(a.ID),
		FileName:   a.FileName,
		Source:     a.Source,
		SourceHash: a.SourceHash,
		Status:     v1specs.AnalysisStatus(a.Status),
		Attempts:   int(a.Attempts), //nolint: gosec
		CreatedAt:  a.CreatedAt.UTC(),
	}
	if a.Report != nil {
		out.Report = v1specs.NewOptReport(*DomainReportToV1Specs(a.Report))
	}
	if a.LastError != "" {
		out.LastError = v1specs.NewOptString(a.LastError)
	}
	if !a.UpdatedAt.IsZero() {
		out.UpdatedAt = v1specs.NewOptDateTime(a.UpdatedAt.UTC())
	}

	return out
}

// CreateAnalysis stores a new analysis and queues it.
func (h Handler) CreateAnalysis(ctx context.Context, req *v1specs.SourceRequest) (*v1specs.Analysis, error) {
	a, err := h.deps.Analyzer.Submit(ctx, GetUserIDFromContext(ctx), req.FileName.Value, req.Source)
	if err != nil {
		return nil, err
	}

	return DomainAnalysisToV1Specs(a), nil
}

// ListAnalyses returns a page of the caller's analyses, newest first.
func (h Handler) ListAnalyses(ctx context.Context, params v1specs.ListAnalysesParams) (*v1specs.AnalysisList, error) {
	analyses, next, err := h.deps.Analyzer.Analyses(ctx,
		GetUserIDFromContext(ctx),
		domain.AnalysisStatus(params.Status.Value),
		params.Cursor.Value,
		uint(params.Limit.Or(DefaultLimit))) //nolint: gosec
	if err != nil {
		return nil, err
	}

	items := make([]v1specs.Analysis, 0, len(analyses))
	for i := range analyses {
		items = append(items, *DomainAnalysisToV1Specs(&analyses[i]))
	}

	list := &v1specs.AnalysisList{Items: items}
	if next != "" {
		list.NextCursor = v1specs.NewNilString(next)
	} else {
		list.NextCursor.SetToNull()
	}

	return list, nil
}

// GetAnalysis returns one of the caller's analyses.
func (h Handler) GetAnalysis(ctx context.Context, params v1specs.GetAnalysisParams) (*v1specs.Analysis, error) {
	a, err := h.deps.Analyzer.Result(ctx, GetUserIDFromContext(ctx), domain.AnalysisID(params.ID))
	if err != nil {
		return nil, err
	}

	return DomainAnalysisToV1Specs(a), nil
}

// DeleteAnalysis soft-deletes one of the caller's analyses.
func (h Handler) DeleteAnalysis(ctx context.Context, params v1specs.DeleteAnalysisParams) error {
	return h.deps.Analyzer.Delete(ctx, GetUserIDFromContext(ctx), domain.AnalysisID(params.ID))
}

// Lint runs pylint synchronously, the same way the TCP server does, and
// returns the report without storing it.
func (h Handler) Lint(ctx context.Context, req *v1specs.SourceRequest) (*v1specs.Report, error) {
	fileName, err := analyzer.ValidateFileName(req.FileName.Value)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Source) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "source is required")
	}

	report, err := h.deps.Runner.Run(ctx, fileName, req.Source)
	if err != nil {
		return nil, err
	}

	return DomainReportToV1Specs(report), nil
}
