package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pylintd/pkg/domain"
)

// jsonColumn is a nullable JSONB value. NULL scans into a nil slice and a nil
// slice is written as NULL.
type jsonColumn []byte

func (j *jsonColumn) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = jsonColumn(v)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}

	return nil
}

func (j jsonColumn) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}

	return string(j), nil
}

type PgAnalysis struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	FileName   string     `db:"file_name"`
	Source     string     `db:"source"`
	SourceHash string     `db:"source_hash"`
	Status     string     `db:"status"`
	Report     jsonColumn `db:"report"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgAnalysis) ToDomain() (*domain.Analysis, error) {
	var report *domain.Report
	if len(p.Report) > 0 {
		report = &domain.Report{}
		if err := json.Unmarshal(p.Report, report); err != nil {
			return nil, fmt.Errorf("could not unmarshal report: %w", err)
		}
	}

	return &domain.Analysis{
		ID:         domain.AnalysisID(p.ID),
		UserID:     domain.UserID(p.UserID),
		FileName:   p.FileName,
		Source:     p.Source,
		SourceHash: p.SourceHash,
		Status:     domain.AnalysisStatus(p.Status),
		Report:     report,
		Attempts:   p.Attempts,
		LastError:  p.LastError.String,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
		DeletedAt:  p.DeletedAt.Time,
	}, nil
}

func (p *PgAnalysis) FromDomain(analysis domain.Analysis) error {
	report, err := marshalReport(analysis.Report)
	if err != nil {
		return err
	}

	*p = PgAnalysis{
		ID:         uuid.UUID(analysis.ID),
		UserID:     uuid.UUID(analysis.UserID),
		FileName:   analysis.FileName,
		Source:     analysis.Source,
		SourceHash: analysis.SourceHash,
		Status:     string(analysis.Status),
		Report:     report,
		Attempts:   analysis.Attempts,
		LastError: sql.NullString{
			String: analysis.LastError,
			Valid:  analysis.LastError != "",
		},
		CreatedAt: analysis.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  analysis.UpdatedAt,
			Valid: !analysis.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  analysis.DeletedAt,
			Valid: !analysis.DeletedAt.IsZero(),
		},
	}

	return nil
}

func marshalReport(report *domain.Report) (jsonColumn, error) {
	if report == nil {
		return nil, nil
	}

	b, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("could not marshal report: %w", err)
	}

	return b, nil
}

func domainAnalysesToPg(analyses []domain.Analysis) ([]PgAnalysis, error) {
	out := make([]PgAnalysis, len(analyses))
	for i := range out {
		if err := out[i].FromDomain(analyses[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgAnalysesToDomain(analyses []PgAnalysis) ([]domain.Analysis, error) {
	out := make([]domain.Analysis, 0, len(analyses))
	for _, analysis := range analyses {
		d, err := analysis.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
