package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"pylintd/pkg/domain"
	"pylintd/pkg/storage"
)

const (
	analysesTable = "analyses"
)

func (p *PgSQL) StoreAnalyses(ctx context.Context, analyses ...domain.Analysis) ([]domain.Analysis, error) {
	if len(analyses) == 0 {
		return nil, nil
	}

	pgAnalyses, err := domainAnalysesToPg(analyses)
	if err != nil {
		return nil, err
	}

	var result []PgAnalysis
	if err := p.Builder.Insert(analysesTable).
		Rows(pgAnalyses).
		Returning(&PgAnalysis{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store analyses into pg: %w", err)
	}

	return pgAnalysesToDomain(result)
}

// updateRecord turns updates into the SET clause shared by the update methods.
func updateRecord(updates storage.AnalysisUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Report != nil {
		report, err := marshalReport(updates.Report)
		if err != nil {
			return nil, err
		}

		rec["report"] = report
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingAnalysesByHash updates all pending analyses of the source hash.
// Attempts is incremented by 1 and updated_at is set. A failed status is only
// applied to rows that reached updates.MaxAttempts; the others stay pending.
func (p *PgSQL) UpdatePendingAnalysesByHash(ctx context.Context, hash string, updates storage.AnalysisUpdates) error {
	rec, err := updateRecord(updates)
	if err != nil {
		return err
	}
	rec["attempts"] = goqu.L("attempts + 1")
	if updates.Status == domain.AnalysisStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.Case().
			When(goqu.L("attempts + 1 >= ?", updates.MaxAttempts), string(domain.AnalysisStatusFailed)).
			Else(goqu.I("status"))
	}

	_, err = p.Builder.Update(analysesTable).
		Set(rec).Where(
		goqu.I("source_hash").Eq(hash),
		goqu.I("status").Eq(string(domain.AnalysisStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending analyses by hash in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) PendingAnalysisByHash(ctx context.Context, hash string) (*domain.Analysis, error) {
	return p.analysis(ctx,
		[]exp.OrderedExpression{goqu.I("created_at").Asc(), goqu.I("id").Asc()},
		goqu.I("source_hash").Eq(hash),
		goqu.I("status").Eq(string(domain.AnalysisStatusPending)),
		goqu.I("deleted_at").IsNull(),
	)
}

// UpdateAnalysisByID updates a live analysis without touching attempts. With
// OnlyPending set, analyses that left the pending status are not found.
func (p *PgSQL) UpdateAnalysisByID(ctx context.Context,
	id domain.AnalysisID,
	updates storage.AnalysisUpdates) (*domain.Analysis, error) {
	rec, err := updateRecord(updates)
	if err != nil {
		return nil, err
	}

	where := []exp.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if updates.OnlyPending {
		where = append(where, goqu.I("status").Eq(string(domain.AnalysisStatusPending)))
	}

	var row PgAnalysis
	found, err := p.Builder.Update(analysesTable).
		Set(rec).Where(where...).
		Returning(&PgAnalysis{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update analysis in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteAnalysis performs a soft delete by setting deleted_at timestamp
// for a given analysis id and user, returning the deleted record.
func (p *PgSQL) DeleteAnalysis(ctx context.Context,
	userID domain.UserID,
	id domain.AnalysisID) (*domain.Analysis, error) {
	var row PgAnalysis
	found, err := p.Builder.Update(analysesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgAnalysis{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete analysis in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserAnalyses returns a page of the user's analyses ordered by created_at
// DESC, id DESC.
func (p *PgSQL) UserAnalyses(ctx context.Context,
	userID domain.UserID,
	status domain.AnalysisStatus,
	cursor time.Time,
	limit uint) (storage.UserAnalyses, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(analysesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgAnalysis
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserAnalyses{}, fmt.Errorf("could not fetch user analyses from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	analyses, err := pgAnalysesToDomain(rows)
	if err != nil {
		return storage.UserAnalyses{}, err
	}

	return storage.UserAnalyses{
		Analyses:   analyses,
		NextCursor: nextCursor,
	}, nil
}

// AnalysisByID returns an analysis by its ID, excluding soft-deleted rows.
func (p *PgSQL) AnalysisByID(ctx context.Context,
	userID domain.UserID,
	id domain.AnalysisID) (*domain.Analysis, error) {
	return p.analysis(ctx, nil,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	)
}

// LastCompletedAnalysisByHash also considers soft-deleted rows: deleting an
// analysis hides it from its owner but its report stays valid for the source.
func (p *PgSQL) LastCompletedAnalysisByHash(ctx context.Context, hash string) (*domain.Analysis, error) {
	return p.analysis(ctx,
		[]exp.OrderedExpression{goqu.I("updated_at").Desc().NullsLast(), goqu.I("created_at").Desc()},
		goqu.I("source_hash").Eq(hash),
		goqu.I("status").Eq(string(domain.AnalysisStatusCompleted)),
		goqu.I("report").IsNotNull(),
	)
}

func (p *PgSQL) analysis(ctx context.Context,
	order []exp.OrderedExpression,
	where ...goqu.Expression) (*domain.Analysis, error) {
	ds := p.Builder.From(analysesTable).Where(where...).Limit(1)
	if len(order) > 0 {
		ds = ds.Order(order...)
	}

	var row PgAnalysis
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch analysis from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
