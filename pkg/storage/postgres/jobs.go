package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a river job through an insert-only client. Inside a
// transaction the job only becomes visible with the commit, together with the
// analyses stored in it.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var res *rivertype.JobInsertResult
	switch db := p.DB.(type) {
	case *sql.Tx:
		client, err := river.NewClient(riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river client: %w", err)
		}

		res, err = client.InsertTx(ctx, db, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
		}
	case *sql.DB:
		client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river client: %w", err)
		}

		res, err = client.Insert(ctx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
		}
	default:
		return false, fmt.Errorf("unsupported database handle %T", p.DB)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
