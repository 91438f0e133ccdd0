package datasetinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/jmoiron/sqlx"
)

// PostgresLoader implements dataset.Loader over a read-only candidates table.
// ATS databases expose the same seven columns the file export carries; the
// loader never writes back.
type PostgresLoader struct {
	db    *sqlx.DB
	table string
}

// NewPostgresLoader creates a loader reading from the given table
func NewPostgresLoader(db *sqlx.DB, table string) *PostgresLoader {
	if table == "" {
		table = "candidates"
	}
	return &PostgresLoader{
		db:    db,
		table: table,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type candidateModel struct {
	Candidate   string       `db:"candidate"`
	Role        string       `db:"role"`
	Stage       string       `db:"stage"`
	Source      string       `db:"source"`
	AppliedDate sql.NullTime `db:"applied_date"`
	LastUpdated sql.NullTime `db:"last_updated"`
	Skills      string       `db:"skills"`
}

// toRecord converts the database model to a candidate record
func (m *candidateModel) toRecord() dataset.Candidate {
	return dataset.Candidate{
		Name:        m.Candidate,
		Role:        m.Role,
		Stage:       dataset.Stage(m.Stage),
		Source:      m.Source,
		AppliedDate: nullableTime(m.AppliedDate),
		LastUpdated: nullableTime(m.LastUpdated),
		Skills:      m.Skills,
	}
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func (l *PostgresLoader) Load(ctx context.Context) (*dataset.Dataset, error) {
	query := fmt.Sprintf(`
		SELECT candidate, role, stage, source, applied_date, last_updated, skills
		FROM %s
		ORDER BY id`, l.table)

	var models []candidateModel
	if err := l.db.SelectContext(ctx, &models, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dataset.New(nil), nil
		}
		return nil, dataset.ErrLoadFailed(err).WithDetail("table", l.table)
	}

	records := make([]dataset.Candidate, 0, len(models))
	for _, m := range models {
		records = append(records, m.toRecord())
	}

	return dataset.New(records), nil
}
