package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/match"
)

// MatchRepository stores reconciled match results.
type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) (*MatchRepository, error) {
	r := &MatchRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MatchRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS match_results (
	id UUID PRIMARY KEY,
	student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
	score INTEGER NOT NULL CHECK (score >= 0 AND score <= 100),
	dimensions TEXT NOT NULL DEFAULT '{}',
	recommendation TEXT NOT NULL DEFAULT '',
	gap_analysis TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_match_results_student ON match_results(student_id);
`)
	return err
}

// SaveBatch writes all results of one matching invocation in one transaction.
func (r *MatchRepository) SaveBatch(ctx context.Context, studentID uuid.UUID, results []match.Matched) error {
	if len(results) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	for _, m := range results {
		_, err := tx.Exec(ctx, `
INSERT INTO match_results (id, student_id, job_id, score, dimensions, recommendation, gap_analysis, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, uuid.New(), studentID, m.ID, m.Score, encodeDimensions(m.Dimensions), m.Recommendation, m.GapAnalysis, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

const historyQuery = `
SELECT mr.id, mr.student_id, mr.job_id, mr.score, mr.dimensions,
       mr.recommendation, mr.gap_analysis, mr.created_at,
       s.name, j.company, j.position, j.city, j.salary_range
FROM match_results mr
JOIN students s ON mr.student_id = s.id
JOIN jobs j ON mr.job_id = j.id
`

func (r *MatchRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]match.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, historyQuery+`WHERE mr.student_id = $1 ORDER BY mr.score DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHistory(rows)
}

func (r *MatchRepository) ListAll(ctx context.Context, limit, offset int) ([]match.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, historyQuery+`ORDER BY mr.score DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHistory(rows)
}

func collectHistory(rows pgx.Rows) ([]match.HistoryEntry, error) {
	out := make([]match.HistoryEntry, 0)
	for rows.Next() {
		var e match.HistoryEntry
		var dims string
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.JobID, &e.Score, &dims,
			&e.Recommendation, &e.GapAnalysis, &e.CreatedAt,
			&e.StudentName, &e.Company, &e.Position, &e.City, &e.SalaryRange,
		)
		if err != nil {
			return nil, err
		}
		e.Dimensions = decodeDimensions(dims)
		out = append(out, e)
	}
	return out, rows.Err()
}
