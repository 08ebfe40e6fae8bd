package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
)

// JobRepository stores the job catalog.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id TEXT PRIMARY KEY,
	company TEXT NOT NULL,
	position TEXT NOT NULL,
	department TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	salary_range TEXT NOT NULL DEFAULT '',
	education TEXT NOT NULL DEFAULT '',
	experience TEXT NOT NULL DEFAULT '',
	skills TEXT NOT NULL DEFAULT '[]',
	description TEXT NOT NULL DEFAULT '',
	requirements TEXT NOT NULL DEFAULT '[]',
	status TEXT NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
`)
	return err
}

const jobColumns = `id, company, position, department, city, salary_range, education, experience, skills, description, requirements, status, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	j = withTimestamps(j)
	_, err := r.pool.Exec(ctx, `
INSERT INTO jobs (`+jobColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`, jobArgs(j)...)
	if err != nil {
		return job.Job{}, err
	}
	return j, nil
}

// CreateBatch inserts the whole batch inside one transaction so a failure
// partway through never leaves a partially imported catalog.
func (r *JobRepository) CreateBatch(ctx context.Context, jobs []job.Job) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i := range jobs {
		jobs[i] = withTimestamps(jobs[i])
		_, err := tx.Exec(ctx, `
INSERT INTO jobs (`+jobColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`, jobArgs(jobs[i])...)
		if err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(jobs), nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC
`, string(job.StatusActive))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func withTimestamps(j job.Job) job.Job {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now
	return j
}

func jobArgs(j job.Job) []any {
	return []any{
		j.ID,
		strings.TrimSpace(j.Company),
		strings.TrimSpace(j.Position),
		j.Department,
		j.City,
		j.SalaryRange,
		j.Education,
		j.Experience,
		encodeStringList(j.Skills),
		j.Description,
		encodeStringList(j.Requirements),
		string(j.Status),
		j.CreatedAt,
		j.UpdatedAt,
	}
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var skills, requirements, status string
	err := row.Scan(
		&j.ID, &j.Company, &j.Position, &j.Department, &j.City,
		&j.SalaryRange, &j.Education, &j.Experience, &skills,
		&j.Description, &requirements, &status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, pgx.ErrNoRows
		}
		return job.Job{}, err
	}
	j.Skills = decodeStringList(skills)
	j.Requirements = decodeStringList(requirements)
	j.Status = job.Status(status)
	return j, nil
}

func collectJobs(rows pgx.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
