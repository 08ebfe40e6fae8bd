package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/profile"
)

// StudentRepository stores parsed candidate profiles.
type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) (*StudentRepository, error) {
	r := &StudentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *StudentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS students (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	education TEXT NOT NULL DEFAULT '',
	major TEXT NOT NULL DEFAULT '',
	graduation_year TEXT NOT NULL DEFAULT '',
	hard_skills TEXT NOT NULL DEFAULT '[]',
	soft_skills TEXT NOT NULL DEFAULT '[]',
	experience TEXT NOT NULL DEFAULT '[]',
	target_position TEXT NOT NULL DEFAULT '',
	target_city TEXT NOT NULL DEFAULT '',
	intention TEXT NOT NULL DEFAULT '',
	raw_content TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

const studentColumns = `id, name, phone, email, education, major, graduation_year, hard_skills, soft_skills, experience, target_position, target_city, intention, raw_content, created_at`

func (r *StudentRepository) Save(ctx context.Context, rec profile.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	p := rec.Profile
	_, err := r.pool.Exec(ctx, `
INSERT INTO students (`+studentColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`,
		rec.ID, p.Name, p.Phone, p.Email, p.Education, p.Major, p.GraduationYear,
		encodeStringList(p.HardSkills), encodeStringList(p.SoftSkills),
		encodeStringList(p.Experience), p.TargetPosition, p.TargetCity,
		p.Intention, rec.RawText, rec.CreatedAt,
	)
	return err
}

func (r *StudentRepository) Get(ctx context.Context, id uuid.UUID) (profile.Record, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

func (r *StudentRepository) List(ctx context.Context, limit, offset int) ([]profile.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+studentColumns+` FROM students ORDER BY created_at DESC LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]profile.Record, 0)
	for rows.Next() {
		rec, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanStudent(row pgx.Row) (profile.Record, error) {
	var rec profile.Record
	var hard, soft, exp string
	err := row.Scan(
		&rec.ID, &rec.Profile.Name, &rec.Profile.Phone, &rec.Profile.Email,
		&rec.Profile.Education, &rec.Profile.Major, &rec.Profile.GraduationYear,
		&hard, &soft, &exp, &rec.Profile.TargetPosition, &rec.Profile.TargetCity,
		&rec.Profile.Intention, &rec.RawText, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Record{}, pgx.ErrNoRows
		}
		return profile.Record{}, err
	}
	rec.Profile.HardSkills = decodeStringList(hard)
	rec.Profile.SoftSkills = decodeStringList(soft)
	rec.Profile.Experience = decodeStringList(exp)
	return rec, nil
}
