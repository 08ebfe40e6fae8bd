package match

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
)

// Recognized score dimensions. The overall score is authoritative; dimension
// scores are informational and are never re-derived from one another.
var Dimensions = []string{"skills", "education", "experience", "location", "salary"}

// Result is one per-job score record, either model-produced or from the
// deterministic fallback. Score and every dimension are clamped to [0,100].
type Result struct {
	JobID          string         `json:"jobId"`
	Score          int            `json:"score"`
	Dimensions     map[string]int `json:"dimensions,omitempty"`
	Recommendation string         `json:"recommendation"`
	GapAnalysis    string         `json:"gapAnalysis"`
}

// Matched is a reconciled result: authoritative catalog fields merged with
// the score record. Catalog data always wins on collision; the model never
// overrides company, city or any other posting field.
type Matched struct {
	job.Job
	Score          int            `json:"matchScore"`
	Dimensions     map[string]int `json:"dimensions,omitempty"`
	Recommendation string         `json:"recommendation"`
	GapAnalysis    string         `json:"gapAnalysis"`
}

// Record is a persisted match row.
type Record struct {
	ID             uuid.UUID      `json:"id"`
	StudentID      uuid.UUID      `json:"studentId"`
	JobID          string         `json:"jobId"`
	Score          int            `json:"score"`
	Dimensions     map[string]int `json:"dimensions,omitempty"`
	Recommendation string         `json:"recommendation"`
	GapAnalysis    string         `json:"gapAnalysis"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// HistoryEntry is a Record joined with student and job display fields.
type HistoryEntry struct {
	Record
	StudentName string `json:"studentName"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	City        string `json:"city"`
	SalaryRange string `json:"salaryRange"`
}

// Repository is the persistence port for match results.
type Repository interface {
	SaveBatch(ctx context.Context, studentID uuid.UUID, results []Matched) error
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]HistoryEntry, error)
	ListAll(ctx context.Context, limit, offset int) ([]HistoryEntry, error)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
