package job

import (
	"context"
	"encoding/json"
	"time"
)

// Status of a catalog posting.
type Status string

const (
	StatusActive Status = "active"
	StatusDraft  Status = "draft"
	StatusClosed Status = "closed"
)

// Job is a catalog posting. ID is the join key between the catalog and match
// results: a match result whose id does not resolve here is discarded.
type Job struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Department   string    `json:"department,omitempty"`
	City         string    `json:"city"`
	SalaryRange  string    `json:"salaryRange"`
	Education    string    `json:"education"`
	Experience   string    `json:"experience"`
	Skills       []string  `json:"skills"`
	Description  string    `json:"description"`
	Requirements Strings   `json:"requirements"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Strings tolerates both a JSON array and a single free-text string, which is
// how requirements arrive from different call sites.
type Strings []string

func (s *Strings) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*s = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*s = []string{}
		return nil
	}
	*s = []string{one}
	return nil
}

// Repository is the persistence port for the job catalog.
type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	CreateBatch(ctx context.Context, jobs []Job) (int, error)
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	ListActive(ctx context.Context) ([]Job, error)
	Delete(ctx context.Context, id string) error
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
