package job

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UseCase lists the catalog scenarios exposed to the HTTP layer.
type UseCase interface {
	Create(ctx context.Context, j Job) (Job, error)
	CreateBatch(ctx context.Context, jobs []Job) (int, error)
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	ListActive(ctx context.Context) ([]Job, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, j Job) (Job, error) {
	var err error
	if j, err = prepare(j); err != nil {
		return Job{}, err
	}
	return s.repo.Create(ctx, j)
}

func (s *service) CreateBatch(ctx context.Context, jobs []Job) (int, error) {
	if len(jobs) == 0 {
		return 0, ErrValidation("岗位列表为空")
	}
	prepared := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		p, err := prepare(j)
		if err != nil {
			return 0, err
		}
		prepared = append(prepared, p)
	}
	return s.repo.CreateBatch(ctx, prepared)
}

func (s *service) GetByID(ctx context.Context, id string) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) ListActive(ctx context.Context) ([]Job, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// prepare validates required fields and fills defaults so rows never carry
// nil lists or an empty status.
func prepare(j Job) (Job, error) {
	j.Company = strings.TrimSpace(j.Company)
	j.Position = strings.TrimSpace(j.Position)
	if j.Company == "" || j.Position == "" {
		return Job{}, ErrValidation("公司和岗位名称不能为空")
	}
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	if j.Requirements == nil {
		j.Requirements = Strings{}
	}
	switch j.Status {
	case StatusActive, StatusDraft, StatusClosed:
	default:
		j.Status = StatusActive
	}
	return j, nil
}
