package repositories

import (
	"context"

	"jobboard-service/internal/domain/entities"
)

// JobSearch holds the optional, AND-combined search filters. Empty fields
// do not constrain the result.
type JobSearch struct {
	Keyword          string
	Location         string
	Category         string
	JobTypes         []string
	ExperienceLevels []string
	SkillIDs         []uint
}

type JobRepository interface {
	Create(ctx context.Context, job *entities.ValidatedJob) (*entities.Job, error)
	Update(ctx context.Context, job *entities.ValidatedJob) (*entities.Job, error)
	ReplaceSkills(ctx context.Context, jobID uint, skills []entities.Skill) error
	Delete(ctx context.Context, id uint) error
	FindById(ctx context.Context, id uint) (*entities.Job, error)
	Search(ctx context.Context, search JobSearch, page Page) ([]*entities.Job, int64, error)
	Featured(ctx context.Context, limit int) ([]*entities.Job, error)
	CountByEmployer(ctx context.Context, employerID uint) (int64, error)
}
