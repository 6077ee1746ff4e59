package repositories

import (
	"context"

	"jobboard-service/internal/domain/entities"
)

// ApplicationFilter scopes listings and counts. EmployerID selects
// applications on jobs the employer owns; ApplicantID selects an applicant's own.
type ApplicationFilter struct {
	EmployerID  uint
	ApplicantID uint
	Status      string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.Application) (*entities.Application, error)
	FindById(ctx context.Context, id uint) (*entities.ApplicationView, error)
	FindByJobAndUser(ctx context.Context, jobID, userID uint) (*entities.Application, error)
	FindByResumePath(ctx context.Context, locator string) (*entities.ApplicationView, error)
	List(ctx context.Context, filter ApplicationFilter, page Page) ([]*entities.ApplicationView, int64, error)
	UpdateStatus(ctx context.Context, id uint, status entities.ApplicationStatus) error
	// DeleteByJob removes every application of a job and returns the resume
	// locators they referenced.
	DeleteByJob(ctx context.Context, jobID uint) ([]string, error)
	CountByStatus(ctx context.Context, filter ApplicationFilter) (entities.StatusCounts, error)
}
