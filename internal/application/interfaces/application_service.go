package interfaces

import (
	"context"
	"io"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/query"
	"jobboard-service/internal/domain/entities"
)

type ApplicationService interface {
	Apply(ctx context.Context, applyCommand *command.ApplyCommand) (*command.ApplyCommandResult, error)
	ListApplications(ctx context.Context, listQuery *query.ListApplicationsQuery) (*query.ApplicationListQueryResult, error)
	GetApplication(ctx context.Context, caller entities.Caller, id uint) (*query.ApplicationQueryResult, error)
	SetStatus(ctx context.Context, statusCommand *command.SetApplicationStatusCommand) (*command.MessageResult, error)
	OpenResume(ctx context.Context, caller entities.Caller, locator string) (io.ReadCloser, error)
}

type DashboardService interface {
	Stats(ctx context.Context, caller entities.Caller) (*query.StatsQueryResult, error)
}
