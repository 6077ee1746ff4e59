package interfaces

import (
	"context"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/query"
)

type JobService interface {
	CreateJob(ctx context.Context, createCommand *command.CreateJobCommand) (*command.CreateJobCommandResult, error)
	UpdateJob(ctx context.Context, updateCommand *command.UpdateJobCommand) (*command.MessageResult, error)
	DeleteJob(ctx context.Context, deleteCommand *command.DeleteJobCommand) (*command.MessageResult, error)
	GetJob(ctx context.Context, id uint) (*query.JobQueryResult, error)
	SearchJobs(ctx context.Context, searchQuery *query.SearchJobsQuery) (*query.JobListQueryResult, error)
	FeaturedJobs(ctx context.Context) (*query.FeaturedJobsQueryResult, error)
	Categories(ctx context.Context) (*query.CategoriesQueryResult, error)
	Skills(ctx context.Context) (*query.SkillsQueryResult, error)
}
