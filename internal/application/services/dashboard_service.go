package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"jobboard-service/internal/application/interfaces"
	"jobboard-service/internal/application/mapper"
	"jobboard-service/internal/application/query"
	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
)

// DashboardService derives per-role counters at request time.
type DashboardService struct {
	store repositories.Store
	log   logrus.FieldLogger
}

func NewDashboardService(store repositories.Store, log logrus.FieldLogger) interfaces.DashboardService {
	return &DashboardService{store: store, log: log}
}

func (s *DashboardService) Stats(ctx context.Context, caller entities.Caller) (*query.StatsQueryResult, error) {
	if !caller.IsEmployer() {
		counts, err := s.store.Applications().CountByStatus(ctx, repositories.ApplicationFilter{ApplicantID: caller.UserID})
		if err != nil {
			return nil, err
		}
		total := counts.Total()
		return &query.StatsQueryResult{
			TotalApplications: &total,
			ApplicationStats:  mapper.NewApplicationStatsResult(counts),
		}, nil
	}

	var (
		activeJobs int64
		counts     entities.StatusCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		activeJobs, err = s.store.Jobs().CountByEmployer(gctx, caller.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.store.Applications().CountByStatus(gctx, repositories.ApplicationFilter{EmployerID: caller.UserID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	newApplications := counts[entities.StatusPending]
	return &query.StatsQueryResult{
		ActiveJobs:       &activeJobs,
		NewApplications:  &newApplications,
		ApplicationStats: mapper.NewApplicationStatsResult(counts),
	}, nil
}
