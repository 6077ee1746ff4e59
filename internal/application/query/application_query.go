package query

import (
	"jobboard-service/internal/application/common"
	"jobboard-service/internal/domain/entities"
)

type ListApplicationsQuery struct {
	Caller  entities.Caller
	Status  string
	Page    int
	PerPage int
}

type ApplicationListQueryResult struct {
	Applications []*common.ApplicationResult `json:"applications"`
	Total        int64                       `json:"total"`
	Pages        int                         `json:"pages"`
	CurrentPage  int                         `json:"current_page"`
}

type ApplicationQueryResult struct {
	Application *common.ApplicationDetailResult `json:"application"`
}

// StatsQueryResult carries the employer fields or the seeker fields,
// never both.
type StatsQueryResult struct {
	ActiveJobs        *int64                         `json:"active_jobs,omitempty"`
	NewApplications   *int64                         `json:"new_applications,omitempty"`
	TotalApplications *int64                         `json:"total_applications,omitempty"`
	ApplicationStats  *common.ApplicationStatsResult `json:"application_stats"`
}
