package query

import "jobboard-service/internal/application/common"

type SearchJobsQuery struct {
	Keyword          string
	Location         string
	Category         string
	JobTypes         []string
	ExperienceLevels []string
	Skills           []string
	Page             int
	PerPage          int
}

type JobListQueryResult struct {
	Jobs        []*common.JobResult `json:"jobs"`
	Total       int64               `json:"total"`
	Pages       int                 `json:"pages"`
	CurrentPage int                 `json:"current_page"`
}

type FeaturedJobsQueryResult struct {
	FeaturedJobs []*common.JobResult `json:"featured_jobs"`
}

type JobQueryResult struct {
	Job *common.JobDetailResult `json:"job"`
}

type CategoriesQueryResult struct {
	Categories []string `json:"categories"`
}

type SkillsQueryResult struct {
	Skills []string `json:"skills"`
}
