package mapper

import (
	"time"

	"jobboard-service/internal/application/common"
	"jobboard-service/internal/domain/entities"
)

const listDescriptionLimit = 200

// TruncateDescription cuts s to 200 characters followed by "..." when longer.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= listDescriptionLimit {
		return s
	}
	return string(runes[:listDescriptionLimit]) + "..."
}

// FormatTimestamp renders t as ISO-8601 in UTC without a zone suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000")
}

func NewJobResultFromEntity(job *entities.Job) *common.JobResult {
	result := newJobResult(job)
	result.Description = TruncateDescription(job.Description)
	return result
}

func NewJobResultsFromEntities(jobs []*entities.Job) []*common.JobResult {
	results := make([]*common.JobResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, NewJobResultFromEntity(job))
	}
	return results
}

func NewJobDetailResultFromEntity(job *entities.Job) *common.JobDetailResult {
	return &common.JobDetailResult{
		JobResult:      *newJobResult(job),
		ApplicationURL: job.ApplicationURL,
		EmployerID:     job.EmployerID,
	}
}

func newJobResult(job *entities.Job) *common.JobResult {
	return &common.JobResult{
		Id:              job.Id,
		Title:           job.Title,
		CompanyName:     job.CompanyName,
		Location:        job.Location,
		IsRemote:        job.IsRemote,
		JobType:         string(job.JobType),
		Category:        job.Category,
		ExperienceLevel: string(job.ExperienceLevel),
		MinSalary:       job.SalaryMin,
		MaxSalary:       job.SalaryMax,
		Description:     job.Description,
		IsFeatured:      job.IsFeatured,
		CreatedAt:       FormatTimestamp(job.CreatedAt),
		Skills:          job.SkillNames(),
	}
}
