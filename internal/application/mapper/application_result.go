package mapper

import (
	"jobboard-service/internal/application/common"
	"jobboard-service/internal/domain/entities"
)

// NewApplicationResultFromView builds the list view. resumeBaseURL is the
// download route prefix that the locator is appended to.
func NewApplicationResultFromView(view *entities.ApplicationView, resumeBaseURL string, withApplicant bool) *common.ApplicationResult {
	result := &common.ApplicationResult{
		Id:          view.Id,
		JobID:       view.JobID,
		JobTitle:    view.JobTitle,
		CompanyName: view.CompanyName,
		UserID:      view.UserID,
		Status:      string(view.Status),
		CreatedAt:   FormatTimestamp(view.CreatedAt),
	}
	if withApplicant {
		result.ApplicantEmail = view.ApplicantEmail
	}
	if view.ResumePath != nil {
		url := resumeBaseURL + "/" + *view.ResumePath
		result.ResumeURL = &url
	}
	return result
}

func NewApplicationDetailResultFromView(view *entities.ApplicationView, resumeBaseURL string, withApplicant bool) *common.ApplicationDetailResult {
	return &common.ApplicationDetailResult{
		ApplicationResult: *NewApplicationResultFromView(view, resumeBaseURL, withApplicant),
		CoverLetter:       view.CoverLetter,
	}
}

func NewApplicationStatsResult(counts entities.StatusCounts) *common.ApplicationStatsResult {
	return &common.ApplicationStatsResult{
		Pending:     counts[entities.StatusPending],
		Reviewed:    counts[entities.StatusReviewed],
		Shortlisted: counts[entities.StatusShortlisted],
		Rejected:    counts[entities.StatusRejected],
	}
}
