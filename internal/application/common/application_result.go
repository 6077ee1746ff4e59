package common

type ApplicationResult struct {
	Id             uint    `json:"id"`
	JobID          uint    `json:"job_id"`
	JobTitle       string  `json:"job_title"`
	CompanyName    string  `json:"company_name"`
	UserID         uint    `json:"user_id"`
	ApplicantEmail string  `json:"applicant_email,omitempty"`
	Status         string  `json:"status"`
	ResumeURL      *string `json:"resume_url"`
	CreatedAt      string  `json:"created_at"`
}

type ApplicationDetailResult struct {
	ApplicationResult
	CoverLetter *string `json:"cover_letter"`
}

type ApplicationStatsResult struct {
	Pending     int64 `json:"pending"`
	Reviewed    int64 `json:"reviewed"`
	Shortlisted int64 `json:"shortlisted"`
	Rejected    int64 `json:"rejected"`
}
