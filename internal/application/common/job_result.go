package common

// JobResult is the list view of a job. Description is truncated.
type JobResult struct {
	Id              uint     `json:"id"`
	Title           string   `json:"title"`
	CompanyName     string   `json:"company_name"`
	Location        string   `json:"location"`
	IsRemote        bool     `json:"is_remote"`
	JobType         string   `json:"job_type"`
	Category        string   `json:"category"`
	ExperienceLevel string   `json:"experience_level"`
	MinSalary       *int64   `json:"min_salary"`
	MaxSalary       *int64   `json:"max_salary"`
	Description     string   `json:"description"`
	IsFeatured      bool     `json:"is_featured"`
	CreatedAt       string   `json:"created_at"`
	Skills          []string `json:"skills"`
}

// JobDetailResult is the full view of a single job.
type JobDetailResult struct {
	JobResult
	ApplicationURL *string `json:"application_url"`
	EmployerID     uint    `json:"employer_id"`
}
