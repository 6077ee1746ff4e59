package command

import "jobboard-service/internal/domain/entities"

type CreateJobCommand struct {
	Caller          entities.Caller `json:"-"`
	Title           string          `json:"job_title" validate:"required,max=120"`
	CompanyName     *string         `json:"company_name,omitempty" validate:"omitempty,max=120"`
	Location        string          `json:"location" validate:"required,max=120"`
	JobType         string          `json:"job_type" validate:"required"`
	Category        string          `json:"category" validate:"required,max=50"`
	ExperienceLevel string          `json:"experience" validate:"required"`
	MinSalary       *int64          `json:"min_salary,omitempty"`
	MaxSalary       *int64          `json:"max_salary,omitempty"`
	Description     string          `json:"description" validate:"required"`
	ApplicationURL  *string         `json:"application_url,omitempty" validate:"omitempty,max=250"`
	Skills          string          `json:"skills"`
	Plan            string          `json:"plan"`
}

type CreateJobCommandResult struct {
	Message string `json:"message"`
	JobID   uint   `json:"job_id"`
}

// UpdateJobCommand is a partial update: only keys present in the request
// body are applied.
type UpdateJobCommand struct {
	Caller          entities.Caller  `json:"-"`
	JobID           uint             `json:"-"`
	Title           Optional[string] `json:"job_title"`
	CompanyName     Optional[string] `json:"company_name"`
	Location        Optional[string] `json:"location"`
	JobType         Optional[string] `json:"job_type"`
	Category        Optional[string] `json:"category"`
	ExperienceLevel Optional[string] `json:"experience"`
	MinSalary       Optional[int64]  `json:"min_salary"`
	MaxSalary       Optional[int64]  `json:"max_salary"`
	Description     Optional[string] `json:"description"`
	ApplicationURL  Optional[string] `json:"application_url"`
	Skills          Optional[string] `json:"skills"`
	Plan            Optional[string] `json:"plan"`
}

type DeleteJobCommand struct {
	Caller entities.Caller
	JobID  uint
}

type MessageResult struct {
	Message string `json:"message"`
}
