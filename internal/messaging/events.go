package messaging

import "time"

const (
	SubjectJobCreated               = "jobs.created"
	SubjectJobUpdated               = "jobs.updated"
	SubjectJobDeleted               = "jobs.deleted"
	SubjectApplicationSubmitted     = "applications.submitted"
	SubjectApplicationStatusChanged = "applications.status_changed"
)

// Envelope wraps every published payload.
type Envelope struct {
	Subject    string      `json:"subject"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

type JobEvent struct {
	JobID      uint   `json:"job_id"`
	EmployerID uint   `json:"employer_id"`
	Title      string `json:"title,omitempty"`
	IsFeatured bool   `json:"is_featured"`
}

type ApplicationEvent struct {
	ApplicationID  uint   `json:"application_id"`
	JobID          uint   `json:"job_id"`
	ApplicantID    uint   `json:"applicant_id"`
	EmployerID     uint   `json:"employer_id,omitempty"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
}
