package entities

import (
	"strings"
	"time"

	"jobboard-service/internal/domain"
)

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every status in display order.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for _, st := range ApplicationStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", domain.Validationf("Invalid status %q", s)
}

type Application struct {
	Id          uint
	CreatedAt   time.Time
	JobID       uint
	UserID      uint
	ResumePath  *string
	CoverLetter *string
	Status      ApplicationStatus
}

func NewApplication(jobID, userID uint, resumePath, coverLetter *string) *Application {
	if coverLetter != nil && strings.TrimSpace(*coverLetter) == "" {
		coverLetter = nil
	}
	return &Application{
		CreatedAt:   time.Now().UTC(),
		JobID:       jobID,
		UserID:      userID,
		ResumePath:  resumePath,
		CoverLetter: coverLetter,
		Status:      StatusPending,
	}
}

// ApplicationView is an application joined with the job and applicant
// columns needed for listings and authorization.
type ApplicationView struct {
	Application
	JobTitle       string
	CompanyName    string
	EmployerID     uint
	ApplicantEmail string
}

// StatusCounts holds one count per application status.
type StatusCounts map[ApplicationStatus]int64

func (c StatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}
