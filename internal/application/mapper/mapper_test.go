package mapper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobboard-service/internal/domain/entities"
)

func TestTruncateDescription(t *testing.T) {
	short := strings.Repeat("a", 200)
	assert.Equal(t, short, TruncateDescription(short))

	long := strings.Repeat("é", 201)
	got := TruncateDescription(long)
	assert.Equal(t, strings.Repeat("é", 200)+"...", got)
}

func TestJobViews(t *testing.T) {
	url := "https://acme.io/apply"
	job := &entities.Job{
		Id:             3,
		Title:          "Backend",
		Description:    strings.Repeat("x", 250),
		ApplicationURL: &url,
		EmployerID:     9,
		CreatedAt:      time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC),
		Skills:         []entities.Skill{{Id: 1, Name: "go"}},
	}

	list := NewJobResultFromEntity(job)
	assert.Len(t, list.Description, 203)
	assert.Equal(t, []string{"go"}, list.Skills)
	assert.Equal(t, "2024-02-03T04:05:06.000000", list.CreatedAt)

	detail := NewJobDetailResultFromEntity(job)
	assert.Len(t, detail.Description, 250)
	assert.Equal(t, uint(9), detail.EmployerID)
	assert.Equal(t, &url, detail.ApplicationURL)
}

func TestApplicationViews(t *testing.T) {
	resume := "abc_cv.pdf"
	letter := "hello"
	view := &entities.ApplicationView{
		Application: entities.Application{
			Id:          1,
			JobID:       2,
			UserID:      3,
			ResumePath:  &resume,
			CoverLetter: &letter,
			Status:      entities.StatusReviewed,
		},
		JobTitle:       "Backend",
		ApplicantEmail: "s@example.com",
	}

	list := NewApplicationResultFromView(view, "/api/uploads/resumes", false)
	assert.Equal(t, "/api/uploads/resumes/abc_cv.pdf", *list.ResumeURL)
	assert.Empty(t, list.ApplicantEmail)
	assert.Equal(t, "reviewed", list.Status)

	detail := NewApplicationDetailResultFromView(view, "/api/uploads/resumes", true)
	assert.Equal(t, "s@example.com", detail.ApplicantEmail)
	assert.Equal(t, &letter, detail.CoverLetter)
}
