package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-service/internal/domain"
)

func newTestJob() *Job {
	return NewJob(7, "Backend Engineer", "Acme", "Berlin", JobTypeFullTime, "Backend Development", ExperienceMid, "Build APIs")
}

func TestDeriveRemote(t *testing.T) {
	cases := map[string]bool{
		"Remote":                true,
		"Remote - US":           true,
		"Berlin (remote OK)":    true,
		"REMOTE":                true,
		"Berlin":                false,
		"":                      false,
		"Hybrid, Paris":         false,
		"fully-REMOTE-friendly": true,
	}
	for location, want := range cases {
		assert.Equal(t, want, DeriveRemote(location), location)
	}
}

func TestNewValidatedJob(t *testing.T) {
	job := newTestJob()
	vj, err := NewValidatedJob(job)
	require.NoError(t, err)
	assert.False(t, vj.IsRemote)

	job = newTestJob()
	job.JobType = "Freelance"
	_, err = NewValidatedJob(job)
	assert.True(t, domain.Is(err, domain.KindValidation))

	job = newTestJob()
	job.ExperienceLevel = "Principal"
	_, err = NewValidatedJob(job)
	assert.True(t, domain.Is(err, domain.KindValidation))

	job = newTestJob()
	lo, hi := int64(90000), int64(50000)
	job.SalaryMin, job.SalaryMax = &lo, &hi
	_, err = NewValidatedJob(job)
	assert.True(t, domain.Is(err, domain.KindValidation))

	job = newTestJob()
	job.Title = ""
	_, err = NewValidatedJob(job)
	assert.True(t, domain.Is(err, domain.KindValidation))
}

func TestApplyPatch(t *testing.T) {
	vj, err := NewValidatedJob(newTestJob())
	require.NoError(t, err)
	salary := int64(60000)
	vj.SalaryMin = &salary

	err = vj.ApplyPatch(JobPatch{
		Location:  PatchOf("Remote, EU"),
		SalaryMin: Patch[int64]{Set: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "Remote, EU", vj.Location)
	assert.True(t, vj.IsRemote)
	assert.Nil(t, vj.SalaryMin)
	assert.Equal(t, "Backend Engineer", vj.Title)
	assert.False(t, vj.IsFeatured)

	require.NoError(t, vj.ApplyPatch(JobPatch{Featured: PatchOf(true)}))
	assert.True(t, vj.IsFeatured)
	assert.True(t, vj.IsRemote)
}

func TestApplyPatchRejectsNullOnRequiredField(t *testing.T) {
	vj, err := NewValidatedJob(newTestJob())
	require.NoError(t, err)

	err = vj.ApplyPatch(JobPatch{Title: Patch[string]{Set: true}})
	assert.True(t, domain.Is(err, domain.KindValidation))
	assert.Equal(t, "Backend Engineer", vj.Title)
}

func TestApplyPatchRevalidates(t *testing.T) {
	vj, err := NewValidatedJob(newTestJob())
	require.NoError(t, err)

	err = vj.ApplyPatch(JobPatch{JobType: PatchOf(JobType("Gig"))})
	assert.True(t, domain.Is(err, domain.KindValidation))
}

func TestJobLengthLimits(t *testing.T) {
	long := func(n int) string { return strings.Repeat("a", n) }

	job := newTestJob()
	job.Title = strings.Repeat("é", MaxTitleLen)
	_, err := NewValidatedJob(job)
	require.NoError(t, err, "limit counts characters, not bytes")

	cases := map[string]func(*Job){
		"job_title":       func(j *Job) { j.Title = long(MaxTitleLen + 1) },
		"company_name":    func(j *Job) { j.CompanyName = long(MaxCompanyNameLen + 1) },
		"location":        func(j *Job) { j.Location = long(MaxLocationLen + 1) },
		"category":        func(j *Job) { j.Category = long(MaxCategoryLen + 1) },
		"application_url": func(j *Job) { u := "https://x.io/" + long(MaxApplicationURLLen); j.ApplicationURL = &u },
	}
	for field, mutate := range cases {
		job := newTestJob()
		mutate(job)
		_, err := NewValidatedJob(job)
		assert.True(t, domain.Is(err, domain.KindValidation), field)
		assert.ErrorContains(t, err, field)
	}
}

func TestApplyPatchEnforcesLengthLimits(t *testing.T) {
	patches := map[string]JobPatch{
		"job_title":       {Title: PatchOf(strings.Repeat("x", 10000))},
		"company_name":    {CompanyName: PatchOf(strings.Repeat("x", MaxCompanyNameLen+1))},
		"location":        {Location: PatchOf(strings.Repeat("x", MaxLocationLen+1))},
		"category":        {Category: PatchOf(strings.Repeat("x", MaxCategoryLen+1))},
		"application_url": {ApplicationURL: PatchOf(strings.Repeat("x", MaxApplicationURLLen+1))},
	}
	for field, patch := range patches {
		vj, err := NewValidatedJob(newTestJob())
		require.NoError(t, err)
		err = vj.ApplyPatch(patch)
		assert.True(t, domain.Is(err, domain.KindValidation), field)
		assert.ErrorContains(t, err, field)
	}
}
