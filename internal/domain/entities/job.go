package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"jobboard-service/internal/domain"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

var jobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

func ParseJobType(s string) (JobType, error) {
	for _, t := range jobTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", domain.Validationf("invalid job_type %q", s)
}

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "Entry"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
)

var experienceLevels = []ExperienceLevel{ExperienceEntry, ExperienceMid, ExperienceSenior}

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	for _, l := range experienceLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", domain.Validationf("invalid experience level %q", s)
}

type Job struct {
	Id              uint
	CreatedAt       time.Time
	Title           string
	CompanyName     string
	Location        string
	IsRemote        bool
	JobType         JobType
	Category        string
	ExperienceLevel ExperienceLevel
	SalaryMin       *int64
	SalaryMax       *int64
	Description     string
	ApplicationURL  *string
	IsFeatured      bool
	EmployerID      uint
	Skills          []Skill
}

// DeriveRemote reports whether a free-text location advertises remote work.
func DeriveRemote(location string) bool {
	return strings.Contains(strings.ToLower(location), "remote")
}

func NewJob(employerID uint, title, companyName, location string, jobType JobType, category string, experience ExperienceLevel, description string) *Job {
	job := &Job{
		CreatedAt:       time.Now().UTC(),
		Title:           strings.TrimSpace(title),
		CompanyName:     strings.TrimSpace(companyName),
		JobType:         jobType,
		Category:        category,
		ExperienceLevel: experience,
		Description:     description,
		EmployerID:      employerID,
	}
	job.SetLocation(location)
	return job
}

func (j *Job) SetLocation(location string) {
	j.Location = strings.TrimSpace(location)
	j.IsRemote = DeriveRemote(location)
}

func (j *Job) SkillNames() []string {
	names := make([]string, 0, len(j.Skills))
	for _, s := range j.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Field limits, in characters, shared by create and update.
const (
	MaxTitleLen          = 120
	MaxCompanyNameLen    = 120
	MaxLocationLen       = 120
	MaxCategoryLen       = 50
	MaxApplicationURLLen = 250
)

func checkLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return domain.Validationf("%s must be at most %d characters", field, max)
	}
	return nil
}

func (j *Job) validate() error {
	if j.Title == "" {
		return domain.Validation("job_title must not be empty")
	}
	if j.CompanyName == "" {
		return domain.Validation("company_name must not be empty")
	}
	if j.Location == "" {
		return domain.Validation("location must not be empty")
	}
	if j.Category == "" {
		return domain.Validation("category must not be empty")
	}
	if strings.TrimSpace(j.Description) == "" {
		return domain.Validation("description must not be empty")
	}
	if err := checkLen("job_title", j.Title, MaxTitleLen); err != nil {
		return err
	}
	if err := checkLen("company_name", j.CompanyName, MaxCompanyNameLen); err != nil {
		return err
	}
	if err := checkLen("location", j.Location, MaxLocationLen); err != nil {
		return err
	}
	if err := checkLen("category", j.Category, MaxCategoryLen); err != nil {
		return err
	}
	if j.ApplicationURL != nil {
		if err := checkLen("application_url", *j.ApplicationURL, MaxApplicationURLLen); err != nil {
			return err
		}
	}
	if _, err := ParseJobType(string(j.JobType)); err != nil {
		return err
	}
	if _, err := ParseExperienceLevel(string(j.ExperienceLevel)); err != nil {
		return err
	}
	if j.SalaryMin != nil && *j.SalaryMin < 0 {
		return domain.Validation("min_salary must not be negative")
	}
	if j.SalaryMax != nil && *j.SalaryMax < 0 {
		return domain.Validation("max_salary must not be negative")
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return domain.Validation("min_salary must not exceed max_salary")
	}
	if j.EmployerID == 0 {
		return domain.Validation("job must have an owner")
	}
	return nil
}

// Patch is one field of a partial update. Set marks the key as present;
// a nil Value with Set means an explicit null.
type Patch[T any] struct {
	Set   bool
	Value *T
}

func PatchOf[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Value: &v}
}

func (p Patch[T]) require(field string) (T, error) {
	var zero T
	if p.Value == nil {
		return zero, domain.Validationf("%s must not be null", field)
	}
	return *p.Value, nil
}

// JobPatch carries the fields of a job update. Featured is already
// resolved from the submitted plan.
type JobPatch struct {
	Title           Patch[string]
	CompanyName     Patch[string]
	Location        Patch[string]
	JobType         Patch[JobType]
	Category        Patch[string]
	ExperienceLevel Patch[ExperienceLevel]
	SalaryMin       Patch[int64]
	SalaryMax       Patch[int64]
	Description     Patch[string]
	ApplicationURL  Patch[string]
	Featured        Patch[bool]
}

// ApplyPatch mutates only the fields present in p. Callers re-validate
// through NewValidatedJob afterwards.
func (j *Job) ApplyPatch(p JobPatch) error {
	if p.Title.Set {
		v, err := p.Title.require("job_title")
		if err != nil {
			return err
		}
		j.Title = strings.TrimSpace(v)
	}
	if p.CompanyName.Set {
		v, err := p.CompanyName.require("company_name")
		if err != nil {
			return err
		}
		j.CompanyName = strings.TrimSpace(v)
	}
	if p.Location.Set {
		v, err := p.Location.require("location")
		if err != nil {
			return err
		}
		j.SetLocation(v)
	}
	if p.JobType.Set {
		v, err := p.JobType.require("job_type")
		if err != nil {
			return err
		}
		j.JobType = v
	}
	if p.Category.Set {
		v, err := p.Category.require("category")
		if err != nil {
			return err
		}
		j.Category = v
	}
	if p.ExperienceLevel.Set {
		v, err := p.ExperienceLevel.require("experience")
		if err != nil {
			return err
		}
		j.ExperienceLevel = v
	}
	if p.Description.Set {
		v, err := p.Description.require("description")
		if err != nil {
			return err
		}
		j.Description = v
	}
	if p.Featured.Set {
		v, err := p.Featured.require("plan")
		if err != nil {
			return err
		}
		j.IsFeatured = v
	}
	if p.SalaryMin.Set {
		j.SalaryMin = p.SalaryMin.Value
	}
	if p.SalaryMax.Set {
		j.SalaryMax = p.SalaryMax.Value
	}
	if p.ApplicationURL.Set {
		j.ApplicationURL = p.ApplicationURL.Value
	}
	return nil
}
