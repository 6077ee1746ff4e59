package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
	"jobboard-service/internal/infrastructure/db/sqlstore"
	"jobboard-service/internal/infrastructure/db/sqlstore/sqlstoretest"
)

func newStore(t *testing.T) repositories.Store {
	return sqlstore.NewStore(sqlstoretest.NewDB(t))
}

func createUser(t *testing.T, store repositories.Store, email string, role entities.Role) *entities.User {
	t.Helper()
	vu, err := entities.NewValidatedUser(entities.NewUser(email, "password", role, nil))
	require.NoError(t, err)
	user, err := store.Users().Create(context.Background(), vu)
	require.NoError(t, err)
	return user
}

type jobOption func(*entities.Job)

func withLocation(loc string) jobOption {
	return func(j *entities.Job) { j.SetLocation(loc) }
}

func withDescription(d string) jobOption {
	return func(j *entities.Job) { j.Description = d }
}

func withCompany(c string) jobOption {
	return func(j *entities.Job) { j.CompanyName = c }
}

func withCategory(c string) jobOption {
	return func(j *entities.Job) { j.Category = c }
}

func withType(jt entities.JobType) jobOption {
	return func(j *entities.Job) { j.JobType = jt }
}

func withExperience(e entities.ExperienceLevel) jobOption {
	return func(j *entities.Job) { j.ExperienceLevel = e }
}

func withSkills(skills ...entities.Skill) jobOption {
	return func(j *entities.Job) { j.Skills = skills }
}

func withCreatedAt(ts time.Time) jobOption {
	return func(j *entities.Job) { j.CreatedAt = ts }
}

func featured() jobOption {
	return func(j *entities.Job) { j.IsFeatured = true }
}

func createJob(t *testing.T, store repositories.Store, employerID uint, title string, opts ...jobOption) *entities.Job {
	t.Helper()
	job := entities.NewJob(employerID, title, "Acme", "Berlin", entities.JobTypeFullTime, "Backend Development", entities.ExperienceMid, "Build things")
	for _, opt := range opts {
		opt(job)
	}
	vj, err := entities.NewValidatedJob(job)
	require.NoError(t, err)
	created, err := store.Jobs().Create(context.Background(), vj)
	require.NoError(t, err)
	return created
}

func titles(jobs []*entities.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}
