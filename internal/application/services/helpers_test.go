package services_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/interfaces"
	"jobboard-service/internal/application/services"
	"jobboard-service/internal/config"
	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
	"jobboard-service/internal/infrastructure"
	"jobboard-service/internal/infrastructure/db/sqlstore"
	"jobboard-service/internal/infrastructure/db/sqlstore/sqlstoretest"
)

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads []interface{}
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func (p *recordingPublisher) Subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.subjects...)
}

type memoryProfileCache struct {
	mu       sync.Mutex
	profiles map[uint]entities.Caller
}

func (c *memoryProfileCache) GetProfile(_ context.Context, userID uint) (*entities.Caller, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	caller, ok := c.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &caller, nil
}

func (c *memoryProfileCache) SetProfile(_ context.Context, caller entities.Caller, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles[caller.UserID] = caller
	return nil
}

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }

type testEnv struct {
	store     repositories.Store
	tokens    *infrastructure.JWTService
	cache     *memoryProfileCache
	events    *recordingPublisher
	resumeDir string
	users     interfaces.UserService
	jobs      interfaces.JobService
	apps      interfaces.ApplicationService
	dashboard interfaces.DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := sqlstore.NewStore(sqlstoretest.NewDB(t))
	log := sqlstoretest.Logger()
	resumeDir := t.TempDir()
	resumes, err := infrastructure.NewResumeStore(resumeDir)
	require.NoError(t, err)

	env := &testEnv{
		store:     store,
		tokens:    infrastructure.NewJWTService("test-secret", time.Hour),
		cache:     &memoryProfileCache{profiles: map[uint]entities.Caller{}},
		events:    &recordingPublisher{},
		resumeDir: resumeDir,
	}
	catalog := config.DefaultCatalog()
	env.users = services.NewUserService(store, env.tokens, env.cache, allowAll{}, time.Minute, log)
	env.jobs = services.NewJobService(store, resumes, env.events, catalog, log)
	env.apps = services.NewApplicationService(store, resumes, env.events, catalog, "/api/uploads/resumes", log)
	env.dashboard = services.NewDashboardService(store, log)
	return env
}

func (e *testEnv) register(t *testing.T, email string, employer bool, company string) entities.Caller {
	t.Helper()
	cmd := &command.RegisterUserCommand{Email: email, Password: "password123", IsEmployer: employer}
	if company != "" {
		cmd.CompanyName = &company
	}
	res, err := e.users.Register(context.Background(), cmd)
	require.NoError(t, err)

	user, err := e.store.Users().FindById(context.Background(), res.UserID)
	require.NoError(t, err)
	require.NotNil(t, user)
	return entities.NewCallerFromUser(user)
}

func (e *testEnv) employer(t *testing.T, email string) entities.Caller {
	return e.register(t, email, true, "Acme")
}

func (e *testEnv) seeker(t *testing.T, email string) entities.Caller {
	return e.register(t, email, false, "")
}

func newJobCommand(caller entities.Caller, title string) *command.CreateJobCommand {
	return &command.CreateJobCommand{
		Caller:          caller,
		Title:           title,
		Location:        "Berlin",
		JobType:         "Full-time",
		Category:        "Backend Development",
		ExperienceLevel: "Mid",
		Description:     "Build and run services",
	}
}

func (e *testEnv) postJob(t *testing.T, caller entities.Caller, title string, mutate ...func(*command.CreateJobCommand)) uint {
	t.Helper()
	cmd := newJobCommand(caller, title)
	for _, m := range mutate {
		m(cmd)
	}
	res, err := e.jobs.CreateJob(context.Background(), cmd)
	require.NoError(t, err)
	return res.JobID
}

func (e *testEnv) apply(t *testing.T, caller entities.Caller, jobID uint) uint {
	t.Helper()
	res, err := e.apps.Apply(context.Background(), &command.ApplyCommand{Caller: caller, JobID: jobID})
	require.NoError(t, err)
	return res.ApplicationID
}

func (e *testEnv) applyWithResume(t *testing.T, caller entities.Caller, jobID uint, filename, body string) uint {
	t.Helper()
	res, err := e.apps.Apply(context.Background(), &command.ApplyCommand{
		Caller: caller,
		JobID:  jobID,
		Resume: &command.ResumeUpload{Filename: filename, Content: strings.NewReader(body)},
	})
	require.NoError(t, err)
	return res.ApplicationID
}

func (e *testEnv) resumePath(locator string) string {
	return filepath.Join(e.resumeDir, locator)
}

func present[T any](v T) command.Optional[T] {
	return command.Optional[T]{Present: true, Value: v}
}

func null[T any]() command.Optional[T] {
	return command.Optional[T]{Present: true, Null: true}
}
