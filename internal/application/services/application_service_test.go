package services_test

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/query"
	"jobboard-service/internal/domain"
	"jobboard-service/internal/messaging"
)

func TestApply(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boss := env.employer(t, "boss@acme.io")
	seeker := env.seeker(t, "jane@example.com")
	jobID := env.postJob(t, boss, "Go Developer")

	letter := "I like Go."
	res, err := env.apps.Apply(ctx, &command.ApplyCommand{
		Caller:      seeker,
		JobID:       jobID,
		CoverLetter: &letter,
		Resume:      &command.ResumeUpload{Filename: "Jane CV.PDF", Content: strings.NewReader("%PDF")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Application submitted successfully", res.Message)

	got, err := env.apps.GetApplication(ctx, seeker, res.ApplicationID)
	require.NoError(t, err)
	app := got.Application
	assert.Equal(t, "pending", app.Status)
	assert.Equal(t, "Go Developer", app.JobTitle)
	assert.Empty(t, app.ApplicantEmail)
	require.NotNil(t, app.CoverLetter)
	assert.Equal(t, letter, *app.CoverLetter)
	require.NotNil(t, app.ResumeURL)
	assert.True(t, strings.HasPrefix(*app.ResumeURL, "/api/uploads/resumes/"))
	assert.True(t, strings.HasSuffix(*app.ResumeURL, "Jane_CV.PDF"))

	asOwner, err := env.apps.GetApplication(ctx, boss, res.ApplicationID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", asOwner.Application.ApplicantEmail)

	assert.Equal(t, []string{messaging.SubjectJobCreated, messaging.SubjectApplicationSubmitted}, env.events.Subjects())
}

func TestApplyRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boss := env.employer(t, "boss@acme.io")
	seeker := env.seeker(t, "jane@example.com")
	jobID := env.postJob(t, boss, "Go Developer")

	_, err := env.apps.Apply(ctx, &command.ApplyCommand{Caller: boss, JobID: jobID})
	assert.True(t, domain.Is(err, domain.KindAuthorization))

	_, err = env.apps.Apply(ctx, &command.ApplyCommand{Caller: seeker, JobID: jobID + 50})
	assert.True(t, domain.Is(err, domain.KindNotFound))

	env.apply(t, seeker, jobID)
	_, err = env.apps.Apply(ctx, &command.ApplyCommand{Caller: seeker, JobID: jobID})
	assert.True(t, domain.Is(err, domain.KindConflict))
}

func TestApplyIgnoresDisallowedResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boss := env.employer(t, "boss@acme.io")
	seeker := env.seeker(t, "jane@example.com")
	jobID := env.postJob(t, boss, "Go Developer")

	id := env.applyWithResume(t, seeker, jobID, "payload.exe", "MZ")

	view, err := env.store.Applications().FindById(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, view.ResumePath)

	entries, err := os.ReadDir(env.resumeDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcurrentApplyAcceptsOne(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boss := env.employer(t, "boss@acme.io")
	seeker := env.seeker(t, "jane@example.com")
	jobID := env.postJob(t, boss, "Go Developer")

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.apps.Apply(ctx, &command.ApplyCommand{Caller: seeker, JobID: jobID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case domain.Is(err, domain.KindConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)
}

func TestListApplicationsIsScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boss := env.employer(t, "boss@acme.io")
	rival := env.employer(t, "rival@globex.io")
	jane := env.seeker(t, "jane@example.com")
	john := env.seeker(t, "john@example.com")

	ours := env.postJob(t, boss, "Go Developer")
	theirs := env.postJob(t, rival, "Rust Developer")
	env.apply(t, jane, ours)
	env.apply(t, john, ours)
	env.apply(t, jane, theirs)

	list := func(q query.ListApplicationsQuery) *query.ApplicationListQueryResult {
		t.Helper()
		res, err := env.apps.ListApplications(ctx, &q)
		require.NoError(t, err)
		return res
	}

	forBoss := list(query.ListApplicationsQuery{Caller: boss})
	assert.Equal(t, int64(2), forBoss.Total)
	for _, a := range forBoss.Applications {
		assert.Equal(t, ours, a.JobID)
		assert.NotEmpty(t, a.ApplicantEmail)
	}

	forJane := list(query.ListApplicationsQuery{Caller: jane})
	assert.Equal(t, int64(2), forJane.Total)
	for _, a := range forJane.Applications {
		assert.Equal(t, jane.UserID, a.UserID)
		assert.Empty(t, a.ApplicantEmail)
	}

	assert.Equal(t, int64(0), list(query.ListApplicationsQuery{Caller: boss, Status: "shortlisted"}).Total)
	assert.Equal(t, int64(0), list(query.ListApplicationsQuery{Caller: boss, Status: "bogus"}).Total)
	assert.Equal(t, int64(2), list(query.ListApplicationsQuery{Caller: boss, Status: "pending"}).Total)

	paged := list(query.ListApplicationsQuery{Caller: boss, Page: 2, PerPage: 1})
	assert.Len(t, paged.Applications, 1)
	assert.Equal(t, 2, paged.Pages)
}

func TestGetApplicationAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boss := env.employer(t, "boss@acme.io")
	rival := env.employer(t, "rival@globex.io")
	jane := env.seeker(t, "jane@example.com")
	john := env.seeker(t, "john@example.com")
	id := env.apply(t, jane, env.postJob(t, boss, "Go Developer"))

	_, err := env.apps.GetApplication(ctx, rival, id)
	assert.True(t, domain.Is(err, domain.KindAuthorization))

	_, err = env.apps.GetApplication(ctx, john, id)
	assert.True(t, domain.Is(err, domain.KindAuthorization))

	_, err = env.apps.GetApplication(ctx, jane, id+10)
	assert.True(t, domain.Is(err, domain.KindNotFound))
}

func TestSetStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boss := env.employer(t, "boss@acme.io")
	rival := env.employer(t, "rival@globex.io")
	jane := env.seeker(t, "jane@example.com")
	id := env.apply(t, jane, env.postJob(t, boss, "Go Developer"))

	_, err := env.apps.SetStatus(ctx, &command.SetApplicationStatusCommand{Caller: boss, ApplicationID: id, Status: "hired"})
	assert.True(t, domain.Is(err, domain.KindValidation))

	_, err = env.apps.SetStatus(ctx, &command.SetApplicationStatusCommand{Caller: rival, ApplicationID: id, Status: "rejected"})
	assert.True(t, domain.Is(err, domain.KindAuthorization))

	_, err = env.apps.SetStatus(ctx, &command.SetApplicationStatusCommand{Caller: jane, ApplicationID: id, Status: "shortlisted"})
	assert.True(t, domain.Is(err, domain.KindAuthorization))

	_, err = env.apps.SetStatus(ctx, &command.SetApplicationStatusCommand{Caller: boss, ApplicationID: id + 1, Status: "reviewed"})
	assert.True(t, domain.Is(err, domain.KindNotFound))

	res, err := env.apps.SetStatus(ctx, &command.SetApplicationStatusCommand{Caller: boss, ApplicationID: id, Status: "shortlisted"})
	require.NoError(t, err)
	assert.Equal(t, "Application status updated successfully", res.Message)

	got, err := env.apps.GetApplication(ctx, jane, id)
	require.NoError(t, err)
	assert.Equal(t, "shortlisted", got.Application.Status)

	subjects := env.events.Subjects()
	assert.Equal(t, messaging.SubjectApplicationStatusChanged, subjects[len(subjects)-1])
	last := env.events.payloads[len(env.events.payloads)-1].(messaging.ApplicationEvent)
	assert.Equal(t, "pending", last.PreviousStatus)
	assert.Equal(t, "shortlisted", last.Status)
}

func TestOpenResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	boss := env.employer(t, "boss@acme.io")
	rival := env.employer(t, "rival@globex.io")
	jane := env.seeker(t, "jane@example.com")
	john := env.seeker(t, "john@example.com")
	id := env.applyWithResume(t, jane, env.postJob(t, boss, "Go Developer"), "cv.pdf", "resume body")

	view, err := env.store.Applications().FindById(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, view.ResumePath)
	locator := *view.ResumePath

	rc, err := env.apps.OpenResume(ctx, boss, locator)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "resume body", string(body))

	rc, err = env.apps.OpenResume(ctx, jane, locator)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	_, err = env.apps.OpenResume(ctx, rival, locator)
	assert.True(t, domain.Is(err, domain.KindAuthorization))

	_, err = env.apps.OpenResume(ctx, john, locator)
	assert.True(t, domain.Is(err, domain.KindAuthorization))

	_, err = env.apps.OpenResume(ctx, boss, "missing.pdf")
	assert.True(t, domain.Is(err, domain.KindNotFound))

	require.NoError(t, os.Remove(env.resumePath(locator)))
	_, err = env.apps.OpenResume(ctx, boss, locator)
	assert.True(t, domain.Is(err, domain.KindNotFound))
}
