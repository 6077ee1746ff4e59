package services

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/common"
	"jobboard-service/internal/application/interfaces"
	"jobboard-service/internal/application/mapper"
	"jobboard-service/internal/application/query"
	"jobboard-service/internal/config"
	"jobboard-service/internal/domain"
	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/policy"
	"jobboard-service/internal/domain/repositories"
	"jobboard-service/internal/infrastructure"
	"jobboard-service/internal/messaging"
)

type ApplicationService struct {
	store         repositories.Store
	resumes       interfaces.ResumeStorage
	events        interfaces.EventPublisher
	catalog       config.Catalog
	resumeBaseURL string
	log           logrus.FieldLogger
}

// NewApplicationService builds the service. resumeBaseURL is the public
// route prefix resume locators are served under.
func NewApplicationService(
	store repositories.Store,
	resumes interfaces.ResumeStorage,
	events interfaces.EventPublisher,
	catalog config.Catalog,
	resumeBaseURL string,
	log logrus.FieldLogger,
) interfaces.ApplicationService {
	return &ApplicationService{
		store:         store,
		resumes:       resumes,
		events:        events,
		catalog:       catalog,
		resumeBaseURL: resumeBaseURL,
		log:           log,
	}
}

func (s *ApplicationService) Apply(ctx context.Context, applyCommand *command.ApplyCommand) (*command.ApplyCommandResult, error) {
	caller := applyCommand.Caller
	if err := policy.CanApply(caller).Err(); err != nil {
		return nil, err
	}

	job, err := s.store.Jobs().FindById(ctx, applyCommand.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.NotFound("Job not found")
	}

	existing, err := s.store.Applications().FindByJobAndUser(ctx, job.Id, caller.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("You have already applied for this job")
	}

	var resumePath *string
	if upload := applyCommand.Resume; upload != nil && upload.Content != nil {
		if s.catalog.AllowsResume(upload.Filename) {
			locator, err := s.resumes.Save(ctx, upload.Content, upload.Filename)
			if err != nil {
				return nil, err
			}
			resumePath = &locator
		} else {
			s.log.WithFields(logrus.Fields{
				"job_id":   job.Id,
				"filename": upload.Filename,
			}).Info("resume with disallowed extension ignored")
		}
	}

	// The unique (job_id, user_id) index rejects a concurrent duplicate.
	created, err := s.store.Applications().Create(ctx, entities.NewApplication(job.Id, caller.UserID, resumePath, applyCommand.CoverLetter))
	if err != nil {
		if resumePath != nil {
			if delErr := s.resumes.Delete(ctx, *resumePath); delErr != nil {
				s.log.WithError(delErr).WithField("resume", *resumePath).Warn("failed to remove orphaned resume")
			}
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"application_id": created.Id,
		"job_id":         job.Id,
		"applicant_id":   caller.UserID,
		"resume":         resumePath != nil,
	}).Info("application submitted")
	publishEvent(ctx, s.events, s.log, messaging.SubjectApplicationSubmitted, messaging.ApplicationEvent{
		ApplicationID: created.Id,
		JobID:         job.Id,
		ApplicantID:   caller.UserID,
		EmployerID:    job.EmployerID,
		Status:        string(created.Status),
	})

	return &command.ApplyCommandResult{
		Message:       "Application submitted successfully",
		ApplicationID: created.Id,
	}, nil
}

func (s *ApplicationService) ListApplications(ctx context.Context, listQuery *query.ListApplicationsQuery) (*query.ApplicationListQueryResult, error) {
	caller := listQuery.Caller
	page := repositories.NewPage(listQuery.Page, listQuery.PerPage)

	// An unrecognised status is matched verbatim and simply finds nothing.
	filter := repositories.ApplicationFilter{Status: listQuery.Status}
	if caller.IsEmployer() {
		filter.EmployerID = caller.UserID
	} else {
		filter.ApplicantID = caller.UserID
	}

	views, total, err := s.store.Applications().List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	results := make([]*common.ApplicationResult, 0, len(views))
	for _, view := range views {
		results = append(results, mapper.NewApplicationResultFromView(view, s.resumeBaseURL, caller.IsEmployer()))
	}

	return &query.ApplicationListQueryResult{
		Applications: results,
		Total:        total,
		Pages:        page.Pages(total),
		CurrentPage:  page.Number,
	}, nil
}

func (s *ApplicationService) GetApplication(ctx context.Context, caller entities.Caller, id uint) (*query.ApplicationQueryResult, error) {
	view, err := s.store.Applications().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.NotFound("Application not found")
	}
	if err := policy.CanViewApplication(caller, view).Err(); err != nil {
		return nil, err
	}

	withApplicant := caller.UserID == view.EmployerID
	return &query.ApplicationQueryResult{
		Application: mapper.NewApplicationDetailResultFromView(view, s.resumeBaseURL, withApplicant),
	}, nil
}

func (s *ApplicationService) SetStatus(ctx context.Context, statusCommand *command.SetApplicationStatusCommand) (*command.MessageResult, error) {
	status, err := entities.ParseApplicationStatus(statusCommand.Status)
	if err != nil {
		return nil, err
	}

	var previous entities.ApplicationStatus
	var view *entities.ApplicationView
	err = s.store.WithinTx(ctx, func(tx repositories.Store) error {
		var err error
		view, err = tx.Applications().FindById(ctx, statusCommand.ApplicationID)
		if err != nil {
			return err
		}
		if view == nil {
			return domain.NotFound("Application not found")
		}
		if err := policy.CanSetApplicationStatus(statusCommand.Caller, view).Err(); err != nil {
			return err
		}

		previous = view.Status
		return tx.Applications().UpdateStatus(ctx, view.Id, status)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"application_id": view.Id,
		"from":           previous,
		"to":             status,
	}).Info("application status changed")
	publishEvent(ctx, s.events, s.log, messaging.SubjectApplicationStatusChanged, messaging.ApplicationEvent{
		ApplicationID:  view.Id,
		JobID:          view.JobID,
		ApplicantID:    view.UserID,
		EmployerID:     view.EmployerID,
		Status:         string(status),
		PreviousStatus: string(previous),
	})

	return &command.MessageResult{Message: "Application status updated successfully"}, nil
}

// OpenResume streams a stored resume to the applicant or the owning employer.
func (s *ApplicationService) OpenResume(ctx context.Context, caller entities.Caller, locator string) (io.ReadCloser, error) {
	view, err := s.store.Applications().FindByResumePath(ctx, locator)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.NotFound("Resume not found")
	}
	if err := policy.CanDownloadResume(caller, view).Err(); err != nil {
		return nil, err
	}

	rc, err := s.resumes.Open(ctx, locator)
	if err != nil {
		if errors.Is(err, infrastructure.ErrResumeNotFound) {
			return nil, domain.NotFound("Resume not found")
		}
		return nil, err
	}
	return rc, nil
}
