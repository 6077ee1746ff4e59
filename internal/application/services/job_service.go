package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/interfaces"
	"jobboard-service/internal/application/mapper"
	"jobboard-service/internal/application/query"
	"jobboard-service/internal/config"
	"jobboard-service/internal/domain"
	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/policy"
	"jobboard-service/internal/domain/repositories"
	"jobboard-service/internal/messaging"
)

const featuredJobsLimit = 5

type JobService struct {
	store      repositories.Store
	normalizer SkillNormalizer
	resumes    interfaces.ResumeStorage
	events     interfaces.EventPublisher
	catalog    config.Catalog
	log        logrus.FieldLogger
}

func NewJobService(
	store repositories.Store,
	resumes interfaces.ResumeStorage,
	events interfaces.EventPublisher,
	catalog config.Catalog,
	log logrus.FieldLogger,
) interfaces.JobService {
	return &JobService{
		store:   store,
		resumes: resumes,
		events:  events,
		catalog: catalog,
		log:     log,
	}
}

func (s *JobService) CreateJob(ctx context.Context, createCommand *command.CreateJobCommand) (*command.CreateJobCommandResult, error) {
	caller := createCommand.Caller
	if err := policy.CanPostJobs(caller).Err(); err != nil {
		return nil, err
	}

	jobType, err := entities.ParseJobType(createCommand.JobType)
	if err != nil {
		return nil, err
	}
	experience, err := entities.ParseExperienceLevel(createCommand.ExperienceLevel)
	if err != nil {
		return nil, err
	}

	companyName := ""
	if createCommand.CompanyName != nil {
		companyName = *createCommand.CompanyName
	} else if caller.CompanyName != nil {
		companyName = *caller.CompanyName
	}

	job := entities.NewJob(caller.UserID, createCommand.Title, companyName, createCommand.Location,
		jobType, createCommand.Category, experience, createCommand.Description)
	job.SalaryMin = createCommand.MinSalary
	job.SalaryMax = createCommand.MaxSalary
	job.ApplicationURL = createCommand.ApplicationURL
	job.IsFeatured = s.catalog.IsFeaturedPlan(createCommand.Plan)

	validatedJob, err := entities.NewValidatedJob(job)
	if err != nil {
		return nil, err
	}

	var created *entities.Job
	err = s.store.WithinTx(ctx, func(tx repositories.Store) error {
		skills, err := s.normalizer.Normalize(ctx, tx.Skills(), createCommand.Skills)
		if err != nil {
			return err
		}
		validatedJob.Skills = skills

		created, err = tx.Jobs().Create(ctx, validatedJob)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"job_id":      created.Id,
		"employer_id": created.EmployerID,
		"featured":    created.IsFeatured,
	}).Info("job created")
	publishEvent(ctx, s.events, s.log, messaging.SubjectJobCreated, jobEvent(created))

	return &command.CreateJobCommandResult{
		Message: "Job posted successfully",
		JobID:   created.Id,
	}, nil
}

func (s *JobService) UpdateJob(ctx context.Context, updateCommand *command.UpdateJobCommand) (*command.MessageResult, error) {
	var updated *entities.Job
	err := s.store.WithinTx(ctx, func(tx repositories.Store) error {
		job, err := tx.Jobs().FindById(ctx, updateCommand.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return domain.NotFound("Job not found")
		}
		if err := policy.CanUpdateJob(updateCommand.Caller, job).Err(); err != nil {
			return err
		}

		patch, err := s.jobPatchFromCommand(updateCommand)
		if err != nil {
			return err
		}
		validatedJob, err := entities.NewValidatedJob(job)
		if err != nil {
			return err
		}
		if err := validatedJob.ApplyPatch(patch); err != nil {
			return err
		}
		if _, err := tx.Jobs().Update(ctx, validatedJob); err != nil {
			return err
		}

		// Skills are replaced, not merged; an empty list clears them.
		if updateCommand.Skills.Present {
			skills, err := s.normalizer.Normalize(ctx, tx.Skills(), updateCommand.Skills.Value)
			if err != nil {
				return err
			}
			if err := tx.Jobs().ReplaceSkills(ctx, job.Id, skills); err != nil {
				return err
			}
		}

		updated, err = tx.Jobs().FindById(ctx, job.Id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("job_id", updated.Id).Info("job updated")
	publishEvent(ctx, s.events, s.log, messaging.SubjectJobUpdated, jobEvent(updated))

	return &command.MessageResult{Message: "Job updated successfully"}, nil
}

func (s *JobService) jobPatchFromCommand(c *command.UpdateJobCommand) (entities.JobPatch, error) {
	patch := entities.JobPatch{
		Title:          stringPatch(c.Title),
		CompanyName:    stringPatch(c.CompanyName),
		Location:       stringPatch(c.Location),
		Category:       stringPatch(c.Category),
		Description:    stringPatch(c.Description),
		ApplicationURL: stringPatch(c.ApplicationURL),
		SalaryMin:      entities.Patch[int64]{Set: c.MinSalary.Present, Value: c.MinSalary.Ptr()},
		SalaryMax:      entities.Patch[int64]{Set: c.MaxSalary.Present, Value: c.MaxSalary.Ptr()},
	}

	if c.JobType.Present {
		patch.JobType.Set = true
		if !c.JobType.Null {
			jobType, err := entities.ParseJobType(c.JobType.Value)
			if err != nil {
				return patch, err
			}
			patch.JobType.Value = &jobType
		}
	}
	if c.ExperienceLevel.Present {
		patch.ExperienceLevel.Set = true
		if !c.ExperienceLevel.Null {
			level, err := entities.ParseExperienceLevel(c.ExperienceLevel.Value)
			if err != nil {
				return patch, err
			}
			patch.ExperienceLevel.Value = &level
		}
	}
	if c.Plan.Present {
		// A null plan is treated like any non-featured plan.
		patch.Featured = entities.PatchOf(!c.Plan.Null && s.catalog.IsFeaturedPlan(c.Plan.Value))
	}
	return patch, nil
}

func stringPatch(o command.Optional[string]) entities.Patch[string] {
	return entities.Patch[string]{Set: o.Present, Value: o.Ptr()}
}

func (s *JobService) DeleteJob(ctx context.Context, deleteCommand *command.DeleteJobCommand) (*command.MessageResult, error) {
	var (
		deleted  *entities.Job
		locators []string
	)
	err := s.store.WithinTx(ctx, func(tx repositories.Store) error {
		job, err := tx.Jobs().FindById(ctx, deleteCommand.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return domain.NotFound("Job not found")
		}
		if err := policy.CanDeleteJob(deleteCommand.Caller, job).Err(); err != nil {
			return err
		}

		locators, err = tx.Applications().DeleteByJob(ctx, job.Id)
		if err != nil {
			return err
		}
		deleted = job
		return tx.Jobs().Delete(ctx, job.Id)
	})
	if err != nil {
		return nil, err
	}

	// Blob removal is best effort once the rows are gone.
	for _, locator := range locators {
		if err := s.resumes.Delete(ctx, locator); err != nil {
			s.log.WithError(err).WithField("resume", locator).Warn("failed to delete resume")
		}
	}

	s.log.WithFields(logrus.Fields{
		"job_id":       deleted.Id,
		"applications": len(locators),
	}).Info("job deleted")
	publishEvent(ctx, s.events, s.log, messaging.SubjectJobDeleted, jobEvent(deleted))

	return &command.MessageResult{Message: "Job deleted successfully"}, nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (*query.JobQueryResult, error) {
	job, err := s.store.Jobs().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.NotFound("Job not found")
	}

	return &query.JobQueryResult{Job: mapper.NewJobDetailResultFromEntity(job)}, nil
}

func (s *JobService) SearchJobs(ctx context.Context, searchQuery *query.SearchJobsQuery) (*query.JobListQueryResult, error) {
	page := repositories.NewPage(searchQuery.Page, searchQuery.PerPage)

	search := repositories.JobSearch{
		Keyword:          searchQuery.Keyword,
		Location:         searchQuery.Location,
		Category:         searchQuery.Category,
		JobTypes:         nonEmpty(searchQuery.JobTypes),
		ExperienceLevels: nonEmpty(searchQuery.ExperienceLevels),
	}

	skills, err := s.normalizer.Resolve(ctx, s.store.Skills(), searchQuery.Skills)
	if err != nil {
		return nil, err
	}
	for _, skill := range skills {
		search.SkillIDs = append(search.SkillIDs, skill.Id)
	}

	jobs, total, err := s.store.Jobs().Search(ctx, search, page)
	if err != nil {
		return nil, err
	}

	return &query.JobListQueryResult{
		Jobs:        mapper.NewJobResultsFromEntities(jobs),
		Total:       total,
		Pages:       page.Pages(total),
		CurrentPage: page.Number,
	}, nil
}

func (s *JobService) FeaturedJobs(ctx context.Context) (*query.FeaturedJobsQueryResult, error) {
	jobs, err := s.store.Jobs().Featured(ctx, featuredJobsLimit)
	if err != nil {
		return nil, err
	}

	return &query.FeaturedJobsQueryResult{FeaturedJobs: mapper.NewJobResultsFromEntities(jobs)}, nil
}

func (s *JobService) Categories(ctx context.Context) (*query.CategoriesQueryResult, error) {
	categories := make([]string, len(s.catalog.Categories))
	copy(categories, s.catalog.Categories)
	return &query.CategoriesQueryResult{Categories: categories}, nil
}

func (s *JobService) Skills(ctx context.Context) (*query.SkillsQueryResult, error) {
	skills, err := s.store.Skills().List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return &query.SkillsQueryResult{Skills: names}, nil
}

func jobEvent(job *entities.Job) messaging.JobEvent {
	return messaging.JobEvent{
		JobID:      job.Id,
		EmployerID: job.EmployerID,
		Title:      job.Title,
		IsFeatured: job.IsFeatured,
	}
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
