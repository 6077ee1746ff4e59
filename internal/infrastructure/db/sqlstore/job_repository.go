package sqlstore

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) repositories.JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *entities.ValidatedJob) (*entities.Job, error) {
	jobModel := r.mapToModel(job.GetJob())

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&jobModel).Error; err != nil {
		return nil, err
	}
	if err := r.ReplaceSkills(ctx, jobModel.Id, job.Skills); err != nil {
		return nil, err
	}

	return r.FindById(ctx, jobModel.Id)
}

func (r *JobRepository) Update(ctx context.Context, job *entities.ValidatedJob) (*entities.Job, error) {
	j := job.GetJob()

	err := r.db.WithContext(ctx).Model(&JobModel{}).Where("id = ?", j.Id).Updates(map[string]interface{}{
		"title":            j.Title,
		"company_name":     j.CompanyName,
		"location":         j.Location,
		"is_remote":        j.IsRemote,
		"job_type":         string(j.JobType),
		"category":         j.Category,
		"experience_level": string(j.ExperienceLevel),
		"min_salary":       j.SalaryMin,
		"max_salary":       j.SalaryMax,
		"description":      j.Description,
		"application_url":  j.ApplicationURL,
		"is_featured":      j.IsFeatured,

		"title_folded":       fold(j.Title),
		"company_folded":     fold(j.CompanyName),
		"location_folded":    fold(j.Location),
		"description_folded": fold(j.Description),
	}).Error
	if err != nil {
		return nil, err
	}

	return r.FindById(ctx, j.Id)
}

// ReplaceSkills swaps the job's skill links for exactly the given skills.
func (r *JobRepository) ReplaceSkills(ctx context.Context, jobID uint, skills []entities.Skill) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("job_id = ?", jobID).Delete(&JobSkillModel{}).Error; err != nil {
		return err
	}
	if len(skills) == 0 {
		return nil
	}

	links := make([]JobSkillModel, 0, len(skills))
	for _, s := range skills {
		links = append(links, JobSkillModel{JobID: jobID, SkillID: s.Id})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("job_id = ?", id).Delete(&JobSkillModel{}).Error; err != nil {
		return err
	}
	return db.Delete(&JobModel{}, "id = ?", id).Error
}

func (r *JobRepository) FindById(ctx context.Context, id uint) (*entities.Job, error) {
	var jobModel JobModel
	err := r.db.WithContext(ctx).Preload("Skills", orderSkills).Where("id = ?", id).First(&jobModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&jobModel), nil
}

// Search applies every non-empty filter with AND semantics and returns one
// page of jobs, newest first, together with the total match count.
func (r *JobRepository) Search(ctx context.Context, search repositories.JobSearch, page repositories.Page) ([]*entities.Job, int64, error) {
	q := r.db.WithContext(ctx).Model(&JobModel{})

	if search.Keyword != "" {
		like := containsPattern(search.Keyword)
		q = q.Where("(title_folded LIKE ? ESCAPE '!' OR description_folded LIKE ? ESCAPE '!' OR company_folded LIKE ? ESCAPE '!')", like, like, like)
	}
	if search.Location != "" {
		if strings.EqualFold(search.Location, "remote") {
			q = q.Where("is_remote = ?", true)
		} else {
			q = q.Where("location_folded LIKE ? ESCAPE '!'", containsPattern(search.Location))
		}
	}
	if search.Category != "" {
		q = q.Where("category = ?", search.Category)
	}
	if len(search.JobTypes) > 0 {
		q = q.Where("job_type IN ?", search.JobTypes)
	}
	if len(search.ExperienceLevels) > 0 {
		q = q.Where("experience_level IN ?", search.ExperienceLevels)
	}
	for _, skillID := range search.SkillIDs {
		q = q.Where("EXISTS (SELECT 1 FROM job_skills js WHERE js.job_id = jobs.id AND js.skill_id = ?)", skillID)
	}

	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 || int64(page.Offset()) >= total {
		return []*entities.Job{}, total, nil
	}

	var jobModels []JobModel
	err := base.Preload("Skills", orderSkills).
		Order("created_at DESC").Order("id DESC").
		Offset(page.Offset()).Limit(page.Size).
		Find(&jobModels).Error
	if err != nil {
		return nil, 0, err
	}

	return r.mapToEntities(jobModels), total, nil
}

func (r *JobRepository) Featured(ctx context.Context, limit int) ([]*entities.Job, error) {
	var jobModels []JobModel
	err := r.db.WithContext(ctx).Preload("Skills", orderSkills).
		Where("is_featured = ?", true).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&jobModels).Error
	if err != nil {
		return nil, err
	}

	return r.mapToEntities(jobModels), nil
}

func (r *JobRepository) CountByEmployer(ctx context.Context, employerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&JobModel{}).Where("user_id = ?", employerID).Count(&n).Error
	return n, err
}

func orderSkills(db *gorm.DB) *gorm.DB {
	return db.Order("skills.name")
}

// fold is the case folding applied to the *_folded columns and to search
// terms alike.
func fold(s string) string {
	return strings.ToLower(s)
}

// containsPattern builds a LIKE pattern over the folded columns that matches
// s literally, using '!' as the escape character.
func containsPattern(s string) string {
	escaped := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(fold(s))
	return "%" + escaped + "%"
}

func (r *JobRepository) mapToModel(job *entities.Job) JobModel {
	return JobModel{
		Id:              job.Id,
		CreatedAt:       job.CreatedAt,
		Title:           job.Title,
		CompanyName:     job.CompanyName,
		Location:        job.Location,
		IsRemote:        job.IsRemote,
		JobType:         string(job.JobType),
		Category:        job.Category,
		ExperienceLevel: string(job.ExperienceLevel),
		MinSalary:       job.SalaryMin,
		MaxSalary:       job.SalaryMax,
		Description:     job.Description,
		ApplicationURL:  job.ApplicationURL,
		IsFeatured:      job.IsFeatured,
		EmployerID:      job.EmployerID,

		TitleFolded:       fold(job.Title),
		CompanyFolded:     fold(job.CompanyName),
		LocationFolded:    fold(job.Location),
		DescriptionFolded: fold(job.Description),
	}
}

func (r *JobRepository) mapToEntities(jobModels []JobModel) []*entities.Job {
	jobs := make([]*entities.Job, 0, len(jobModels))
	for i := range jobModels {
		jobs = append(jobs, r.mapToEntity(&jobModels[i]))
	}
	return jobs
}

func (r *JobRepository) mapToEntity(jobModel *JobModel) *entities.Job {
	skills := make([]entities.Skill, 0, len(jobModel.Skills))
	for _, s := range jobModel.Skills {
		skills = append(skills, entities.Skill{Id: s.Id, Name: s.Name})
	}
	return &entities.Job{
		Id:              jobModel.Id,
		CreatedAt:       jobModel.CreatedAt,
		Title:           jobModel.Title,
		CompanyName:     jobModel.CompanyName,
		Location:        jobModel.Location,
		IsRemote:        jobModel.IsRemote,
		JobType:         entities.JobType(jobModel.JobType),
		Category:        jobModel.Category,
		ExperienceLevel: entities.ExperienceLevel(jobModel.ExperienceLevel),
		SalaryMin:       jobModel.MinSalary,
		SalaryMax:       jobModel.MaxSalary,
		Description:     jobModel.Description,
		ApplicationURL:  jobModel.ApplicationURL,
		IsFeatured:      jobModel.IsFeatured,
		EmployerID:      jobModel.EmployerID,
		Skills:          skills,
	}
}
