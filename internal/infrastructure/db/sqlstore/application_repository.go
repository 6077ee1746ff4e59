package sqlstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) repositories.ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// applicationRow is one application joined with its job and applicant.
type applicationRow struct {
	Id             uint
	CreatedAt      time.Time
	JobID          uint
	UserID         uint
	ResumePath     *string
	CoverLetter    *string
	Status         string
	JobTitle       string
	CompanyName    string
	EmployerID     uint
	ApplicantEmail string
}

const applicationColumns = "a.id, a.created_at, a.job_id, a.user_id, a.resume_path, a.cover_letter, a.status, " +
	"j.title AS job_title, j.company_name AS company_name, j.user_id AS employer_id, u.email AS applicant_email"

func (r *ApplicationRepository) Create(ctx context.Context, app *entities.Application) (*entities.Application, error) {
	appModel := ApplicationModel{
		CreatedAt:   app.CreatedAt,
		JobID:       app.JobID,
		UserID:      app.UserID,
		ResumePath:  app.ResumePath,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
	}

	if err := r.db.WithContext(ctx).Create(&appModel).Error; err != nil {
		return nil, translate(err, "You have already applied for this job")
	}

	created := *app
	created.Id = appModel.Id
	created.CreatedAt = appModel.CreatedAt
	return &created, nil
}

func (r *ApplicationRepository) FindById(ctx context.Context, id uint) (*entities.ApplicationView, error) {
	return r.findOne(ctx, "a.id = ?", id)
}

func (r *ApplicationRepository) FindByResumePath(ctx context.Context, locator string) (*entities.ApplicationView, error) {
	return r.findOne(ctx, "a.resume_path = ?", locator)
}

func (r *ApplicationRepository) FindByJobAndUser(ctx context.Context, jobID, userID uint) (*entities.Application, error) {
	var appModel ApplicationModel
	err := r.db.WithContext(ctx).Where("job_id = ? AND user_id = ?", jobID, userID).First(&appModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Application{
		Id:          appModel.Id,
		CreatedAt:   appModel.CreatedAt,
		JobID:       appModel.JobID,
		UserID:      appModel.UserID,
		ResumePath:  appModel.ResumePath,
		CoverLetter: appModel.CoverLetter,
		Status:      entities.ApplicationStatus(appModel.Status),
	}, nil
}

func (r *ApplicationRepository) List(ctx context.Context, filter repositories.ApplicationFilter, page repositories.Page) ([]*entities.ApplicationView, int64, error) {
	base := r.filtered(ctx, filter).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 || int64(page.Offset()) >= total {
		return []*entities.ApplicationView{}, total, nil
	}

	var rows []applicationRow
	err := base.Select(applicationColumns).
		Order("a.created_at DESC").Order("a.id DESC").
		Offset(page.Offset()).Limit(page.Size).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entities.ApplicationView, 0, len(rows))
	for i := range rows {
		views = append(views, mapRowToView(&rows[i]))
	}
	return views, total, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uint, status entities.ApplicationStatus) error {
	return r.db.WithContext(ctx).Model(&ApplicationModel{}).Where("id = ?", id).Update("status", string(status)).Error
}

func (r *ApplicationRepository) DeleteByJob(ctx context.Context, jobID uint) ([]string, error) {
	db := r.db.WithContext(ctx)

	var locators []string
	err := db.Model(&ApplicationModel{}).
		Where("job_id = ? AND resume_path IS NOT NULL", jobID).
		Pluck("resume_path", &locators).Error
	if err != nil {
		return nil, err
	}

	if err := db.Where("job_id = ?", jobID).Delete(&ApplicationModel{}).Error; err != nil {
		return nil, err
	}
	return locators, nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, filter repositories.ApplicationFilter) (entities.StatusCounts, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.filtered(ctx, filter).
		Select("a.status AS status, COUNT(*) AS total").
		Group("a.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(entities.StatusCounts, len(entities.ApplicationStatuses()))
	for _, st := range entities.ApplicationStatuses() {
		counts[st] = 0
	}
	for _, row := range rows {
		counts[entities.ApplicationStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *ApplicationRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("job_applications AS a").
		Joins("JOIN jobs j ON j.id = a.job_id").
		Joins("JOIN users u ON u.id = a.user_id")
}

func (r *ApplicationRepository) filtered(ctx context.Context, filter repositories.ApplicationFilter) *gorm.DB {
	q := r.joined(ctx)
	if filter.EmployerID != 0 {
		q = q.Where("j.user_id = ?", filter.EmployerID)
	}
	if filter.ApplicantID != 0 {
		q = q.Where("a.user_id = ?", filter.ApplicantID)
	}
	if filter.Status != "" {
		q = q.Where("a.status = ?", filter.Status)
	}
	return q
}

func (r *ApplicationRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.ApplicationView, error) {
	var rows []applicationRow
	err := r.joined(ctx).Select(applicationColumns).Where(query, args...).Limit(1).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mapRowToView(&rows[0]), nil
}

func mapRowToView(row *applicationRow) *entities.ApplicationView {
	return &entities.ApplicationView{
		Application: entities.Application{
			Id:          row.Id,
			CreatedAt:   row.CreatedAt,
			JobID:       row.JobID,
			UserID:      row.UserID,
			ResumePath:  row.ResumePath,
			CoverLetter: row.CoverLetter,
			Status:      entities.ApplicationStatus(row.Status),
		},
		JobTitle:       row.JobTitle,
		CompanyName:    row.CompanyName,
		EmployerID:     row.EmployerID,
		ApplicantEmail: row.ApplicantEmail,
	}
}
