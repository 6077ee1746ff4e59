package sqlstore

import "time"

type UserModel struct {
	Id          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	Email       string  `gorm:"size:120;uniqueIndex;not null"`
	Password    string  `gorm:"size:200;not null"`
	IsEmployer  bool    `gorm:"not null;default:false"`
	CompanyName *string `gorm:"size:120"`
}

func (UserModel) TableName() string {
	return "users"
}

type SkillModel struct {
	Id   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;uniqueIndex;not null"`
}

func (SkillModel) TableName() string {
	return "skills"
}

type JobModel struct {
	Id              uint      `gorm:"primaryKey"`
	CreatedAt       time.Time `gorm:"index"`
	Title           string    `gorm:"size:120;not null"`
	CompanyName     string    `gorm:"size:120;not null"`
	Location        string    `gorm:"size:120;not null"`
	IsRemote        bool      `gorm:"not null;default:false;index"`
	JobType         string    `gorm:"size:50;not null;index"`
	Category        string    `gorm:"size:50;not null;index"`
	ExperienceLevel string    `gorm:"size:50;not null;index"`
	MinSalary       *int64
	MaxSalary       *int64
	Description     string       `gorm:"type:text;not null"`
	ApplicationURL  *string      `gorm:"column:application_url;size:250"`
	IsFeatured      bool         `gorm:"not null;default:false;index"`
	EmployerID      uint         `gorm:"column:user_id;not null;index"`
	Skills          []SkillModel `gorm:"many2many:job_skills;joinForeignKey:JobID;joinReferences:SkillID"`

	// Lower-cased copies for case-insensitive search. SQLite's LOWER only
	// folds ASCII.
	TitleFolded       string `gorm:"type:text"`
	CompanyFolded     string `gorm:"type:text"`
	LocationFolded    string `gorm:"type:text"`
	DescriptionFolded string `gorm:"type:text"`
}

func (JobModel) TableName() string {
	return "jobs"
}

type JobSkillModel struct {
	JobID   uint `gorm:"primaryKey"`
	SkillID uint `gorm:"primaryKey;index"`
}

func (JobSkillModel) TableName() string {
	return "job_skills"
}

type ApplicationModel struct {
	Id          uint      `gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"index"`
	JobID       uint      `gorm:"not null;uniqueIndex:idx_applications_job_user"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_applications_job_user"`
	ResumePath  *string   `gorm:"size:255;index"`
	CoverLetter *string   `gorm:"type:text"`
	Status      string    `gorm:"size:20;not null;default:pending;index"`
}

func (ApplicationModel) TableName() string {
	return "job_applications"
}
