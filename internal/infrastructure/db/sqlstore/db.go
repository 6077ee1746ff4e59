package sqlstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database and migrates the schema.
// driver is one of sqlite, postgres or mysql.
func Open(driver, dsn string, log logrus.FieldLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if dialector.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&JobModel{}, "Skills", &JobSkillModel{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&UserModel{}, &SkillModel{}, &JobModel{}, &JobSkillModel{}, &ApplicationModel{}); err != nil {
		return err
	}
	return backfillFolded(db)
}

// backfillFolded fills the search columns of rows written before they existed.
func backfillFolded(db *gorm.DB) error {
	var batch []JobModel
	return db.Model(&JobModel{}).
		Select("id", "title", "company_name", "location", "description").
		Where("title_folded IS NULL").
		FindInBatches(&batch, 200, func(tx *gorm.DB, _ int) error {
			for _, m := range batch {
				err := db.Model(&JobModel{}).Where("id = ?", m.Id).Updates(map[string]interface{}{
					"title_folded":       fold(m.Title),
					"company_folded":     fold(m.CompanyName),
					"location_folded":    fold(m.Location),
					"description_folded": fold(m.Description),
				}).Error
				if err != nil {
					return err
				}
			}
			return nil
		}).Error
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
