package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"jobboard-service/internal/domain/repositories"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) repositories.Store {
	return &Store{db: db}
}

func (s *Store) Users() repositories.UserRepository {
	return NewUserRepository(s.db)
}

func (s *Store) Jobs() repositories.JobRepository {
	return NewJobRepository(s.db)
}

func (s *Store) Skills() repositories.SkillRepository {
	return NewSkillRepository(s.db)
}

func (s *Store) Applications() repositories.ApplicationRepository {
	return NewApplicationRepository(s.db)
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx repositories.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
