package repositories

import (
	"context"

	"jobboard-service/internal/domain/entities"
)

// UserRepository finders return nil, nil when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
