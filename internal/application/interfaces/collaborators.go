package interfaces

import (
	"context"
	"io"
	"time"

	"jobboard-service/internal/domain/entities"
)

type TokenService interface {
	GenerateToken(userID uint) (string, error)
	ParseToken(token string) (uint, error)
}

// ProfileCache returns nil, nil on a miss.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID uint) (*entities.Caller, error)
	SetProfile(ctx context.Context, caller entities.Caller, ttl time.Duration) error
}

type Limiter interface {
	Allow(key string) bool
}

// ResumeStorage stores uploaded resumes and hands back an opaque locator.
type ResumeStorage interface {
	Save(ctx context.Context, data io.Reader, originalName string) (string, error)
	Open(ctx context.Context, locator string) (io.ReadCloser, error)
	Delete(ctx context.Context, locator string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}
