package repositories

import (
	"context"

	"jobboard-service/internal/domain/entities"
)

type SkillRepository interface {
	// FindOrCreate resolves canonical names to skills, inserting missing ones.
	// The result follows the order of names.
	FindOrCreate(ctx context.Context, names []string) ([]entities.Skill, error)
	FindByNames(ctx context.Context, names []string) ([]entities.Skill, error)
	List(ctx context.Context) ([]entities.Skill, error)
}
