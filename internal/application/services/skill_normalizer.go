package services

import (
	"context"
	"strings"

	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
)

// SkillNormalizer canonicalizes free-text skills against the shared registry.
type SkillNormalizer struct{}

// Normalize resolves comma-separated raw text to registry skills, creating
// the ones that do not exist yet.
func (SkillNormalizer) Normalize(ctx context.Context, skills repositories.SkillRepository, raw string) ([]entities.Skill, error) {
	return skills.FindOrCreate(ctx, entities.NormalizeSkillNames(raw))
}

// Resolve canonicalizes search terms and returns only the skills that
// already exist; unknown names are dropped.
func (SkillNormalizer) Resolve(ctx context.Context, skills repositories.SkillRepository, terms []string) ([]entities.Skill, error) {
	names := entities.NormalizeSkillNames(strings.Join(terms, ","))
	if len(names) == 0 {
		return nil, nil
	}
	return skills.FindByNames(ctx, names)
}
