package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) repositories.SkillRepository {
	return &SkillRepository{db: db}
}

// FindOrCreate inserts each name with insert-or-ignore semantics and then
// re-reads the rows, so concurrent creators converge on a single skill.
func (r *SkillRepository) FindOrCreate(ctx context.Context, names []string) ([]entities.Skill, error) {
	if len(names) == 0 {
		return []entities.Skill{}, nil
	}

	db := r.db.WithContext(ctx)
	for _, name := range names {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&SkillModel{Name: name}).Error
		if err != nil {
			return nil, err
		}
	}

	return r.FindByNames(ctx, names)
}

// FindByNames returns the existing skills among names, in the order given.
func (r *SkillRepository) FindByNames(ctx context.Context, names []string) ([]entities.Skill, error) {
	if len(names) == 0 {
		return []entities.Skill{}, nil
	}

	var skillModels []SkillModel
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&skillModels).Error; err != nil {
		return nil, err
	}

	byName := make(map[string]SkillModel, len(skillModels))
	for _, m := range skillModels {
		byName[m.Name] = m
	}
	skills := make([]entities.Skill, 0, len(skillModels))
	for _, name := range names {
		if m, ok := byName[name]; ok {
			skills = append(skills, entities.Skill{Id: m.Id, Name: m.Name})
		}
	}
	return skills, nil
}

func (r *SkillRepository) List(ctx context.Context) ([]entities.Skill, error) {
	var skillModels []SkillModel
	if err := r.db.WithContext(ctx).Order("name").Find(&skillModels).Error; err != nil {
		return nil, err
	}

	skills := make([]entities.Skill, 0, len(skillModels))
	for _, m := range skillModels {
		skills = append(skills, entities.Skill{Id: m.Id, Name: m.Name})
	}
	return skills, nil
}
