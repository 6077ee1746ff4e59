package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := UserModel{
		CreatedAt:   userEntity.CreatedAt,
		Email:       userEntity.Email,
		Password:    userEntity.Password,
		IsEmployer:  userEntity.IsEmployer(),
		CompanyName: userEntity.CompanyName,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, translate(err, "User already exists")
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindById(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:          userModel.Id,
		CreatedAt:   userModel.CreatedAt,
		Email:       userModel.Email,
		Password:    userModel.Password,
		Role:        entities.RoleFromFlag(userModel.IsEmployer),
		CompanyName: userModel.CompanyName,
	}
}
