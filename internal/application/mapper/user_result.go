package mapper

import (
	"jobboard-service/internal/application/common"
	"jobboard-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		UserID:      user.Id,
		Email:       user.Email,
		IsEmployer:  user.IsEmployer(),
		CompanyName: user.CompanyName,
	}
}
