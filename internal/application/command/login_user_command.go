package command

import "jobboard-service/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUserCommandResult struct {
	Token string `json:"token"`
	*common.UserResult
}
