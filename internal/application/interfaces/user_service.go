package interfaces

import (
	"context"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/domain/entities"
)

type UserService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	// Authenticate resolves a bearer token to the caller it was issued for.
	Authenticate(ctx context.Context, token string) (*entities.Caller, error)
}
