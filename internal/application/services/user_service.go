package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/interfaces"
	"jobboard-service/internal/application/mapper"
	"jobboard-service/internal/domain"
	"jobboard-service/internal/domain/entities"
	"jobboard-service/internal/domain/repositories"
)

type UserService struct {
	store        repositories.Store
	tokens       interfaces.TokenService
	profiles     interfaces.ProfileCache
	loginLimiter interfaces.Limiter
	profileTTL   time.Duration
	log          logrus.FieldLogger
}

func NewUserService(
	store repositories.Store,
	tokens interfaces.TokenService,
	profiles interfaces.ProfileCache,
	loginLimiter interfaces.Limiter,
	profileTTL time.Duration,
	log logrus.FieldLogger,
) interfaces.UserService {
	return &UserService{
		store:        store,
		tokens:       tokens,
		profiles:     profiles,
		loginLimiter: loginLimiter,
		profileTTL:   profileTTL,
		log:          log,
	}
}

func (s *UserService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// Check if user already exists
	existingUser, err := s.store.Users().FindByEmail(ctx, strings.TrimSpace(registerCommand.Email))
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.Conflict("User already exists")
	}

	newUser := entities.NewUser(
		registerCommand.Email,
		registerCommand.Password,
		entities.RoleFromFlag(registerCommand.IsEmployer),
		registerCommand.CompanyName,
	)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	// The unique index still guards against a concurrent registration.
	createdUser, err := s.store.Users().Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": createdUser.Id,
		"role":    createdUser.Role,
	}).Info("user registered")

	return &command.RegisterUserCommandResult{
		Message: "User created successfully",
		UserID:  createdUser.Id,
	}, nil
}

func (s *UserService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	email := strings.TrimSpace(loginCommand.Email)

	if s.loginLimiter != nil && !s.loginLimiter.Allow(strings.ToLower(email)) {
		return nil, domain.RateLimited("Too many login attempts, please try again later")
	}

	user, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthenticated("Invalid credentials")
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, domain.Unauthenticated("Invalid credentials")
	}

	token, err := s.tokens.GenerateToken(user.Id)
	if err != nil {
		return nil, err
	}

	s.cacheProfile(ctx, entities.NewCallerFromUser(user))

	return &command.LoginUserCommandResult{
		Token:      token,
		UserResult: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) Authenticate(ctx context.Context, token string) (*entities.Caller, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.Unauthenticated("Token is missing")
	}

	userID, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, domain.Wrap(domain.KindAuthentication, "Token is invalid", err)
	}

	// First, try the profile cache
	if s.profiles != nil {
		cached, err := s.profiles.GetProfile(ctx, userID)
		if err != nil {
			s.log.WithError(err).Warn("profile cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.store.Users().FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthenticated("Token is invalid")
	}

	caller := entities.NewCallerFromUser(user)
	s.cacheProfile(ctx, caller)
	return &caller, nil
}

func (s *UserService) cacheProfile(ctx context.Context, caller entities.Caller) {
	if s.profiles == nil {
		return
	}
	if err := s.profiles.SetProfile(ctx, caller, s.profileTTL); err != nil {
		s.log.WithError(err).WithField("user_id", caller.UserID).Warn("failed to cache user profile")
	}
}
