package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"board-service/internal/application/command"
	"board-service/internal/application/common"
	"board-service/internal/application/interfaces"
	"board-service/internal/application/mapper"
	"board-service/internal/application/query"
	"board-service/internal/domain"
	"board-service/internal/domain/entities"
	"board-service/internal/domain/repositories"
	"board-service/internal/infrastructure"
)

type UserService struct {
	userRepo   repositories.UserRepository
	blacklist  repositories.TokenBlacklist
	jwtService *infrastructure.JWTService
	logger     *log.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	blacklist repositories.TokenBlacklist,
	jwtService *infrastructure.JWTService,
	logger *log.Logger,
) interfaces.UserService {
	return &UserService{
		userRepo:   userRepo,
		blacklist:  blacklist,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *UserService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if registerCommand.Password != registerCommand.Password2 {
		return nil, domain.Validationf("password and confirm password don't match")
	}

	// Check if user already exists
	email := entities.NormalizeEmail(registerCommand.Email)
	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.Validationf("user with this email already exists")
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(entities.NewUser(email, registerCommand.Name, registerCommand.Password))
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "user", createdUser.Id)

	pair, err := s.jwtService.GenerateTokenPair(createdUser.Id)
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		Token:   mapper.NewTokenResult(pair),
		Message: "Registration successful",
	}, nil
}

func (s *UserService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, entities.NormalizeEmail(loginCommand.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || user.CheckPassword(loginCommand.Password) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(user.Id)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token:   mapper.NewTokenResult(pair),
		Message: "Login success",
	}, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshCommand *command.RefreshTokenCommand) (*command.RefreshTokenCommandResult, error) {
	claims, err := s.jwtService.ParseToken(refreshCommand.Refresh, infrastructure.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("token is blacklisted: %w", domain.ErrUnauthenticated)
	}

	userID, _ := claims.UserID()
	if _, err := s.activeUser(ctx, userID); err != nil {
		return nil, err
	}

	access, err := s.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	return &command.RefreshTokenCommandResult{Access: access}, nil
}

func (s *UserService) Logout(ctx context.Context, user *entities.User, logoutCommand *command.LogoutCommand) error {
	if logoutCommand.RefreshToken == "" {
		return domain.Validationf("enter refresh token")
	}

	claims, err := s.jwtService.ParseToken(logoutCommand.RefreshToken, infrastructure.TokenTypeRefresh)
	if err != nil {
		return domain.Validationf("incorrect refresh token")
	}
	if owner, _ := claims.UserID(); owner != user.Id {
		return domain.Validationf("incorrect refresh token")
	}

	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.blacklist.Add(ctx, claims.ID, expiresAt); err != nil {
		return err
	}
	s.logger.Debug("refresh token blacklisted", "user", user.Id, "jti", claims.ID)
	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, user *entities.User, changeCommand *command.ChangePasswordCommand) error {
	current, err := s.userRepo.FindById(ctx, user.Id)
	if err != nil {
		return err
	}
	validatedUser, err := entities.NewValidatedUser(current)
	if err != nil {
		return err
	}
	if err := validatedUser.ChangePassword(changeCommand.Password, changeCommand.Password2); err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, validatedUser)
}

func (s *UserService) GetProfile(ctx context.Context, user *entities.User) (*query.UserQueryResult, error) {
	current, err := s.userRepo.FindById(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(current)}, nil
}

func (s *UserService) ChangeSubscription(ctx context.Context, admin *entities.User, changeCommand *command.ChangeSubscriptionCommand) (*query.UserQueryResult, error) {
	if admin == nil || !admin.IsAdmin {
		return nil, domain.ErrNotAuthorized
	}

	subscription, ok := entities.ParseSubscription(changeCommand.Subscription)
	if !ok {
		return nil, domain.Validationf("%q is not a valid subscription", changeCommand.Subscription)
	}

	user, err := s.userRepo.FindById(ctx, changeCommand.UserId)
	if err != nil {
		return nil, err
	}
	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}
	if err := validatedUser.ChangeSubscription(subscription); err != nil {
		return nil, err
	}
	updated, err := s.userRepo.UpdateSubscription(ctx, validatedUser)
	if err != nil {
		return nil, err
	}
	s.logger.Info("subscription changed", "user", updated.Id, "subscription", updated.Subscription, "by", admin.Id)

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(updated)}, nil
}

func (s *UserService) CreateSuperuser(ctx context.Context, createCommand *command.CreateSuperuserCommand) (*common.UserResult, error) {
	user := entities.NewUser(createCommand.Email, createCommand.Name, createCommand.Password)
	user.PromoteToAdmin()

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	_, err = s.userRepo.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return nil, domain.Validationf("user with this email already exists")
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}
	return mapper.NewUserResultFromEntity(createdUser), nil
}

func (s *UserService) Authenticate(ctx context.Context, accessToken string) (*entities.User, error) {
	claims, err := s.jwtService.ParseToken(accessToken, infrastructure.TokenTypeAccess)
	if err != nil {
		return nil, err
	}
	userID, _ := claims.UserID()
	return s.activeUser(ctx, userID)
}

func (s *UserService) activeUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", domain.ErrUnauthenticated)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("user is inactive: %w", domain.ErrUnauthenticated)
	}
	return user, nil
}
