package interfaces

import (
	"context"

	"board-service/internal/application/command"
	"board-service/internal/application/common"
	"board-service/internal/application/query"
	"board-service/internal/domain/entities"
)

type UserService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	Refresh(ctx context.Context, refreshCommand *command.RefreshTokenCommand) (*command.RefreshTokenCommandResult, error)
	Logout(ctx context.Context, user *entities.User, logoutCommand *command.LogoutCommand) error
	ChangePassword(ctx context.Context, user *entities.User, changeCommand *command.ChangePasswordCommand) error
	GetProfile(ctx context.Context, user *entities.User) (*query.UserQueryResult, error)
	ChangeSubscription(ctx context.Context, admin *entities.User, changeCommand *command.ChangeSubscriptionCommand) (*query.UserQueryResult, error)
	CreateSuperuser(ctx context.Context, createCommand *command.CreateSuperuserCommand) (*common.UserResult, error)
	// Authenticate resolves an access token to an active user.
	Authenticate(ctx context.Context, accessToken string) (*entities.User, error)
}
