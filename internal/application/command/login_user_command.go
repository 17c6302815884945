package command

import "board-service/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Token   *common.TokenResult `json:"token"`
	Message string              `json:"message"`
}

type RefreshTokenCommand struct {
	Refresh string `json:"refresh"`
}

type RefreshTokenCommandResult struct {
	Access string `json:"access"`
}

type LogoutCommand struct {
	RefreshToken string `json:"refresh_token"`
}
