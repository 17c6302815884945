package command

import "board-service/internal/application/common"

type RegisterUserCommand struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type RegisterUserCommandResult struct {
	Token   *common.TokenResult `json:"token"`
	Message string              `json:"message"`
}

type ChangePasswordCommand struct {
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type ChangeSubscriptionCommand struct {
	UserId       int64  `json:"-"`
	Subscription string `json:"subscription"`
}

type CreateSuperuserCommand struct {
	Email    string
	Name     string
	Password string
}
