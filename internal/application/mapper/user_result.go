package mapper

import (
	"board-service/internal/application/common"
	"board-service/internal/domain/entities"
	"board-service/internal/infrastructure"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:           user.Id,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		Email:        user.Email,
		Name:         user.Name,
		Subscription: string(user.Subscription),
		IsAdmin:      user.IsAdmin,
	}
}

func NewUserResultFromValidatedEntity(validatedUser *entities.ValidatedUser) *common.UserResult {
	return NewUserResultFromEntity(validatedUser.GetUser())
}

func NewTokenResult(pair *infrastructure.TokenPair) *common.TokenResult {
	return &common.TokenResult{Refresh: pair.Refresh, Access: pair.Access}
}
