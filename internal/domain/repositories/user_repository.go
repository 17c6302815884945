package repositories

import (
	"context"

	"board-service/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id int64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// LockById reads the user and holds a row lock until the surrounding
	// transaction ends.
	LockById(ctx context.Context, id int64) (*entities.User, error)
	// UpdatePassword writes only the password hash.
	UpdatePassword(ctx context.Context, user *entities.ValidatedUser) error
	// UpdateSubscription writes only the subscription and returns the
	// stored user.
	UpdateSubscription(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
}
