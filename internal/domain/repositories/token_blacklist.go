package repositories

import (
	"context"
	"time"
)

// TokenBlacklist remembers refresh tokens that were logged out.
type TokenBlacklist interface {
	Add(ctx context.Context, jti string, expiresAt time.Time) error
	Contains(ctx context.Context, jti string) (bool, error)
}
