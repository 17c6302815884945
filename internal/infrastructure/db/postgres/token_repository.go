package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"board-service/internal/domain/repositories"
)

// TokenRepository keeps the refresh-token blacklist in the database. It is
// used when no redis server is configured.
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) repositories.TokenBlacklist {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	model := BlacklistedTokenModel{JTI: jti, ExpiresAt: expiresAt}
	err := conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error
	if err != nil {
		return translate(err, "token")
	}
	// Expired entries can never match a valid token again.
	return conn(ctx, r.db).Where("expires_at < ?", time.Now()).Delete(&BlacklistedTokenModel{}).Error
}

func (r *TokenRepository) Contains(ctx context.Context, jti string) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&BlacklistedTokenModel{}).Where("jti = ?", jti).Count(&n).Error
	return n > 0, err
}
