// Package tokenrepo persists opaque access tokens. Tokens are the redesigned
// replacement for an in-process session map: stored rows with explicit expiry,
// resolved against storage on each request and purged by a background job.
package tokenrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/errs"
)

// TokenDTO represents a stored access token.
type TokenDTO struct {
	Token     string    `gorm:"type:varchar(128);primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for access tokens.
func (TokenDTO) TableName() string {
	return "access_tokens"
}

// GormTokenRepository implements ports.TokenRepository using GORM.
type GormTokenRepository struct {
	db *gorm.DB
}

// NewGormTokenRepository creates a new GORM token repository.
func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// Add stores a freshly issued token.
func (r *GormTokenRepository) Add(ctx context.Context, token string, accountID kernel.UUID, expiresAt time.Time) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if err := accountID.Validate(); err != nil {
		return err
	}

	dto := TokenDTO{
		Token:     token,
		AccountID: accountID.Bytes(),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ResolveAccountID returns the owning account for a live token.
// Expired tokens resolve as not found even before the purge job removes them.
func (r *GormTokenRepository) ResolveAccountID(ctx context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("token")
	}

	var dto TokenDTO
	err := r.db.WithContext(ctx).
		First(&dto, "token = ? AND expires_at > ?", token, time.Now().UTC()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("token", "access token")
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.AccountID[:])
}

// Delete revokes a single token. Unknown tokens are not an error.
func (r *GormTokenRepository) Delete(ctx context.Context, token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	return r.db.WithContext(ctx).Delete(&TokenDTO{}, "token = ?", token).Error
}

// DeleteExpired removes every token whose expiry has passed.
func (r *GormTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&TokenDTO{}, "expires_at <= ?", now)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
