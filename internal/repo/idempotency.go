package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platcon/platcon-api/internal/apperr"
	"github.com/platcon/platcon-api/internal/domain"
)

// ErrDuplicate indicates that an idempotency record already exists for the
// given (resource, key) pair.
var ErrDuplicate = errors.New("duplicate")

// GetIdempotency returns a non-expired record or a NotFound error.
func GetIdempotency(ctx context.Context, db *gorm.DB, resource, key string, now time.Time) (*domain.Idempotency, error) {
	if strings.TrimSpace(key) == "" {
		return nil, apperr.NotFound()
	}
	var rec domain.Idempotency
	err := db.WithContext(ctx).
		Where("resource = ? AND key = ? AND expires_at > ?", resource, key, now).
		First(&rec).Error
	if err != nil {
		return nil, Classify(err, OpFind)
	}
	return &rec, nil
}

// CreateIdempotency inserts a record and returns ErrDuplicate on a unique
// violation.
func CreateIdempotency(ctx context.Context, db *gorm.DB, resource, key, entityID string, status int, ttl time.Duration) (*domain.Idempotency, error) {
	now := time.Now().UTC()
	rec := &domain.Idempotency{
		ID:        uuid.NewString(),
		Resource:  resource,
		Key:       key,
		EntityID:  entityID,
		Status:    status,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		cerr := Classify(err, OpInsert)
		if apperr.Is(cerr, apperr.KindUniqueViolation) {
			return nil, ErrDuplicate
		}
		return nil, cerr
	}
	return rec, nil
}

// PurgeIdempotency deletes records that expired before now and returns how
// many were removed.
func PurgeIdempotency(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&domain.Idempotency{})
	if res.Error != nil {
		return 0, Classify(res.Error, OpDelete)
	}
	return res.RowsAffected, nil
}
