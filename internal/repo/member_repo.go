package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platcon/platcon-api/internal/domain"
)

// CreateMember inserts a member. An unknown user_id yields FKViolation.
func CreateMember(ctx context.Context, db *gorm.DB, in domain.CreateMemberInput) (*domain.Member, error) {
	now := time.Now().UTC()
	m := &domain.Member{
		ID:          uuid.NewString(),
		StageName:   in.StageName,
		Description: in.Description,
		AvatarURI:   in.AvatarURI,
		Website:     domain.ListOf(in.Website),
		UserID:      in.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, Classify(err, OpInsert)
	}
	return m, nil
}

// ListMembers returns all members with their channels.
func ListMembers(ctx context.Context, db *gorm.DB) ([]domain.Member, error) {
	return listAll[domain.Member](ctx, db, "Channels")
}

// ListMembersPage returns a window of members with their channels.
func ListMembersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Member, error) {
	return listPage[domain.Member](ctx, db, offset, limit, "Channels")
}

// CountMembers returns the number of members.
func CountMembers(ctx context.Context, db *gorm.DB) (int64, error) {
	return countAll[domain.Member](ctx, db)
}

// GetMember fetches a member by id with its channels.
func GetMember(ctx context.Context, db *gorm.DB, id string) (*domain.Member, error) {
	return getByID[domain.Member](ctx, db, id, "Channels")
}

// UpdateMember applies the present fields of in.
func UpdateMember(ctx context.Context, db *gorm.DB, id string, in domain.UpdateMemberInput) error {
	return updateColumns[domain.Member](ctx, db, id, in.Columns())
}

// DeleteMember removes a member and its channel memberships in one
// transaction.
func DeleteMember(ctx context.Context, db *gorm.DB, id string) error {
	return inTx(ctx, db, OpDelete, func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", id).Delete(&domain.ChannelMember{}).Error; err != nil {
			return Classify(err, OpDelete)
		}
		return deleteByID[domain.Member](ctx, tx, id)
	})
}
