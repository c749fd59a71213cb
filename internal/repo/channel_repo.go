package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platcon/platcon-api/internal/apperr"
	"github.com/platcon/platcon-api/internal/domain"
)

// CreateChannel inserts a channel and its memberships in one transaction.
// Every requested member must exist, otherwise FKViolation is returned and
// nothing is written.
func CreateChannel(ctx context.Context, db *gorm.DB, in domain.CreateChannelInput) (*domain.Channel, error) {
	now := time.Now().UTC()
	ch := &domain.Channel{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Tags:        domain.ListOf(in.Tags),
		LogoURI:     in.LogoURI,
		CoverURI:    in.CoverURI,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := inTx(ctx, db, OpInsert, func(tx *gorm.DB) error {
		members, err := requireMembers(tx, in.Members)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(ch).Error; err != nil {
			return Classify(err, OpInsert)
		}
		if err := insertMemberships(tx, ch.ID, in.Members); err != nil {
			return err
		}
		ch.Members = members
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// ListChannels returns all channels with their members.
func ListChannels(ctx context.Context, db *gorm.DB) ([]domain.Channel, error) {
	return listAll[domain.Channel](ctx, db, "Members")
}

// ListChannelsPage returns a window of channels with their members.
func ListChannelsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Channel, error) {
	return listPage[domain.Channel](ctx, db, offset, limit, "Members")
}

// CountChannels returns the number of channels.
func CountChannels(ctx context.Context, db *gorm.DB) (int64, error) {
	return countAll[domain.Channel](ctx, db)
}

// GetChannel fetches a channel by id with its members.
func GetChannel(ctx context.Context, db *gorm.DB, id string) (*domain.Channel, error) {
	return getByID[domain.Channel](ctx, db, id, "Members")
}

// UpdateChannel applies the present fields of in. A non-nil Members replaces
// the whole membership; the header update and the membership swap commit
// together. A missing channel is reported before unknown members.
func UpdateChannel(ctx context.Context, db *gorm.DB, id string, in domain.UpdateChannelInput) error {
	return inTx(ctx, db, OpUpdate, func(tx *gorm.DB) error {
		if err := updateColumns[domain.Channel](ctx, tx, id, in.Columns()); err != nil {
			return err
		}
		if in.Members == nil {
			return nil
		}
		if _, err := requireMembers(tx, in.Members); err != nil {
			return err
		}
		if err := tx.Where("channel_id = ?", id).Delete(&domain.ChannelMember{}).Error; err != nil {
			return Classify(err, OpUpdate)
		}
		return insertMemberships(tx, id, in.Members)
	})
}

// DeleteChannel removes a channel and its memberships in one transaction. A
// channel that still has contents yields StateConflict.
func DeleteChannel(ctx context.Context, db *gorm.DB, id string) error {
	return inTx(ctx, db, OpDelete, func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", id).Delete(&domain.ChannelMember{}).Error; err != nil {
			return Classify(err, OpDelete)
		}
		return deleteByID[domain.Channel](ctx, tx, id)
	})
}

// requireMembers loads the distinct members named by ids and fails with
// FKViolation, listing the ids that do not exist, unless all of them do.
func requireMembers(tx *gorm.DB, ids []string) ([]domain.Member, error) {
	uniq := dedupe(ids)
	if len(uniq) == 0 {
		return []domain.Member{}, nil
	}
	var found []domain.Member
	if err := tx.Where("id IN ?", uniq).Order(listOrder).Find(&found).Error; err != nil {
		return nil, Classify(err, OpCount)
	}
	if len(found) == len(uniq) {
		return found, nil
	}
	have := make(map[string]struct{}, len(found))
	for _, m := range found {
		have[m.ID] = struct{}{}
	}
	missing := make([]string, 0, len(uniq)-len(found))
	for _, id := range uniq {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return nil, apperr.MissingRefs("members", missing)
}

func insertMemberships(tx *gorm.DB, channelID string, memberIDs []string) error {
	uniq := dedupe(memberIDs)
	if len(uniq) == 0 {
		return nil
	}
	rows := make([]domain.ChannelMember, 0, len(uniq))
	for _, mid := range uniq {
		rows = append(rows, domain.ChannelMember{ChannelID: channelID, MemberID: mid})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return Classify(err, OpInsert)
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
