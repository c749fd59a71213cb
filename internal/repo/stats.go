package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/platcon/platcon-api/internal/domain"
)

// Stats returns aggregate metadata for the rows of T: the total number of
// rows and the greatest UpdatedAt. The HTTP layer derives list ETags from
// it. When the table is empty, count is 0 and maxUpdatedAt is nil.
func Stats[T any](ctx context.Context, db *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	return tableStats(ctx, db, new(T), true)
}

// MemberStats folds the channels and memberships a member listing preloads
// into the member stats, so a change to either moves the result.
func MemberStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	return combinedStats(ctx, db, &domain.Member{}, &domain.Channel{})
}

// ChannelStats is MemberStats seen from the channel side.
func ChannelStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	return combinedStats(ctx, db, &domain.Channel{}, &domain.Member{})
}

// ContentStats folds in the channels embedded in each content.
func ContentStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	count, latest, err := tableStats(ctx, db, &domain.Content{}, true)
	if err != nil {
		return 0, nil, err
	}
	n, at, err := tableStats(ctx, db, &domain.Channel{}, true)
	if err != nil {
		return 0, nil, err
	}
	return count + n, later(latest, at), nil
}

// combinedStats adds the membership row count to the stats of owner and
// related. Membership rows carry no timestamp, so only their count counts.
func combinedStats(ctx context.Context, db *gorm.DB, owner, related any) (int64, *time.Time, error) {
	count, latest, err := tableStats(ctx, db, owner, true)
	if err != nil {
		return 0, nil, err
	}
	n, at, err := tableStats(ctx, db, related, true)
	if err != nil {
		return 0, nil, err
	}
	links, _, err := tableStats(ctx, db, &domain.ChannelMember{}, false)
	if err != nil {
		return 0, nil, err
	}
	return count + n + links, later(latest, at), nil
}

func tableStats(ctx context.Context, db *gorm.DB, model any, withLatest bool) (count int64, maxUpdatedAt *time.Time, err error) {
	if err = db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, nil, Classify(err, OpCount)
	}
	if count == 0 || !withLatest {
		return count, nil, nil
	}

	// Latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = db.WithContext(ctx).Model(model).Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, Classify(err, OpList)
	}
	return count, &row.UpdatedAt, nil
}

func later(a, b *time.Time) *time.Time {
	if a == nil || (b != nil && b.After(*a)) {
		return b
	}
	return a
}
