package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platcon/platcon-api/internal/domain"
)

// preloadContent loads the publishing channel and the body in order.
func preloadContent(q *gorm.DB) *gorm.DB {
	return q.Preload("Channel").Preload("Body", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// CreateContent inserts the content header and its body blocks in one
// transaction. An unknown channel_id yields FKViolation.
func CreateContent(ctx context.Context, db *gorm.DB, in domain.CreateContentInput) (*domain.Content, error) {
	now := time.Now().UTC()
	c := &domain.Content{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		ThumbURI:    in.ThumbURI,
		ChannelID:   in.ChannelID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := inTx(ctx, db, OpInsert, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
			return Classify(err, OpInsert)
		}
		body, err := insertBody(tx, c.ID, in.Body)
		if err != nil {
			return err
		}
		c.Body = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListContents returns all contents with channel and body.
func ListContents(ctx context.Context, db *gorm.DB) ([]domain.Content, error) {
	out := []domain.Content{}
	if err := preloadContent(db.WithContext(ctx)).Order(listOrder).Find(&out).Error; err != nil {
		return nil, Classify(err, OpList)
	}
	return out, nil
}

// ListContentsPage returns a window of contents with channel and body.
func ListContentsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Content, error) {
	out := []domain.Content{}
	if err := preloadContent(db.WithContext(ctx)).Order(listOrder).Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return nil, Classify(err, OpList)
	}
	return out, nil
}

// CountContents returns the number of contents.
func CountContents(ctx context.Context, db *gorm.DB) (int64, error) {
	return countAll[domain.Content](ctx, db)
}

// GetContent fetches a content by id with channel and body.
func GetContent(ctx context.Context, db *gorm.DB, id string) (*domain.Content, error) {
	var c domain.Content
	if err := preloadContent(db.WithContext(ctx)).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, Classify(err, OpFind)
	}
	return &c, nil
}

// UpdateContent applies the present header fields of in and, when Body is
// non-nil, replaces every body block. Both steps commit together; a missing
// content yields Unaffected before the body is touched.
func UpdateContent(ctx context.Context, db *gorm.DB, id string, in domain.UpdateContentInput) error {
	return inTx(ctx, db, OpUpdate, func(tx *gorm.DB) error {
		if err := updateColumns[domain.Content](ctx, tx, id, in.Columns()); err != nil {
			return err
		}
		if in.Body == nil {
			return nil
		}
		if err := tx.Where("content_id = ?", id).Delete(&domain.ContentBody{}).Error; err != nil {
			return Classify(err, OpUpdate)
		}
		_, err := insertBody(tx, id, in.Body)
		return err
	})
}

// DeleteContent removes a content; its body goes with it.
func DeleteContent(ctx context.Context, db *gorm.DB, id string) error {
	return inTx(ctx, db, OpDelete, func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&domain.ContentBody{}).Error; err != nil {
			return Classify(err, OpDelete)
		}
		return deleteByID[domain.Content](ctx, tx, id)
	})
}

func insertBody(tx *gorm.DB, contentID string, in []domain.ContentBodyInput) ([]domain.ContentBody, error) {
	rows := make([]domain.ContentBody, 0, len(in))
	for i, b := range in {
		typ := b.Type
		if typ == "" {
			typ = domain.ContentText
		}
		rows = append(rows, domain.ContentBody{
			ID:        uuid.NewString(),
			ContentID: contentID,
			Position:  i,
			Type:      typ,
			Value:     b.Value,
		})
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return nil, Classify(err, OpInsert)
	}
	return rows, nil
}
