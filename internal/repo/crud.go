// Package repo implements the data persistence layer for domain entities,
// backed by GORM.
//
// All functions are context-aware free functions taking a *gorm.DB, so they
// compose with transactions. Every error they return has been passed through
// Classify: callers only ever see *apperr.Error values, never driver errors.
//
// Listing order is deterministic: created_at ASC, id ASC.
package repo

import (
	"context"

	"gorm.io/gorm"
)

const listOrder = "created_at ASC, id ASC"

func withPreloads(q *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		q = q.Preload(p)
	}
	return q
}

// listAll returns every row of T.
func listAll[T any](ctx context.Context, db *gorm.DB, preloads ...string) ([]T, error) {
	out := []T{}
	q := withPreloads(db.WithContext(ctx), preloads)
	if err := q.Order(listOrder).Find(&out).Error; err != nil {
		return nil, Classify(err, OpList)
	}
	return out, nil
}

// listPage returns a window of T. The caller computes offset and limit.
func listPage[T any](ctx context.Context, db *gorm.DB, offset, limit int, preloads ...string) ([]T, error) {
	out := []T{}
	q := withPreloads(db.WithContext(ctx), preloads)
	if err := q.Order(listOrder).Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return nil, Classify(err, OpList)
	}
	return out, nil
}

// countAll returns the number of rows of T.
func countAll[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return 0, Classify(err, OpCount)
	}
	return total, nil
}

// getByID fetches one T or returns NotFound.
func getByID[T any](ctx context.Context, db *gorm.DB, id string, preloads ...string) (*T, error) {
	var out T
	q := withPreloads(db.WithContext(ctx), preloads)
	if err := q.Where("id = ?", id).First(&out).Error; err != nil {
		return nil, Classify(err, OpFind)
	}
	return &out, nil
}

// updateColumns applies cols to the row id. updated_at is always written, so
// an empty change set still affects an existing row; Unaffected therefore
// means the row does not exist.
func updateColumns[T any](ctx context.Context, db *gorm.DB, id string, cols map[string]any) error {
	set := make(map[string]any, len(cols)+1)
	for k, v := range cols {
		set[k] = v
	}
	set["updated_at"] = db.NowFunc()
	res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(set)
	return Check(res, OpUpdate)
}

// deleteByID removes the row id.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	return Check(res, OpDelete)
}

// inTx runs fn inside a transaction and classifies whatever escapes it.
func inTx(ctx context.Context, db *gorm.DB, op Op, fn func(tx *gorm.DB) error) error {
	return Classify(db.WithContext(ctx).Transaction(fn), op)
}
