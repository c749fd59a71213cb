// Package services – CRUDService
//
// This file implements the generic service shared by every resource. It
// delegates persistence to a Repo, then converts the classified repository
// error into the HTTP-facing *resmsg.HTTPError the handlers write verbatim.
// Success messages for update and delete are built here as well, so the
// wording of every response lives in one layer.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// carry the entity label and, where applicable, the id and pagination
// parameters.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/platcon/platcon-api/internal/resmsg"
)

// Changeset is implemented by update payloads. Changes returns the value
// embedded in the "updated successfully, where: ..." message.
type Changeset interface {
	Changes() any
}

// Repo defines the repository contract required by CRUDService for an
// entity T created from C and updated from U.
type Repo[T any, C any, U Changeset] interface {
	// Create inserts a new row built from in.
	Create(ctx context.Context, db *gorm.DB, in C) (*T, error)

	// List returns all rows (non-paginated).
	List(ctx context.Context, db *gorm.DB) ([]T, error)

	// ListPage returns a window of rows.
	ListPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]T, error)

	// Count returns the total number of rows for pagination.
	Count(ctx context.Context, db *gorm.DB) (int64, error)

	// Get fetches a row by id.
	Get(ctx context.Context, db *gorm.DB, id string) (*T, error)

	// Update applies in to the row id.
	Update(ctx context.Context, db *gorm.DB, id string, in U) error

	// Delete removes the row id.
	Delete(ctx context.Context, db *gorm.DB, id string) error

	// Stats returns the row count and latest updated_at, used for ETags.
	Stats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error)
}

// CRUDService provides create, read, update and delete for one entity.
type CRUDService[T any, C any, U Changeset] struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the repository used by this service.
	Repo Repo[T, C, U]
	// Entity describes the labels and foreign keys used in messages.
	Entity Entity[C, U]

	// DefaultPageSize applies when FindPage receives a non-positive size.
	DefaultPageSize int
}

// NewCRUDService constructs a CRUDService with the default page size.
func NewCRUDService[T any, C any, U Changeset](db *gorm.DB, r Repo[T, C, U], e Entity[C, U]) *CRUDService[T, C, U] {
	return &CRUDService[T, C, U]{
		DB:              db,
		Repo:            r,
		Entity:          e,
		DefaultPageSize: 20,
	}
}

func (s *CRUDService[T, C, U]) span(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tr := otel.Tracer("services/CRUDService")
	attrs = append(attrs, attribute.String("entity", s.Entity.Label))
	return tr.Start(ctx, op, trace.WithAttributes(attrs...))
}

// Create inserts a new entity built from in.
func (s *CRUDService[T, C, U]) Create(ctx context.Context, in C) (*T, error) {
	ctx, span := s.span(ctx, "Create")
	defer span.End()

	out, err := s.Repo.Create(ctx, s.DB, in)
	if err != nil {
		return nil, s.failure(ctx, span, err, "", s.Entity.fkOfCreate(in))
	}
	return out, nil
}

// FindAll returns every entity.
func (s *CRUDService[T, C, U]) FindAll(ctx context.Context) ([]T, error) {
	ctx, span := s.span(ctx, "FindAll")
	defer span.End()

	out, err := s.Repo.List(ctx, s.DB)
	if err != nil {
		return nil, s.failure(ctx, span, err, "", "")
	}
	return out, nil
}

// FindPage returns a page of entities plus the total count. Invalid page or
// size values fall back to page 1 and DefaultPageSize.
func (s *CRUDService[T, C, U]) FindPage(ctx context.Context, page, pageSize int) ([]T, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.DefaultPageSize
	}
	ctx, span := s.span(ctx, "FindPage",
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	)
	defer span.End()

	total, err := s.Repo.Count(ctx, s.DB)
	if err != nil {
		return nil, 0, s.failure(ctx, span, err, "", "")
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	items, err := s.Repo.ListPage(ctx, s.DB, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, s.failure(ctx, span, err, "", "")
	}
	return items, total, nil
}

// FindOne returns the entity id.
func (s *CRUDService[T, C, U]) FindOne(ctx context.Context, id string) (*T, error) {
	ctx, span := s.span(ctx, "FindOne", attribute.String("id", id))
	defer span.End()

	out, err := s.Repo.Get(ctx, s.DB, id)
	if err != nil {
		return nil, s.failure(ctx, span, err, id, "")
	}
	return out, nil
}

// Update applies in to the entity id and returns the success message.
func (s *CRUDService[T, C, U]) Update(ctx context.Context, id string, in U) (resmsg.Message, error) {
	ctx, span := s.span(ctx, "Update", attribute.String("id", id))
	defer span.End()

	if err := s.Repo.Update(ctx, s.DB, id, in); err != nil {
		return resmsg.Message{}, s.failure(ctx, span, err, id, s.Entity.fkOfUpdate(in))
	}
	return resmsg.For(s.Entity.Label, id).Updated(in.Changes()), nil
}

// Remove deletes the entity id and returns the success message.
func (s *CRUDService[T, C, U]) Remove(ctx context.Context, id string) (resmsg.Message, error) {
	ctx, span := s.span(ctx, "Remove", attribute.String("id", id))
	defer span.End()

	if err := s.Repo.Delete(ctx, s.DB, id); err != nil {
		return resmsg.Message{}, s.failure(ctx, span, err, id, "")
	}
	return resmsg.For(s.Entity.Label, id).Deleted(), nil
}

// Stats returns the collection's row count and latest update time.
func (s *CRUDService[T, C, U]) Stats(ctx context.Context) (int64, *time.Time, error) {
	ctx, span := s.span(ctx, "Stats")
	defer span.End()

	n, latest, err := s.Repo.Stats(ctx, s.DB)
	if err != nil {
		return 0, nil, s.failure(ctx, span, err, "", "")
	}
	return n, latest, nil
}
