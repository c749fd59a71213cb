// Package services implements the business logic for users, members,
// channels and contents. This file maps the classified repository errors to
// the HTTP-facing *resmsg.HTTPError returned by every service method.
//
// The mapping is total: each apperr.Kind has exactly one outcome, and errors
// that carry no kind are treated as Unexpected. Unexpected failures are
// logged with their original detail and surface to clients only as the fixed
// unexpected-error text.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/platcon/platcon-api/internal/apperr"
	"github.com/platcon/platcon-api/internal/resmsg"
)

// Entity describes how a resource is named in response messages.
type Entity[C any, U any] struct {
	// Label is the lowercase subject used in messages ("user").
	Label string
	// UniqueField names the column guarded by a unique index ("email").
	UniqueField string
	// RefLabel is the capitalised referenced entity ("User"). Empty when the
	// resource has no outgoing foreign key.
	RefLabel string

	// FKOfCreate and FKOfUpdate extract the referenced id(s) from a payload
	// for FKNotFound messages.
	FKOfCreate func(C) string
	FKOfUpdate func(U) string
}

func (e Entity[C, U]) fkOfCreate(in C) string {
	if e.FKOfCreate == nil {
		return ""
	}
	return e.FKOfCreate(in)
}

func (e Entity[C, U]) fkOfUpdate(in U) string {
	if e.FKOfUpdate == nil {
		return ""
	}
	return e.FKOfUpdate(in)
}

// toHTTPError converts a classified error for entity label into its
// client-facing form. id is the path id when the operation has one; fk is
// the referenced id taken from the payload.
func toHTTPError[C any, U any](ctx context.Context, e Entity[C, U], err error, id, fk string) *resmsg.HTTPError {
	var he *resmsg.HTTPError
	if errors.As(err, &he) {
		return he
	}

	switch apperr.KindOf(err) {
	case apperr.KindUniqueViolation:
		return resmsg.Conflict(resmsg.For(e.Label).Conflict(e.UniqueField).String())
	case apperr.KindFKViolation:
		if e.RefLabel != "" {
			if refs := apperr.RefsOf(err); len(refs) > 0 {
				fk = strings.Join(refs, ",")
			}
			return resmsg.NotFound(resmsg.For(e.Label).FKNotFound(e.RefLabel, fk).String())
		}
	case apperr.KindNotFound, apperr.KindUnaffected:
		return resmsg.NotFound(resmsg.For(e.Label, id).NotFound().String())
	case apperr.KindStateConflict:
		return resmsg.Conflict(resmsg.For(e.Label, id).Conflict().String())
	case apperr.KindValidation:
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Detail != "" {
			return resmsg.BadRequest(ae.Detail)
		}
	}

	log.Ctx(ctx).Error().
		Err(err).
		Str("entity", e.Label).
		Str("id", id).
		Msg("unexpected persistence error")
	return resmsg.Internal()
}

// failure records err on span and returns its HTTP form as an error.
func (s *CRUDService[T, C, U]) failure(ctx context.Context, span trace.Span, err error, id, fk string) error {
	he := toHTTPError(ctx, s.Entity, err, id, fk)
	span.RecordError(err)
	if he.Status >= 500 {
		span.SetStatus(codes.Error, he.Error())
	}
	return he
}
