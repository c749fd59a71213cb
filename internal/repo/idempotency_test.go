package repo

import (
	"context"
	"testing"
	"time"

	"github.com/platcon/platcon-api/internal/apperr"
	"github.com/platcon/platcon-api/internal/domain"
)

func TestGetIdempotency_BlankKey_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	rec, err := GetIdempotency(context.Background(), db, "/api/v1/users", "   ", now)
	if rec != nil || !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected (nil, NotFound) for blank key, got (%v, %v)", rec, err)
	}
}

func TestGetIdempotency_ExpiredOrMissing_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	exp := &domain.Idempotency{
		ID:        "expired",
		Resource:  "/api/v1/users",
		Key:       "k1",
		EntityID:  "e1",
		Status:    201,
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	if err := db.Create(exp).Error; err != nil {
		t.Fatalf("seed expired: %v", err)
	}

	rec, err := GetIdempotency(context.Background(), db, "/api/v1/users", "k1", now)
	if rec != nil || !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected (nil, NotFound) for expired, got (%v, %v)", rec, err)
	}

	rec2, err2 := GetIdempotency(context.Background(), db, "/api/v1/users", "missing", now)
	if rec2 != nil || !apperr.Is(err2, apperr.KindNotFound) {
		t.Fatalf("expected (nil, NotFound) for missing, got (%v, %v)", rec2, err2)
	}
}

func TestGetIdempotency_ScopedByResource(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := CreateIdempotency(ctx, db, "/api/v1/members", "shared", "m1", 201, time.Hour); err != nil {
		t.Fatalf("seed members key: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, "/api/v1/channels", "shared", "c1", 201, time.Hour); err != nil {
		t.Fatalf("same key on another resource must be allowed: %v", err)
	}

	rec, err := GetIdempotency(ctx, db, "/api/v1/channels", "shared", now)
	if err != nil {
		t.Fatalf("GetIdempotency: %v", err)
	}
	if rec.EntityID != "c1" || rec.Status != 201 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestCreateIdempotency_SuccessAndDuplicate(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})

	ttl := 90 * time.Minute
	start := time.Now().UTC()

	rec, err := CreateIdempotency(context.Background(), db, "/api/v1/contents", "k9", "e9", 201, ttl)
	if err != nil {
		t.Fatalf("CreateIdempotency error: %v", err)
	}
	if rec == nil || rec.ID == "" || rec.Resource != "/api/v1/contents" || rec.Key != "k9" || rec.EntityID != "e9" || rec.Status != 201 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !(rec.ExpiresAt.After(start) && rec.ExpiresAt.Before(start.Add(2*time.Hour))) {
		t.Fatalf("unexpected ExpiresAt: %v", rec.ExpiresAt)
	}

	_, err2 := CreateIdempotency(context.Background(), db, "/api/v1/contents", "k9", "eX", 201, ttl)
	if err2 != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err2)
	}
}

// Generic DB error path: attempt insert without migrating the table.
func TestCreateIdempotency_Error_NoTable(t *testing.T) {
	db := newTestDB(t)
	_, err := CreateIdempotency(context.Background(), db, "/r", "kX", "eX", 201, time.Minute)
	if err == nil {
		t.Fatalf("expected error when table is missing")
	}
	if err == ErrDuplicate {
		t.Fatalf("expected non-duplicate error, got ErrDuplicate")
	}
	if !apperr.Is(err, apperr.KindUnexpected) {
		t.Fatalf("expected Unexpected kind, got %v", err)
	}
}

func TestPurgeIdempotency(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []domain.Idempotency{
		{ID: "old1", Resource: "/r", Key: "a", EntityID: "e", Status: 201, CreatedAt: now.Add(-3 * time.Hour), ExpiresAt: now.Add(-2 * time.Hour)},
		{ID: "old2", Resource: "/r", Key: "b", EntityID: "e", Status: 201, CreatedAt: now.Add(-3 * time.Hour), ExpiresAt: now.Add(-time.Minute)},
		{ID: "live", Resource: "/r", Key: "c", EntityID: "e", Status: 201, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := PurgeIdempotency(ctx, db, now)
	if err != nil {
		t.Fatalf("PurgeIdempotency: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 purged, got %d", n)
	}
	if _, err := GetIdempotency(ctx, db, "/r", "c", now); err != nil {
		t.Fatalf("live record should survive purge: %v", err)
	}
}
