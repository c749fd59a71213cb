package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"github.com/platcon/platcon-api/internal/domain"
)

// newTestDB opens a private in-memory database through OpenSQLite, so the
// pragmas and pool settings under test are the production ones. Passing no
// models skips migration.
func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

// newSchemaDB returns a database with the full schema.
func newSchemaDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newTestDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

// cheapHashing swaps bcrypt for a reversible marker for the duration of t.
func cheapHashing(t *testing.T) {
	t.Helper()
	orig := hashPassword
	hashPassword = func(plain string) (string, error) { return "hashed:" + plain, nil }
	t.Cleanup(func() { hashPassword = orig })
}

func strPtr(s string) *string { return &s }

func uri33() *string { return strPtr(gofakeit.LetterN(33)) }

func seedUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	cheapHashing(t)
	u, err := CreateUser(context.Background(), db, domain.CreateUserInput{
		Name:     gofakeit.Name(),
		Email:    gofakeit.UUID() + "@example.com",
		Password: gofakeit.Password(true, true, true, false, false, 12),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedMember(t *testing.T, db *gorm.DB, userID *string) *domain.Member {
	t.Helper()
	m, err := CreateMember(context.Background(), db, domain.CreateMemberInput{
		StageName:   "artist-" + gofakeit.UUID(),
		Description: gofakeit.Sentence(6),
		Website:     []string{gofakeit.URL()},
		UserID:      userID,
	})
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return m
}

func seedChannel(t *testing.T, db *gorm.DB, members ...string) *domain.Channel {
	t.Helper()
	ch, err := CreateChannel(context.Background(), db, domain.CreateChannelInput{
		Name:        "channel-" + gofakeit.UUID(),
		Description: gofakeit.Sentence(5),
		Tags:        []string{gofakeit.Word()},
		Members:     members,
	})
	if err != nil {
		t.Fatalf("seed channel: %v", err)
	}
	return ch
}

func seedContent(t *testing.T, db *gorm.DB, channelID string, body ...domain.ContentBodyInput) *domain.Content {
	t.Helper()
	c, err := CreateContent(context.Background(), db, domain.CreateContentInput{
		Title:       "content-" + gofakeit.UUID(),
		Description: gofakeit.Sentence(4),
		ChannelID:   channelID,
		Body:        body,
	})
	if err != nil {
		t.Fatalf("seed content: %v", err)
	}
	return c
}
