package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platcon/platcon-api/internal/apperr"
	"github.com/platcon/platcon-api/internal/domain"
)

// hashPassword is swappable so tests can avoid bcrypt's cost.
var hashPassword = func(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateUser inserts a user with a hashed password. Role defaults to "user".
func CreateUser(ctx context.Context, db *gorm.DB, in domain.CreateUserInput) (*domain.User, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, apperr.Unexpected(err.Error())
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	now := time.Now().UTC()
	u := &domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		Role:      role,
		AvatarURI: in.AvatarURI,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(u).Error; err != nil {
		return nil, Classify(err, OpInsert)
	}
	return u, nil
}

// ListUsers returns all users.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	return listAll[domain.User](ctx, db)
}

// ListUsersPage returns a window of users.
func ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	return listPage[domain.User](ctx, db, offset, limit)
}

// CountUsers returns the number of users.
func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return countAll[domain.User](ctx, db)
}

// GetUser fetches a user by id.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return getByID[domain.User](ctx, db, id)
}

// UpdateUser applies the present fields of in. A new password is hashed
// before it is stored.
func UpdateUser(ctx context.Context, db *gorm.DB, id string, in domain.UpdateUserInput) error {
	cols := in.Columns()
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return apperr.Unexpected(err.Error())
		}
		cols["password"] = hash
	}
	return updateColumns[domain.User](ctx, db, id, cols)
}

// DeleteUser removes a user. A user still backing a member yields
// StateConflict.
func DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	return deleteByID[domain.User](ctx, db, id)
}
