package service

import (
	"context"
	"time"

	"github.com/fitstore/fitstore-go/internal/model"
)

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error
	ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) error
	UpdatePermissions(ctx context.Context, userID string, permissions []string) error
}

// ItemStore persists items.
type ItemStore interface {
	Create(ctx context.Context, item *model.Item) error
	GetByID(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context, skip, first int) ([]model.Item, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id string, upd model.ItemUpdate) error
	Delete(ctx context.Context, id string) error
}

// ResetMailer delivers password-reset notifications.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}
