package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fitstore/fitstore-go/internal/model"
	"github.com/fitstore/fitstore-go/internal/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStore is an in-memory UserStore that mirrors the repository's
// sentinel errors and conditional reset-token consumption.
type fakeUserStore struct {
	users map[string]*model.User
	calls int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	f.calls++
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.calls++
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	f.calls++
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByResetToken(_ context.Context, token string, now time.Time) (*model.User, error) {
	f.calls++
	for _, user := range f.users {
		if user.ResetToken != nil && *user.ResetToken == token && !user.ResetTokenExpiry.Before(now) {
			return user, nil
		}
	}
	return nil, repository.ErrTokenNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	f.calls++
	var users []model.User
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserStore) SetResetToken(_ context.Context, userID, token string, expiry time.Time) error {
	f.calls++
	user, ok := f.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	return nil
}

func (f *fakeUserStore) ConsumeResetToken(_ context.Context, token, passwordHash string, now time.Time) error {
	f.calls++
	for _, user := range f.users {
		if user.ResetToken != nil && *user.ResetToken == token && !user.ResetTokenExpiry.Before(now) {
			user.PasswordHash = passwordHash
			user.ResetToken = nil
			user.ResetTokenExpiry = nil
			return nil
		}
	}
	return repository.ErrTokenNotFound
}

func (f *fakeUserStore) UpdatePermissions(_ context.Context, userID string, permissions []string) error {
	f.calls++
	user, ok := f.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Permissions = permissions
	return nil
}

// fakeMailer records reset mails and optionally fails.
type fakeMailer struct {
	to      string
	token   string
	sent    int
	sendErr error
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, to, token string) error {
	f.sent++
	f.to = to
	f.token = token
	return f.sendErr
}

// fakeItemStore is an in-memory ItemStore.
type fakeItemStore struct {
	items       map[string]*model.Item
	lastUpdate  model.ItemUpdate
	updateCalls int
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[string]*model.Item)}
}

func (f *fakeItemStore) Create(_ context.Context, item *model.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemStore) GetByID(_ context.Context, id string) (*model.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeItemStore) List(_ context.Context, skip, first int) ([]model.Item, error) {
	var items []model.Item
	for _, item := range f.items {
		items = append(items, *item)
	}
	if skip > len(items) {
		skip = len(items)
	}
	items = items[skip:]
	if first > 0 && first < len(items) {
		items = items[:first]
	}
	return items, nil
}

func (f *fakeItemStore) Count(_ context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakeItemStore) Update(_ context.Context, id string, upd model.ItemUpdate) error {
	f.updateCalls++
	f.lastUpdate = upd
	item, ok := f.items[id]
	if !ok {
		return repository.ErrItemNotFound
	}
	if upd.Title != nil {
		item.Title = *upd.Title
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Image != nil {
		item.Image = *upd.Image
	}
	if upd.LargeImage != nil {
		item.LargeImage = *upd.LargeImage
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	return nil
}

func (f *fakeItemStore) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}
