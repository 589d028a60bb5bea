package graphql

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gql "github.com/graphql-go/graphql"

	"github.com/fitstore/fitstore-go/internal/middleware"
	"github.com/fitstore/fitstore-go/internal/model"
	"github.com/fitstore/fitstore-go/internal/repository"
	"github.com/fitstore/fitstore-go/internal/service"
)

// In-memory stores backing the executable schema under test.

type memUserStore struct {
	users map[string]*model.User
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserStore) GetByResetToken(_ context.Context, token string, now time.Time) (*model.User, error) {
	for _, u := range m.users {
		if u.ResetToken != nil && *u.ResetToken == token && !u.ResetTokenExpiry.Before(now) {
			return u, nil
		}
	}
	return nil, repository.ErrTokenNotFound
}

func (m *memUserStore) List(_ context.Context) ([]model.User, error) {
	var users []model.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *memUserStore) SetResetToken(_ context.Context, userID, token string, expiry time.Time) error {
	u, ok := m.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	return nil
}

func (m *memUserStore) ConsumeResetToken(_ context.Context, token, passwordHash string, now time.Time) error {
	for _, u := range m.users {
		if u.ResetToken != nil && *u.ResetToken == token && !u.ResetTokenExpiry.Before(now) {
			u.PasswordHash = passwordHash
			u.ResetToken = nil
			u.ResetTokenExpiry = nil
			return nil
		}
	}
	return repository.ErrTokenNotFound
}

func (m *memUserStore) UpdatePermissions(_ context.Context, userID string, permissions []string) error {
	u, ok := m.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Permissions = permissions
	return nil
}

type memItemStore struct {
	items map[string]*model.Item
}

func (m *memItemStore) Create(_ context.Context, item *model.Item) error {
	m.items[item.ID] = item
	return nil
}

func (m *memItemStore) GetByID(_ context.Context, id string) (*model.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return item, nil
}

func (m *memItemStore) List(_ context.Context, skip, first int) ([]model.Item, error) {
	var items []model.Item
	for _, item := range m.items {
		items = append(items, *item)
	}
	return items, nil
}

func (m *memItemStore) Count(_ context.Context) (int, error) {
	return len(m.items), nil
}

func (m *memItemStore) Update(_ context.Context, id string, upd model.ItemUpdate) error {
	item, ok := m.items[id]
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

func (m *memItemStore) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

type memMailer struct {
	token string
}

func (m *memMailer) SendPasswordReset(_ context.Context, to, token string) error {
	m.token = token
	return nil
}

type testEnv struct {
	schema gql.Schema
	users  *memUserStore
	items  *memItemStore
	mailer *memMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := &memUserStore{users: make(map[string]*model.User)}
	items := &memItemStore{items: make(map[string]*model.Item)}
	mailer := &memMailer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	resolver := &Resolver{
		Auth:  service.NewAuthService(users, mailer, "schema-secret", logger),
		Items: service.NewItemService(items, logger),
		Users: users,
	}
	schema, err := NewSchema(resolver)
	if err != nil {
		t.Fatalf("NewSchema() unexpected error: %v", err)
	}

	return &testEnv{schema: schema, users: users, items: items, mailer: mailer}
}

func (e *testEnv) do(ctx context.Context, query string) *gql.Result {
	return gql.Do(gql.Params{
		Schema:        e.schema,
		RequestString: query,
		Context:       ctx,
	})
}

func (e *testEnv) seedUser(id string, permissions ...string) *model.User {
	user := &model.User{
		ID:          id,
		Name:        "Seed " + id,
		Email:       id + "@example.com",
		Permissions: permissions,
	}
	e.users.users[id] = user
	return user
}

func (e *testEnv) seedItem(id, ownerID string) *model.Item {
	item := &model.Item{
		ID:          id,
		Title:       "Item " + id,
		Description: "A fine item",
		Price:       1999,
		UserID:      ownerID,
	}
	e.items.items[id] = item
	return item
}

func asUser(user *model.User) context.Context {
	return middleware.WithUser(context.Background(), user)
}

func recordingContext() (context.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	ctx := context.WithValue(context.Background(), responseWriterKey{}, http.ResponseWriter(rec))
	return ctx, rec
}

func data(t *testing.T, result *gql.Result) map[string]interface{} {
	t.Helper()
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	return result.Data.(map[string]interface{})
}

func errCode(t *testing.T, result *gql.Result) string {
	t.Helper()
	if len(result.Errors) == 0 {
		t.Fatal("expected an error, got none")
	}
	code, _ := result.Errors[0].Extensions["code"].(string)
	return code
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}
