package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fitstore/fitstore-go/internal/crypto"
	"github.com/fitstore/fitstore-go/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// UserLoader resolves a user ID to a user.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// Session returns middleware that reads the session cookie, verifies its
// signature and attaches the resolved user to the request context. A
// missing cookie, an invalid token, or a user that no longer exists all
// leave the request anonymous; resolvers decide whether that is an error.
func Session(users UserLoader, secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := crypto.ValidateToken(cookie.Value, secret)
			if err != nil {
				logger.Warn("rejecting session cookie", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				logger.Warn("session user not resolvable", "user_id", userID, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a context carrying the given user identity.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the authenticated user from the request
// context. ok is false for anonymous requests.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}
