package graphql

import (
	"context"
	"net/http"
	"time"

	"github.com/fitstore/fitstore-go/internal/middleware"
)

// sessionMaxAge matches the cookie lifetime on every issuance path:
// signup, signin and password reset all hand out a one-year cookie.
const sessionMaxAge = 365 * 24 * time.Hour

type responseWriterKey struct{}

// WithResponseWriter stashes the ResponseWriter in the request context so
// resolvers can set and clear the session cookie.
func WithResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), responseWriterKey{}, w)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func responseWriter(ctx context.Context) (http.ResponseWriter, bool) {
	w, ok := ctx.Value(responseWriterKey{}).(http.ResponseWriter)
	return w, ok
}

func setSessionCookie(ctx context.Context, token string) {
	w, ok := responseWriter(ctx)
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionMaxAge.Seconds()),
	})
}

func clearSessionCookie(ctx context.Context) {
	w, ok := responseWriter(ctx)
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
