package session

import (
	"context"
	"log"
	"net/http"

	"github.com/copy2card/copy2card/internal/db/models"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession injects a verified session into the context. Tests use this to
// fabricate a logged-in caller without the OAuth flow.
func WithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext retrieves the verified session, if any.
func FromContext(ctx context.Context) (*models.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*models.Session)
	if !ok || sess == nil {
		return nil, false
	}
	return sess, true
}

// RequireAuth validates the session cookie and injects the session into the
// request context. Without a valid session every ledger endpoint answers 401
// with a null balance before touching storage.
func RequireAuth(manager *Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(CookieName); err == nil {
				token = cookie.Value
			}

			sess, err := manager.Lookup(r.Context(), token)
			if err != nil {
				log.Printf("session lookup failed: %v", err)
			}
			if sess == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"remainingCredits": null}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
