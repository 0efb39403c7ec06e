package handlers

import (
	"net/http"

	"github.com/copy2card/copy2card/internal/auth/session"
)

// LogoutHandler revokes the caller's session and clears the cookie.
// POST /auth/logout
func LogoutHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			_ = sessions.Revoke(r.Context(), cookie.Value)
		}
		session.ClearCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
