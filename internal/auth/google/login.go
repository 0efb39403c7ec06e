package google

import (
	"net/http"

	"github.com/copy2card/copy2card/internal/config"
	"golang.org/x/oauth2"
)

// HandleLogin initiates the Google OAuth flow by redirecting to the consent
// page. With no provider credentials configured the feature is degraded and
// the route answers 503.
func HandleLogin(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.GoogleEnabled() {
			http.Error(w, "Sign-in is not configured. Set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET.", http.StatusServiceUnavailable)
			return
		}

		oauthCfg := GetOAuthConfig(cfg, redirectURLFromRequest(r))
		url := oauthCfg.AuthCodeURL(stateToken, oauth2.AccessTypeOnline)
		http.Redirect(w, r, url, http.StatusTemporaryRedirect)
	}
}
