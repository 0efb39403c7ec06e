// Package google implements the OAuth login flow against the external
// identity provider. The rest of the app only ever sees the verified session
// this flow produces.
package google

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/copy2card/copy2card/internal/config"
	"golang.org/x/oauth2"
	googleOAuth "golang.org/x/oauth2/google"
)

// Scopes required to identify the signing-in user.
var Scopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// stateToken is used to protect against CSRF attacks
var stateToken string

func init() {
	b := make([]byte, 16)
	rand.Read(b)
	stateToken = hex.EncodeToString(b)
}

// GetStateToken returns the current CSRF state token for validation.
func GetStateToken() string {
	return stateToken
}

// GetOAuthConfig returns the OAuth2 config for Google authentication.
func GetOAuthConfig(cfg config.Config, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       Scopes,
		Endpoint:     googleOAuth.Endpoint,
	}
}

// redirectURLFromRequest reconstructs the callback URL from the incoming
// request so the flow works on any host/port without extra configuration.
func redirectURLFromRequest(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/auth/google/callback", scheme, r.Host)
}
