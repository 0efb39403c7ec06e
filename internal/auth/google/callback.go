package google

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/copy2card/copy2card/internal/auth/session"
	"github.com/copy2card/copy2card/internal/config"
	"github.com/copy2card/copy2card/internal/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HandleCallback processes the OAuth callback from Google: it exchanges the
// code, verifies the identity, upserts the Account row and starts a session.
func HandleCallback(cfg config.Config, database *gorm.DB, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Verify state token
		state := r.URL.Query().Get("state")
		if state != GetStateToken() {
			http.Error(w, "Invalid state token", http.StatusBadRequest)
			return
		}

		code := r.URL.Query().Get("code")
		oauthCfg := GetOAuthConfig(cfg, redirectURLFromRequest(r))

		token, err := oauthCfg.Exchange(context.Background(), code)
		if err != nil {
			http.Error(w, fmt.Sprintf("Token exchange failed: %v", err), http.StatusInternalServerError)
			return
		}

		// Fetch user info from Google
		client := oauthCfg.Client(context.Background(), token)
		resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get user info: %v", err), http.StatusInternalServerError)
			return
		}
		defer resp.Body.Close()

		var userInfo struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
			http.Error(w, fmt.Sprintf("Failed to decode user info: %v", err), http.StatusInternalServerError)
			return
		}
		if userInfo.Email == "" {
			http.Error(w, "Identity provider returned no email", http.StatusInternalServerError)
			return
		}

		// Save or update account, preserving the UUID of a returning user.
		var existing models.Account
		accountID := uuid.New().String()
		err = database.Where("email = ? AND provider = ?", userInfo.Email, "google").First(&existing).Error
		if err == nil {
			accountID = existing.ID
		}

		account := models.Account{
			ID:        accountID,
			Email:     userInfo.Email,
			Provider:  "google",
			Name:      userInfo.Name,
			LastLogin: time.Now(),
		}
		if err := database.Save(&account).Error; err != nil {
			http.Error(w, fmt.Sprintf("Failed to save account: %v", err), http.StatusInternalServerError)
			return
		}

		sess, err := sessions.Issue(r.Context(), account.ID, account.Email)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to create session: %v", err), http.StatusInternalServerError)
			return
		}
		session.SetCookie(w, sess)

		log.Printf("✅ %s signed in", account.Email)
		http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
	}
}
