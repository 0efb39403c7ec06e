// Package session manages server-side login sessions. Handlers never read
// identity from request input; they read the Session the middleware verified
// and injected into the request context.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/copy2card/copy2card/internal/db/models"
	"gorm.io/gorm"
)

const (
	// CookieName carries the session token in the browser.
	CookieName = "copy2card_session"
	// TTL after which a session stops validating.
	TTL = 30 * 24 * time.Hour
)

// Manager issues and validates sessions backed by the database.
type Manager struct {
	db *gorm.DB
}

func NewManager(database *gorm.DB) *Manager {
	return &Manager{db: database}
}

// Issue creates a session for a verified identity and returns it.
func (m *Manager) Issue(ctx context.Context, userID, email string) (*models.Session, error) {
	b := make([]byte, 16)
	rand.Read(b)

	sess := models.Session{
		Token:     hex.EncodeToString(b),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(TTL),
	}
	if err := m.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &sess, nil
}

// Lookup returns the session for a cookie token, or nil when the token is
// unknown or expired.
func (m *Manager) Lookup(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}
	var sess models.Session
	err := m.db.WithContext(ctx).First(&sess, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}
	return &sess, nil
}

// Revoke deletes the session behind a token. Unknown tokens are a no-op.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.db.WithContext(ctx).Delete(&models.Session{}, "token = ?", token).Error
}

// SetCookie writes the session cookie on a login response.
func SetCookie(w http.ResponseWriter, sess *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on logout.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
