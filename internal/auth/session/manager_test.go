package session

import (
	"context"
	"testing"
	"time"

	"github.com/copy2card/copy2card/internal/db/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := database.AutoMigrate(&models.Session{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewManager(database)
}

func TestIssueAndLookup(t *testing.T) {
	m := newTestManager(t)
	userID := uuid.New().String()

	sess, err := m.Issue(context.Background(), userID, "ada@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("issued session has empty token")
	}

	found, err := m.Lookup(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found == nil {
		t.Fatal("expected session, got nil")
	}
	if found.UserID != userID || found.Email != "ada@example.com" {
		t.Fatalf("unexpected session %+v", found)
	}
}

func TestLookupUnknownToken(t *testing.T) {
	m := newTestManager(t)

	found, err := m.Lookup(context.Background(), "deadbeef")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found != nil {
		t.Fatalf("expected nil for unknown token, got %+v", found)
	}
}

func TestLookupExpiredSession(t *testing.T) {
	m := newTestManager(t)

	sess, err := m.Issue(context.Background(), uuid.New().String(), "old@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := m.db.Model(&models.Session{}).Where("token = ?", sess.Token).
		Update("expires_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("expire session: %v", err)
	}

	found, err := m.Lookup(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found != nil {
		t.Fatal("expired session must not validate")
	}
}

func TestRevoke(t *testing.T) {
	m := newTestManager(t)

	sess, err := m.Issue(context.Background(), uuid.New().String(), "gone@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := m.Revoke(context.Background(), sess.Token); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	found, err := m.Lookup(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found != nil {
		t.Fatal("revoked session must not validate")
	}
}
