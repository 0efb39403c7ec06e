package checkout

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/copy2card/copy2card/internal/db/models"
	"github.com/copy2card/copy2card/internal/ledger"
	"github.com/copy2card/copy2card/internal/util"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// completedEventType is the only notification that grants credits.
const completedEventType = "transaction.completed"

// Webhook processes signed server-to-server payment notifications. Unlike
// the in-browser completion callback, a grant here is tied to a verified
// signature and deduplicated by the provider's event id.
type Webhook struct {
	db     *gorm.DB
	ledger *ledger.Service
	secret string
	plans  []Plan
}

func NewWebhook(database *gorm.DB, ledgerSvc *ledger.Service, secret string, plans []Plan) *Webhook {
	return &Webhook{db: database, ledger: ledgerSvc, secret: secret, plans: plans}
}

// transactionEvent is the subset of the Paddle payload we act on.
type transactionEvent struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Data      struct {
		CustomData struct {
			UserID string `json:"user_id"`
		} `json:"custom_data"`
		Customer struct {
			Email string `json:"email"`
		} `json:"customer"`
		Items []struct {
			Price struct {
				ID string `json:"id"`
			} `json:"price"`
		} `json:"items"`
	} `json:"data"`
}

// Handler answers POST /api/checkout/webhook.
func (h *Webhook) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		if !VerifySignature(h.secret, r.Header.Get("Paddle-Signature"), body) {
			http.Error(w, "Invalid signature", http.StatusBadRequest)
			return
		}

		var event transactionEvent
		if err := json.Unmarshal(body, &event); err != nil || event.EventID == "" {
			http.Error(w, "Malformed payload", http.StatusBadRequest)
			return
		}

		if event.EventType != completedEventType {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
			return
		}

		applied, granted, err := h.process(r, event, body)
		if err != nil {
			log.Printf("⚠️  Webhook %s failed: %v payload=%s", event.EventID, err, util.TruncateBytes(body))
			http.Error(w, "Storage unavailable", http.StatusServiceUnavailable)
			return
		}
		if !applied {
			writeJSON(w, http.StatusOK, map[string]string{"status": "duplicate"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "processed", "credits": granted})
	}
}

// process records the event and grants credits at most once per event id.
func (h *Webhook) process(r *http.Request, event transactionEvent, payload []byte) (applied bool, granted int, err error) {
	record := models.WebhookEvent{
		Provider:        "paddle",
		ProviderEventID: event.EventID,
		EventType:       event.EventType,
		PayloadJSON:     string(payload),
	}
	res := h.db.WithContext(r.Context()).Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if res.Error != nil {
		return false, 0, fmt.Errorf("record webhook event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Replay of an event we already granted for.
		return false, 0, nil
	}

	userID, err := h.resolveUser(r, event)
	if err != nil {
		h.forget(&record)
		return false, 0, err
	}

	granted = h.grantAmount(event)
	if _, err := h.ledger.Add(r.Context(), userID, granted); err != nil {
		h.forget(&record)
		return false, 0, fmt.Errorf("grant credits: %w", err)
	}

	now := time.Now()
	if err := h.db.WithContext(r.Context()).Model(&record).Update("processed_at", &now).Error; err != nil {
		log.Printf("⚠️  Could not mark webhook %s processed: %v", event.EventID, err)
	}

	log.Printf("💳 Granted %d credits to %s for event %s", granted, userID, event.EventID)
	return true, granted, nil
}

// forget drops the dedup record of an event we failed to process, so the
// provider's retry is not mistaken for a replay of a successful grant.
func (h *Webhook) forget(record *models.WebhookEvent) {
	if err := h.db.Delete(record).Error; err != nil {
		log.Printf("⚠️  Could not release webhook event %s: %v", record.ProviderEventID, err)
	}
}

// resolveUser maps the notification to an account: the checkout carries our
// user id as custom data, with the customer email as fallback.
func (h *Webhook) resolveUser(r *http.Request, event transactionEvent) (string, error) {
	if id := event.Data.CustomData.UserID; id != "" {
		return id, nil
	}
	email := event.Data.Customer.Email
	if email == "" {
		return "", errors.New("event carries neither user id nor customer email")
	}
	var account models.Account
	err := h.db.WithContext(r.Context()).First(&account, "email = ?", email).Error
	if err != nil {
		return "", fmt.Errorf("no account for customer %s: %w", email, err)
	}
	return account.ID, nil
}

// grantAmount resolves the purchased plan's credit package.
func (h *Webhook) grantAmount(event transactionEvent) int {
	for _, item := range event.Data.Items {
		if plan, ok := PlanForPrice(h.plans, item.Price.ID); ok {
			return plan.Credits
		}
	}
	return ledger.CheckoutGrant
}

// VerifySignature checks the Paddle-Signature header (ts=...;h1=...) against
// an HMAC-SHA256 of "ts:body" under the shared webhook secret.
func VerifySignature(secret, header string, body []byte) bool {
	if secret == "" || header == "" {
		return false
	}

	var ts, h1 string
	for _, part := range strings.Split(header, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "h1":
			h1 = value
		}
	}
	if ts == "" || h1 == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte(":"))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(h1))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
