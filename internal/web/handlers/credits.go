// Package handlers wires the HTTP surface: the credit API consumed by the
// dashboard, the payment webhook route and the HTML pages.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/copy2card/copy2card/internal/auth/session"
	"github.com/copy2card/copy2card/internal/ledger"
)

// creditsResponse is the wire shape of every credit endpoint. A null
// RemainingCredits means "unknown": no session, or the store failed.
type creditsResponse struct {
	RemainingCredits *int `json:"remainingCredits"`
}

func writeCredits(w http.ResponseWriter, status int, balance *int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(creditsResponse{RemainingCredits: balance})
}

// GetCreditsHandler returns the caller's balance.
// GET /api/credits/get
func GetCreditsHandler(ledgerSvc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		sess, ok := session.FromContext(r.Context())
		if !ok {
			writeCredits(w, http.StatusUnauthorized, nil)
			return
		}

		balance, err := ledgerSvc.Get(r.Context(), sess.UserID)
		if err != nil {
			// Unknown balance; the policy treats null conservatively.
			log.Printf("⚠️  Get credits for %s: %v", sess.UserID, err)
			writeCredits(w, http.StatusOK, nil)
			return
		}
		writeCredits(w, http.StatusOK, &balance)
	}
}

// AddCreditsHandler tops up the caller's balance. An empty body or absent
// amount uses the policy default, negative amounts clamp to zero in the
// ledger, and a body that is present but unparseable answers 400.
// POST /api/credits/add {"amount": n?}
func AddCreditsHandler(ledgerSvc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		sess, ok := session.FromContext(r.Context())
		if !ok {
			writeCredits(w, http.StatusUnauthorized, nil)
			return
		}

		amount := ledger.DefaultTopUp
		var body struct {
			Amount *int `json:"amount"`
		}
		switch err := json.NewDecoder(r.Body).Decode(&body); {
		case errors.Is(err, io.EOF):
			// No body at all: keep the default.
		case err != nil:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "malformed JSON body"})
			return
		case body.Amount != nil:
			amount = *body.Amount
		}

		balance, err := ledgerSvc.Add(r.Context(), sess.UserID, amount)
		if err != nil {
			log.Printf("⚠️  Add credits for %s: %v", sess.UserID, err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "credit storage unavailable"})
			return
		}
		writeCredits(w, http.StatusOK, &balance)
	}
}

// DecrementCreditsHandler spends one credit on a download. An exhausted or
// missing balance stays at zero, and a failed write degrades to a no-op with
// the last-known balance; the user never sees a lost credit.
// POST /api/credits/decrement
func DecrementCreditsHandler(ledgerSvc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		sess, ok := session.FromContext(r.Context())
		if !ok {
			writeCredits(w, http.StatusUnauthorized, nil)
			return
		}

		balance, err := ledgerSvc.Decrement(r.Context(), sess.UserID)
		if err != nil {
			log.Printf("⚠️  Decrement credits for %s: %v", sess.UserID, err)
		}
		writeCredits(w, http.StatusOK, &balance)
	}
}
