// Package ledger is the authoritative source of truth for download credits.
// All mutations are single clamped SQL statements, so two overlapping
// requests for the same user can never lose an update or persist a negative
// balance.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/copy2card/copy2card/internal/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// DefaultTopUp is granted when an add request carries no amount.
	DefaultTopUp = 10
	// CheckoutGrant is the credit package added per completed checkout.
	CheckoutGrant = 50
)

// ErrStorageUnavailable distinguishes a failing store from the perfectly
// valid "no balance row yet" state, which reads as zero.
var ErrStorageUnavailable = errors.New("credit storage unavailable")

// Service exposes the three ledger operations. User ids must come from a
// verified session, never from request input.
type Service struct {
	db *gorm.DB
}

func NewService(database *gorm.DB) *Service {
	return &Service{db: database}
}

// Get returns the user's current balance. A missing row is a valid zero
// balance and never creates one.
func (s *Service) Get(ctx context.Context, userID string) (int, error) {
	var row models.CreditBalance
	err := s.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return row.RemainingCredits, nil
}

// Add credits amount (clamped to >= 0) to the user's balance and returns the
// result. The first Add for a user creates the row at exactly amount; after
// that it is an atomic in-database increment, so concurrent adds both land.
// RETURNING hands back the balance the statement itself produced, with no
// separate read that a concurrent mutation could slip between.
func (s *Service) Add(ctx context.Context, userID string, amount int) (int, error) {
	if amount < 0 {
		amount = 0
	}

	row := models.CreditBalance{UserID: userID, RemainingCredits: amount}
	err := s.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"remaining_credits": gorm.Expr("remaining_credits + ?", amount),
				"updated_at":        time.Now(),
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "remaining_credits"}}},
	).Create(&row).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return row.RemainingCredits, nil
}

// Decrement spends one credit and returns the resulting balance. The update
// only fires while remaining_credits > 0, so the balance can never be driven
// below zero; with no row (or an already-zero balance) it is a no-op that
// reports zero. A failed write is also a no-op: the caller sees the
// last-known balance, never a partial debit.
func (s *Service) Decrement(ctx context.Context, userID string) (int, error) {
	var row models.CreditBalance
	res := s.db.WithContext(ctx).Model(&row).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "remaining_credits"}}}).
		Where("user_id = ? AND remaining_credits > 0", userID).
		UpdateColumns(map[string]interface{}{
			"remaining_credits": gorm.Expr("remaining_credits - 1"),
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		balance, err := s.Get(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, res.Error)
		}
		return balance, fmt.Errorf("%w: %v", ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		// No row, or a balance already at zero: nothing was spent.
		return 0, nil
	}

	return row.RemainingCredits, nil
}
