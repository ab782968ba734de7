package domain

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

const (
	CardTypeCredit = "credit_card"
	CardTypeDebit  = "debit_card"

	maxCardNameLength = 100
)

type Card struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          string
	Name          string
	MonthlyTarget *int
	CreatedAt     time.Time
}

type CardInput struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type CardPatch struct {
	MonthlyTarget Optional[int] `json:"monthly_target"`
}

type CardRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Card, error)
	FindByID(ctx context.Context, userID, cardID uuid.UUID) (*Card, error)
	ExistsForUser(ctx context.Context, userID, cardID uuid.UUID) (bool, error)
	Create(ctx context.Context, card *Card) error
	UpdateMonthlyTarget(ctx context.Context, userID, cardID uuid.UUID, target *int) (int64, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) (int64, error)
}

func (in CardInput) Validate() error {
	var ve errors.ValidationErrors
	if in.Type != CardTypeCredit && in.Type != CardTypeDebit {
		ve.Add(errors.NewValidationError("Type must be 'credit_card' or 'debit_card'"))
	}
	if in.Name == "" {
		ve.Add(errors.NewValidationError("Name is required"))
	} else if utf8.RuneCountInString(in.Name) > maxCardNameLength {
		ve.Add(errors.NewValidationError(fmt.Sprintf("Name must be at most %d characters", maxCardNameLength)))
	}
	return ve.ErrOrNil()
}

func (p CardPatch) Validate() error {
	if p.MonthlyTarget.Value == nil {
		return nil
	}
	if *p.MonthlyTarget.Value < 0 {
		return errors.NewValidationError("Monthly target must not be negative")
	}
	if *p.MonthlyTarget.Value > math.MaxInt32 {
		return errors.NewValidationError("Monthly target is out of range")
	}
	return nil
}
