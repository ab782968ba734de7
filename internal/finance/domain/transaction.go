package domain

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentCash       = "cash"
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentBank       = "bank"

	maxDescriptionLength = 500
	amountScale          = 2
)

// NUMERIC(15,2) leaves 13 integer digits.
var maxAmount = decimal.New(1, 13)

type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   *uuid.UUID
	Type         string
	Amount       decimal.Decimal
	Description  *string
	PaymentType  *string
	UserCardID   *uuid.UUID
	IsFavorite   bool
	TransactedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TransactionInput struct {
	Type         string           `json:"type"`
	Amount       *decimal.Decimal `json:"amount"`
	Description  *string          `json:"description"`
	CategoryID   *uuid.UUID       `json:"category_id"`
	TransactedAt *time.Time       `json:"transacted_at"`
	PaymentType  *string          `json:"payment_type"`
	UserCardID   *uuid.UUID       `json:"user_card_id"`
}

type TransactionPatch struct {
	Type         Optional[string]          `json:"type"`
	Amount       Optional[decimal.Decimal] `json:"amount"`
	Description  Optional[string]          `json:"description"`
	CategoryID   Optional[uuid.UUID]       `json:"category_id"`
	TransactedAt Optional[time.Time]       `json:"transacted_at"`
	PaymentType  Optional[string]          `json:"payment_type"`
	UserCardID   Optional[uuid.UUID]       `json:"user_card_id"`
}

type TransactionRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Transaction, error)
	FindByID(ctx context.Context, userID, transactionID uuid.UUID) (*Transaction, error)
	Create(ctx context.Context, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) (int64, error)
	SetFavorite(ctx context.Context, userID, transactionID uuid.UUID, favorite bool, updatedAt time.Time) (int64, error)
	Delete(ctx context.Context, userID, transactionID uuid.UUID) (int64, error)
}

func IsValidPaymentType(t string) bool {
	switch t {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentBank:
		return true
	}
	return false
}

// NormalizeAmount rounds to two decimal places, half away from zero.
func NormalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(amountScale)
}

func validateAmount(amount decimal.Decimal) error {
	if NormalizeAmount(amount).Abs().GreaterThanOrEqual(maxAmount) {
		return errors.NewValidationError("Amount is out of range")
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLength {
		return errors.NewValidationError(fmt.Sprintf("Description must be at most %d characters", maxDescriptionLength))
	}
	return nil
}

func validatePaymentType(paymentType *string) error {
	if paymentType != nil && !IsValidPaymentType(*paymentType) {
		return errors.NewValidationError("Payment type must be 'cash', 'credit_card', 'debit_card' or 'bank'")
	}
	return nil
}

func (in TransactionInput) Validate() error {
	var ve errors.ValidationErrors
	if err := validateCategoryType(in.Type); err != nil {
		ve.Add(err)
	}
	if in.Amount == nil {
		ve.Add(errors.NewValidationError("Amount is required"))
	} else if err := validateAmount(*in.Amount); err != nil {
		ve.Add(err)
	}
	if in.TransactedAt == nil || in.TransactedAt.IsZero() {
		ve.Add(errors.NewValidationError("Transacted at is required"))
	}
	if err := validateDescription(in.Description); err != nil {
		ve.Add(err)
	}
	if err := validatePaymentType(in.PaymentType); err != nil {
		ve.Add(err)
	}
	return ve.ErrOrNil()
}

func (p TransactionPatch) Validate() error {
	var ve errors.ValidationErrors
	if p.Type.Set {
		if p.Type.Value == nil {
			ve.Add(errors.NewValidationError("Type cannot be null"))
		} else if err := validateCategoryType(*p.Type.Value); err != nil {
			ve.Add(err)
		}
	}
	if p.Amount.Set {
		if p.Amount.Value == nil {
			ve.Add(errors.NewValidationError("Amount cannot be null"))
		} else if err := validateAmount(*p.Amount.Value); err != nil {
			ve.Add(err)
		}
	}
	if p.TransactedAt.Set && (p.TransactedAt.Value == nil || p.TransactedAt.Value.IsZero()) {
		ve.Add(errors.NewValidationError("Transacted at cannot be null"))
	}
	if p.Description.Set {
		if err := validateDescription(p.Description.Value); err != nil {
			ve.Add(err)
		}
	}
	if p.PaymentType.Set {
		if err := validatePaymentType(p.PaymentType.Value); err != nil {
			ve.Add(err)
		}
	}
	return ve.ErrOrNil()
}

// Apply copies the present fields onto t. Call Validate first.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Type.Set && p.Type.Value != nil {
		t.Type = *p.Type.Value
	}
	if p.Amount.Set && p.Amount.Value != nil {
		t.Amount = NormalizeAmount(*p.Amount.Value)
	}
	if p.TransactedAt.Set && p.TransactedAt.Value != nil {
		t.TransactedAt = *p.TransactedAt.Value
	}
	if p.Description.Set {
		t.Description = p.Description.Value
	}
	if p.CategoryID.Set {
		t.CategoryID = p.CategoryID.Value
	}
	if p.PaymentType.Set {
		t.PaymentType = p.PaymentType.Value
	}
	if p.UserCardID.Set {
		t.UserCardID = p.UserCardID.Value
	}
}
