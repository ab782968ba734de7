package interfaces

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

type RespondJSONFunc func(w http.ResponseWriter, status int, payload interface{})
type RespondErrorFunc func(w http.ResponseWriter, status int, message string, errors ...[]string)

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     *string   `json:"color"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

type TransactionResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Type         string     `json:"type"`
	Amount       string     `json:"amount"`
	Description  *string    `json:"description"`
	PaymentType  *string    `json:"payment_type"`
	UserCardID   *uuid.UUID `json:"user_card_id"`
	IsFavorite   bool       `json:"is_favorite"`
	TransactedAt time.Time  `json:"transacted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CardResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	MonthlyTarget *int      `json:"monthly_target"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      c.Type,
		Color:     c.Color,
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
	}
}

func toTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		CategoryID:   t.CategoryID,
		Type:         t.Type,
		Amount:       t.Amount.StringFixed(2),
		Description:  t.Description,
		PaymentType:  t.PaymentType,
		UserCardID:   t.UserCardID,
		IsFavorite:   t.IsFavorite,
		TransactedAt: t.TransactedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toCardResponse(c domain.Card) CardResponse {
	return CardResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		Type:          c.Type,
		Name:          c.Name,
		MonthlyTarget: c.MonthlyTarget,
		CreatedAt:     c.CreatedAt,
	}
}

func success(message string, data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status":  "success",
		"message": message,
		"data":    data,
	}
}

// respondServiceError maps a manager error onto its HTTP status. Unclassified
// errors are logged and answered with fallback.
func respondServiceError(respondError RespondErrorFunc, w http.ResponseWriter, err error, fallback string) {
	var validationErrors *financeErrors.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		respondError(w, http.StatusBadRequest, "Validation errors occurred", validationErrors.Messages())
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeErrors.ErrNotFound):
		respondError(w, http.StatusNotFound, financeErrors.Message(err))
	case errors.Is(err, financeErrors.ErrForbidden):
		respondError(w, http.StatusForbidden, financeErrors.Message(err))
	case errors.Is(err, financeErrors.ErrLimitExceeded):
		respondError(w, http.StatusBadRequest, financeErrors.Message(err))
	default:
		log.Printf("%s: %v", fallback, err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
