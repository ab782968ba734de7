package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/benefitbutler/backend/internal/auth"
	"github.com/benefitbutler/backend/internal/finance/domain"
	"github.com/google/uuid"
)

type TransactionServiceInterface interface {
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, userID uuid.UUID, in domain.TransactionInput) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, patch domain.TransactionPatch) (*domain.Transaction, error)
	SetFavorite(ctx context.Context, userID, transactionID uuid.UUID, favorite bool) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.service.ListTransactions(r.Context(), userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(t)
	}
	h.respondJSON(w, http.StatusOK, success("Transactions retrieved successfully.", response))
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req domain.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.CreateTransaction(r.Context(), userID, req)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create transaction")
		return
	}
	h.respondJSON(w, http.StatusCreated, success("Transaction successfully created.", toTransactionResponse(*transaction)))
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, ok := pathUUID(r, "transactionID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	transaction, err := h.service.GetTransaction(r.Context(), userID, transactionID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, success("Transaction retrieved successfully.", toTransactionResponse(*transaction)))
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, ok := pathUUID(r, "transactionID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	var req domain.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.UpdateTransaction(r.Context(), userID, transactionID, req)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, success("Transaction successfully updated.", toTransactionResponse(*transaction)))
}

func (h *TransactionHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, ok := pathUUID(r, "transactionID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	var req struct {
		IsFavorite *bool `json:"is_favorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsFavorite == nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body - is_favorite is required")
		return
	}

	transaction, err := h.service.SetFavorite(r.Context(), userID, transactionID, *req.IsFavorite)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, success("Favorite flag updated.", toTransactionResponse(*transaction)))
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, ok := pathUUID(r, "transactionID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), userID, transactionID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
