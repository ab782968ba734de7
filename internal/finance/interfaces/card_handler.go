package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/benefitbutler/backend/internal/auth"
	"github.com/benefitbutler/backend/internal/finance/domain"
	"github.com/google/uuid"
)

type CardServiceInterface interface {
	ListCards(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)
	CreateCard(ctx context.Context, userID uuid.UUID, in domain.CardInput) (*domain.Card, error)
	UpdateCard(ctx context.Context, userID, cardID uuid.UUID, patch domain.CardPatch) (*domain.Card, error)
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
}

type CardHandler struct {
	service      CardServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewCardHandler(service CardServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *CardHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CardHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cards, err := h.service.ListCards(r.Context(), userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve cards")
		return
	}

	response := make([]CardResponse, len(cards))
	for i, c := range cards {
		response[i] = toCardResponse(c)
	}
	h.respondJSON(w, http.StatusOK, success("Cards retrieved successfully.", response))
}

func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req domain.CardInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := h.service.CreateCard(r.Context(), userID, req)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create card")
		return
	}
	h.respondJSON(w, http.StatusCreated, success("Card successfully created.", toCardResponse(*card)))
}

func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cardID, ok := pathUUID(r, "cardID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Card not found")
		return
	}

	var req domain.CardPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := h.service.UpdateCard(r.Context(), userID, cardID, req)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update card")
		return
	}
	h.respondJSON(w, http.StatusOK, success("Card successfully updated.", toCardResponse(*card)))
}

func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cardID, ok := pathUUID(r, "cardID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Card not found")
		return
	}

	if err := h.service.DeleteCard(r.Context(), userID, cardID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete card")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
