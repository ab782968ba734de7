package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/benefitbutler/backend/internal/auth"
	"github.com/benefitbutler/backend/internal/finance/domain"
	"github.com/google/uuid"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	CreateCategory(ctx context.Context, userID uuid.UUID, in domain.CategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewCategoryHandler(service CategoryServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.ListCategories(r.Context(), userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = toCategoryResponse(c)
	}
	h.respondJSON(w, http.StatusOK, success("Categories retrieved successfully.", response))
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req domain.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), userID, req)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create category")
		return
	}
	h.respondJSON(w, http.StatusCreated, success("Category successfully created.", toCategoryResponse(*category)))
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, ok := pathUUID(r, "categoryID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	category, err := h.service.GetCategory(r.Context(), userID, categoryID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve category")
		return
	}
	h.respondJSON(w, http.StatusOK, success("Category retrieved successfully.", toCategoryResponse(*category)))
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, ok := pathUUID(r, "categoryID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	var req domain.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), userID, categoryID, req)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update category")
		return
	}
	h.respondJSON(w, http.StatusOK, success("Category successfully updated.", toCategoryResponse(*category)))
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, ok := pathUUID(r, "categoryID")
	if !ok {
		h.respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
