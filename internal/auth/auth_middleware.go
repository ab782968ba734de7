package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/benefitbutler/backend/internal/user"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (s *service) JWTAccessTokenMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				writeJSONError(w, http.StatusUnauthorized, "Invalid token format")
				return
			}

			subject, err := s.jwtManager.ValidateAccessToken(tokenString)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			userID, err := uuid.Parse(subject)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			existingUser, err := s.resolveUser(r, userID)
			if err != nil {
				if errors.Is(err, ErrUserNotFound) {
					writeJSONError(w, http.StatusUnauthorized, "User not found")
					return
				}
				log.Printf("error resolving user %s: %v", userID, err)
				writeJSONError(w, http.StatusInternalServerError, ErrInternalError.Error())
				return
			}
			if !existingUser.IsActive {
				writeJSONError(w, http.StatusForbidden, "Account is inactive")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// resolveUser consults the cache first. Only active users are cached.
func (s *service) resolveUser(r *http.Request, userID uuid.UUID) (*user.User, error) {
	if s.userCache != nil {
		if cached, ok := s.userCache.Get(userID); ok {
			return cached, nil
		}
	}

	existingUser, err := s.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if s.userCache != nil && existingUser.IsActive {
		s.userCache.Set(existingUser)
	}
	return existingUser, nil
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}
