package interfaces

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
)

type pathParamKey string

var notFoundMessages = map[string]string{
	"categoryID":    "Category not found",
	"transactionID": "Transaction not found",
	"cardID":        "Card not found",
}

// ValidatePathParamsMiddleware parses the named path parameters as UUIDs.
// A malformed id is answered like an unknown one.
func ValidatePathParamsMiddleware(respondError RespondErrorFunc, next http.Handler, params ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, param := range params {
			paramValue := r.PathValue(param)
			if paramValue == "" {
				respondError(w, http.StatusBadRequest, fmt.Sprintf("%s is required", param))
				return
			}

			parsedUUID, err := uuid.Parse(paramValue)
			if err != nil {
				log.Printf("[PathParams_Middleware] %s is invalid: %q", param, paramValue)
				if message, ok := notFoundMessages[param]; ok {
					respondError(w, http.StatusNotFound, message)
					return
				}
				respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s format", param))
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(param), parsedUUID))
		}
		next.ServeHTTP(w, r)
	})
}

// pathUUID returns a parameter validated by ValidatePathParamsMiddleware,
// falling back to parsing the raw path value.
func pathUUID(r *http.Request, param string) (uuid.UUID, bool) {
	if id, ok := r.Context().Value(pathParamKey(param)).(uuid.UUID); ok {
		return id, true
	}
	id, err := uuid.Parse(r.PathValue(param))
	return id, err == nil
}
