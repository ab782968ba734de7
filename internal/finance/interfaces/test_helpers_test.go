package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/benefitbutler/backend/internal/auth"
	"github.com/google/uuid"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}

	if len(errors) > 0 && len(errors[0]) > 0 {
		payload["errors"] = errors[0]
	}

	respondJSON(w, status, payload)
}

var testUserID = uuid.MustParse("7d3f1c2a-5b4e-4f6a-9c8d-0e1f2a3b4c5d")

// newAuthedRequest builds a request that already passed the bearer middleware.
func newAuthedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(auth.WithUserID(req.Context(), testUserID))
}

// serve routes req through a mux so path values are populated.
func serve(pattern string, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.Handle(pattern, handler)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	json.NewDecoder(w.Body).Decode(&response)
	return response
}
