package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/custodian/internal/logging"
	"github.com/erazemk/custodian/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// errorBody is the JSON shape of every error response. Code is set for
// errors raised by the store.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, errorBody{Error: message})
}

// storeError maps a store error code to an HTTP status and writes it.
func storeError(w http.ResponseWriter, msg string, err error) {
	code := store.ErrorCode(err)
	switch code {
	case store.CodeNotFound:
		jsonResponse(w, http.StatusNotFound, errorBody{Error: err.Error(), Code: code})
	case store.CodeValidationFailure:
		jsonResponse(w, http.StatusBadRequest, errorBody{Error: err.Error(), Code: code})
	default:
		logging.LogError(slog.Default(), msg, err)
		jsonResponse(w, http.StatusInternalServerError, errorBody{Error: msg, Code: code})
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// pathID parses a positive int64 path parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
