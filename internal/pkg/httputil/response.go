package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/pkg/logger"
)

// Response is the envelope every JSON endpoint returns. Message is for
// humans; Reason is a short machine-readable code callers can branch on.
type Response struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// JSON writes a JSON response with the given status code. Content-Type is
// set automatically. Encoding failures are logged, not surfaced.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

// OK writes a 200 envelope.
func OK(w http.ResponseWriter, message, reason string) {
	JSON(w, http.StatusOK, Response{Message: message, Reason: reason})
}

// Accepted writes a 202 envelope.
func Accepted(w http.ResponseWriter, message, reason string) {
	JSON(w, http.StatusAccepted, Response{Message: message, Reason: reason})
}

// Fail writes an error envelope with the given status. The message must
// never carry raw downstream detail; log that separately.
func Fail(w http.ResponseWriter, status int, message, reason string) {
	JSON(w, status, Response{Message: message, Reason: reason})
}

// Decode reads JSON from the request body into dst.
// Returns false and writes a 400 envelope if parsing fails.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Fail(w, http.StatusBadRequest, "invalid JSON body", "validation")
		return false
	}
	return true
}
