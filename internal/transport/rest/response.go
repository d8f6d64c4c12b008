package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

// maxBodyBytes bounds request bodies. Drafts are capped far below this by
// the service, so anything larger is rejected before decoding finishes.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// errorStatus maps a domain error to an HTTP status and response body.
func errorStatus(err error) (int, errorResponse) {
	var re *domain.ResponseError
	switch {
	case errors.Is(err, domain.ErrEmptyInput), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrBudgetExceeded):
		return http.StatusTooManyRequests, errorResponse{Error: err.Error()}
	case errors.As(err, &re):
		return http.StatusBadGateway, errorResponse{Error: err.Error(), Stage: re.Stage, Raw: re.Raw}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
	}
}

func logError(log *slog.Logger, r *http.Request, status int, err error) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.Log(r.Context(), level, "request failed",
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
}
