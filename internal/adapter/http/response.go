package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var formatErr *domain.ReportFormatError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrJobNotFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrJobNotReady):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUploadTooLarge), errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrInvalidSource),
		errors.Is(err, validation.ErrUnsupportedExt),
		errors.Is(err, validation.ErrDisallowedFileType),
		errors.As(err, &formatErr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeServiceError hides internal failures behind a generic message and
// logs them; client errors are echoed back.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error.Printf("%s: %v", op, err)
		writeError(w, status, "internal server error")
		return
	}
	writeError(w, status, err.Error())
}
