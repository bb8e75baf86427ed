package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"printmill-be/internal/logger"
	"printmill-be/internal/order"
	"printmill-be/internal/pricing"
	"printmill-be/internal/session"
	"printmill-be/internal/upload"
	"printmill-be/internal/user"

	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps domain errors onto the HTTP taxonomy:
// authentication failures are 401, cart validation failures are 400 naming
// the offending line, ownership misses are 404 and indistinguishable from
// orders that do not exist.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *pricing.ValidationError

	switch {
	case errors.Is(err, session.ErrUnauthenticated):
		respondError(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, user.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, user.ErrAccountExists):
		respondError(w, http.StatusBadRequest, "Account already exists")
	case errors.Is(err, order.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, order.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, user.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, upload.ErrFileNotFound), errors.Is(err, upload.ErrInvalidFilename):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
