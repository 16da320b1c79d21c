package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avelichko/careernet/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error(context.Background(), "error encoding response", "error", err)
	}
}

// errorStatus maps a service error to an HTTP status and a client-facing
// message. Unrecognized errors collapse to a generic 500 so internals never
// leak.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrMissingFields):
		return http.StatusBadRequest, "All fields are required"
	case errors.Is(err, common.ErrInvalidEmailFormat):
		return http.StatusBadRequest, "Invalid email format"
	case errors.Is(err, common.ErrWeakPassword):
		return http.StatusBadRequest, "Password must be at least 6 characters long"
	case errors.Is(err, common.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, common.ErrDuplicateUsername):
		return http.StatusBadRequest, "Username already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, common.ErrSelfConnection):
		return http.StatusBadRequest, "Cannot connect with yourself"
	case errors.Is(err, common.ErrConnectionExists):
		return http.StatusBadRequest, "Connection already exists"
	case errors.Is(err, common.ErrConnectionNotPending):
		return http.StatusBadRequest, "Connection is not pending"
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, status, messageResponse{Message: msg})
}
