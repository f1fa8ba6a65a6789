package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bookingtrack/apperr"
	"bookingtrack/auth"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto HTTP statuses. Storage failures log
// the underlying cause but clients only see a stable safe message.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		writeJSON(w, http.StatusConflict, ApiResponse{Success: false, Message: err.Error()})
	default:
		log.Printf("storage error: %v", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "internal server error"})
	}
}

type contextKey string

const userContextKey contextKey = "user"

// WithUser attaches the authenticated claims to the request context.
func WithUser(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

// UserFrom returns the authenticated claims, or nil on unauthenticated routes.
func UserFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(userContextKey).(*auth.Claims)
	return claims
}

// actor is the identity stamped into created_by / last_updated_by.
func actor(r *http.Request) string {
	if claims := UserFrom(r.Context()); claims != nil {
		return claims.UserID
	}
	return ""
}
