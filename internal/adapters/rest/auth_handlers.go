package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"listing-service/internal/core/usecase"
)

type AuthHandlers struct {
	authUC usecases_port.AuthUseCase
}

func NewAuthHandlers(authUC usecases_port.AuthUseCase) *AuthHandlers {
	return &AuthHandlers{authUC: authUC}
}

// Login handles POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		WriteJSONError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.authUC.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "Login"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	RespondWithData(w, http.StatusOK, map[string]string{"token": token})
}

// Validate handles GET /api/auth/validate: token introspection for the
// admin frontend.
func (h *AuthHandlers) Validate(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		WriteJSONError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	subject, err := h.authUC.Validate(token)
	if err != nil {
		WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	RespondWithData(w, http.StatusOK, map[string]string{"username": subject})
}
