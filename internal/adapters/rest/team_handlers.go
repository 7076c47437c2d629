package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type TeamHandlers struct {
	teamUC usecases_port.ManageTeamUseCase
}

func NewTeamHandlers(teamUC usecases_port.ManageTeamUseCase) *TeamHandlers {
	return &TeamHandlers{teamUC: teamUC}
}

// ListTeam handles GET /api/team.
func (h *TeamHandlers) ListTeam(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	members, err := h.teamUC.List(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListTeam"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithData(w, http.StatusOK, members)
}

// GetTeamMember handles GET /api/team/{id}.
func (h *TeamHandlers) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	member, err := h.teamUC.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Team member not found")
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "GetTeamMember", "member_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithData(w, http.StatusOK, member)
}

// CreateTeamMember handles POST /api/team.
func (h *TeamHandlers) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidatePayload(contracts.TeamMemberSchema, body); err != nil {
		logger.Warn("Rejected team member payload", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req TeamMemberRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member := domain.TeamMember{
		Name:  derefOrEmpty(req.Name),
		Role:  derefOrEmpty(req.Role),
		Phone: derefOrEmpty(req.Phone),
		Email: derefOrEmpty(req.Email),
		Image: derefOrEmpty(req.Image),
	}

	created, err := h.teamUC.Create(r.Context(), member)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateTeamMember"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	logger.Info("Team member created", port.Fields{"member_id": created.ID})
	RespondWithData(w, http.StatusCreated, created)
}

// UpdateTeamMember handles PUT /api/team/{id}.
func (h *TeamHandlers) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req TeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := domain.TeamMemberPatch{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
		Email: req.Email,
		Image: req.Image,
	}

	updated, err := h.teamUC.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Team member not found")
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "UpdateTeamMember", "member_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	logger.Info("Team member updated", port.Fields{"member_id": id})
	RespondWithData(w, http.StatusOK, updated)
}

// DeleteTeamMember handles DELETE /api/team/{id}.
func (h *TeamHandlers) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.teamUC.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Team member not found")
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteTeamMember", "member_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	logger.Info("Team member deleted", port.Fields{"member_id": id})
	RespondWithMessage(w, http.StatusOK, "Team member deleted")
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
