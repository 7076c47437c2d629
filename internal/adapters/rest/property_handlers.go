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

// relatedLimit is how many related listings the detail page shows.
const relatedLimit = 4

type PropertyHandlers struct {
	listUC    usecases_port.ListPropertiesUseCase
	getUC     usecases_port.GetPropertyUseCase
	relatedUC usecases_port.GetRelatedPropertiesUseCase
	createUC  usecases_port.CreatePropertyUseCase
	updateUC  usecases_port.UpdatePropertyUseCase
	deleteUC  usecases_port.DeletePropertyUseCase
}

func NewPropertyHandlers(
	listUC usecases_port.ListPropertiesUseCase,
	getUC usecases_port.GetPropertyUseCase,
	relatedUC usecases_port.GetRelatedPropertiesUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
) *PropertyHandlers {
	return &PropertyHandlers{
		listUC:    listUC,
		getUC:     getUC,
		relatedUC: relatedUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
	}
}

// ListProperties handles GET /api/properties.
func (h *PropertyHandlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	filters, page, limit := ParseListingQuery(r.URL.Query())

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "ListProperties",
		"page":    page,
		"limit":   limit,
	})

	result, err := h.listUC.Execute(r.Context(), filters, page, limit)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	handlerLogger.Info("Listing page served", port.Fields{
		"total":         result.Total,
		"items_on_page": len(result.Data),
	})
	RespondWithData(w, http.StatusOK, result)
}

// GetProperty handles GET /api/properties/{id}.
func (h *PropertyHandlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	property, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "GetProperty", "property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithData(w, http.StatusOK, property)
}

// GetRelatedProperties handles GET /api/properties/{id}/related.
func (h *PropertyHandlers) GetRelatedProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	related, err := h.relatedUC.Execute(r.Context(), id, relatedLimit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "GetRelatedProperties", "property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	RespondWithData(w, http.StatusOK, related)
}

// CreateProperty handles POST /api/properties.
func (h *PropertyHandlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidatePayload(contracts.PropertyCreateSchema, body); err != nil {
		logger.Warn("Rejected create payload", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req PropertyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.createUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateProperty"})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	logger.Info("Property created", port.Fields{"property_id": created.ID})
	RespondWithData(w, http.StatusCreated, created)
}

// UpdateProperty handles PUT /api/properties/{id}.
func (h *PropertyHandlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidatePayload(contracts.PropertyPatchSchema, body); err != nil {
		logger.Warn("Rejected update payload", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req PropertyPatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "UpdateProperty", "property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	logger.Info("Property updated", port.Fields{"property_id": id})
	RespondWithData(w, http.StatusOK, updated)
}

// DeleteProperty handles DELETE /api/properties/{id}.
func (h *PropertyHandlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteProperty", "property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	logger.Info("Property deleted", port.Fields{"property_id": id})
	RespondWithMessage(w, http.StatusOK, "Property deleted")
}
