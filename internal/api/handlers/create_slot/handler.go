package create_slot

import (
	"errors"
	"net/http"

	"github.com/parkease/parkease-backend/internal/api/handlers"
	"github.com/parkease/parkease-backend/internal/service/slots"
	"github.com/parkease/parkease-backend/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotCodeExists     = "slot code already exists"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotCodeExists):
			h.logger.Warn("POST /admin/slots - Slot code exists: code=%q", req.Code)
			handlers.RespondConflict(w, msgSlotCodeExists)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/slots - Failed to create slot: code=%q, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: slot_id=%d, code=%q", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
