package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkease/parkease-backend/internal/api/handlers"
	deleteSlot "github.com/parkease/parkease-backend/internal/usecase/delete_slot"
)

const (
	msgInvalidSlotID    = "invalid slot id"
	msgSlotNotFound     = "slot not found"
	msgSlotHasConfirmed = "slot has confirmed bookings and cannot be deleted"
)

type Handler struct {
	useCase DeleteSlotUseCase
	logger  Logger
}

func NewHandler(useCase DeleteSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.useCase.Execute(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, deleteSlot.ErrSlotNotFound):
			h.logger.Warn("DELETE /admin/slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, deleteSlot.ErrSlotHasActiveBookings):
			h.logger.Warn("DELETE /admin/slots/{id} - Slot has confirmed bookings: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotHasConfirmed)

		default:
			h.logger.Error("DELETE /admin/slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/slots/{id} - Slot deleted: slot_id=%d", slotID)
	handlers.RespondNoContent(w)
}
