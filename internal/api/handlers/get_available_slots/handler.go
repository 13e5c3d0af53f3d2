package get_available_slots

import (
	"net/http"

	"github.com/parkease/parkease-backend/internal/api/handlers"
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

// Handle GET /api/v1/slots/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAvailable(r.Context())
	if err != nil {
		h.logger.Error("GET /slots/available - Failed to list available slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/available - Listed %d available slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
