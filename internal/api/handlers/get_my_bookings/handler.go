package get_my_bookings

import (
	"net/http"

	"github.com/parkease/parkease-backend/internal/api/handlers"
	"github.com/parkease/parkease-backend/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetForDriver(r.Context(), identity.DriverName)
	if err != nil {
		h.logger.Error("GET /bookings/my - Failed to list bookings: driver=%q, error=%v",
			identity.DriverName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/my - Listed %d bookings: driver=%q", len(result.Bookings), identity.DriverName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
