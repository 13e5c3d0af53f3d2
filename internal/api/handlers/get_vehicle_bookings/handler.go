package get_vehicle_bookings

import (
	"net/http"
	"strings"

	"github.com/parkease/parkease-backend/internal/api/handlers"
)

const msgVehicleNumberRequired = "vehicleNumber query parameter is required"

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

// Handle GET /api/v1/bookings?vehicleNumber=KA01AB1234
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleNumber := strings.TrimSpace(r.URL.Query().Get("vehicleNumber"))
	if vehicleNumber == "" {
		h.logger.Warn("GET /bookings - Missing vehicleNumber query parameter")
		handlers.RespondBadRequest(w, msgVehicleNumberRequired)
		return
	}

	result, err := h.service.GetForVehicle(r.Context(), vehicleNumber)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: vehicle=%q, error=%v", vehicleNumber, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings: vehicle=%q", len(result.Bookings), vehicleNumber)
	handlers.RespondJSON(w, http.StatusOK, result)
}
