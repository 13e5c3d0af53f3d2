package release_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkease/parkease-backend/internal/api/handlers"
	releaseSlot "github.com/parkease/parkease-backend/internal/usecase/release_slot"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
)

type Handler struct {
	useCase ReleaseSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/release - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.useCase.Execute(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, releaseSlot.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/release - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /admin/bookings/{id}/release - Failed to release slot: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/release - Slot released: booking_id=%d", bookingID)
	handlers.RespondNoContent(w)
}
