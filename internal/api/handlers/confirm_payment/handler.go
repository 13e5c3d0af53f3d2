package confirm_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkease/parkease-backend/internal/api/handlers"
	confirmPayment "github.com/parkease/parkease-backend/internal/usecase/confirm_payment"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgAlreadyConfirmed   = "booking is already confirmed"
	msgBookingSlotMissing = "slot for this booking no longer exists"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm-payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm-payment - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrAlreadyConfirmed):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Already confirmed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, confirmPayment.ErrSlotNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Slot missing: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgBookingSlotMissing)

		default:
			h.logger.Error("POST /bookings/{id}/confirm-payment - Failed to confirm payment: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/{id}/confirm-payment - Payment confirmed: booking_id=%d, amount=%.2f",
		result.ID, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
