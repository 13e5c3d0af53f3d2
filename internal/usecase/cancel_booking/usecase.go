package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkease/parkease-backend/internal/domain"
	bookingRepo "github.com/parkease/parkease-backend/internal/infra/storage/booking"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
)

// UseCase use case отмены бронирования.
// Запись сохраняется со статусом CANCELLED; слот безусловно становится
// доступным, даже если на него претендуют другие PENDING бронирования.
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute отменяет бронирование и освобождает слот
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("CancelBooking: cancelling booking id=%d", bookingID)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// Осиротевшее бронирование (слот удален) отменяется без освобождения
		if err := uc.slotRepo.SetAvailable(txCtx, booking.SlotID, true); err != nil &&
			!errors.Is(err, slotRepo.ErrSlotNotFound) {
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
		} else {
			uc.logger.Error("CancelBooking: failed for booking id=%d: %v", bookingID, err)
		}
		return err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, slot released", bookingID)
	return nil
}
