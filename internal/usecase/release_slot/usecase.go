package release_slot

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/parkease/parkease-backend/internal/infra/storage/booking"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
)

// UseCase административное освобождение слота.
// В отличие от отмены, запись бронирования физически удаляется: оператор
// убирает зависшее или ошибочное бронирование, не оставляя отмененной записи.
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

// Execute удаляет бронирование и делает его слот доступным
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("ReleaseSlot: releasing booking id=%d", bookingID)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		if err := uc.slotRepo.SetAvailable(txCtx, booking.SlotID, true); err != nil &&
			!errors.Is(err, slotRepo.ErrSlotNotFound) {
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			uc.logger.Warn("ReleaseSlot: booking id=%d not found", bookingID)
		} else {
			uc.logger.Error("ReleaseSlot: failed for booking id=%d: %v", bookingID, err)
		}
		return err
	}

	uc.logger.Info("ReleaseSlot: booking id=%d removed, slot made available", bookingID)
	return nil
}
