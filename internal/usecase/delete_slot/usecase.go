package delete_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkease/parkease-backend/internal/domain"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
)

// UseCase use case удаления слота.
// Слот с подтвержденным бронированием удалить нельзя; PENDING и CANCELLED
// бронирования удалению не мешают и после него остаются как есть.
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

// Execute удаляет слот, если его не удерживает подтвержденное бронирование
func (uc *UseCase) Execute(ctx context.Context, slotID int64) error {
	uc.logger.Info("DeleteSlot: deleting slot id=%d", slotID)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByID(txCtx, slotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		confirmed, err := uc.bookingRepo.CountBySlotAndStatus(txCtx, slot.ID, domain.StatusConfirmed)
		if err != nil {
			return fmt.Errorf("%w: failed to count confirmed bookings: %v", ErrInternal, err)
		}
		if confirmed > 0 {
			return ErrSlotHasActiveBookings
		}

		if err := uc.slotRepo.Delete(txCtx, slot.ID); err != nil {
			return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("DeleteSlot: slot id=%d not found", slotID)
		case errors.Is(err, ErrSlotHasActiveBookings):
			uc.logger.Warn("DeleteSlot: slot id=%d has confirmed bookings", slotID)
		default:
			uc.logger.Error("DeleteSlot: failed for slot id=%d: %v", slotID, err)
		}
		return err
	}

	uc.logger.Info("DeleteSlot: slot id=%d deleted", slotID)
	return nil
}
