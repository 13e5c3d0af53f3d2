package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkease/parkease-backend/internal/domain"
	bookingRepo "github.com/parkease/parkease-backend/internal/infra/storage/booking"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
)

// UseCase use case подтверждения оплаты.
// Статус бронирования и флаг доступности слота меняются в одной
// сериализуемой транзакции: два параллельных подтверждения по одному слоту
// не могут зафиксироваться оба.
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

// Execute подтверждает оплату бронирования: статус становится CONFIRMED,
// слот становится недоступным.
//
// Повторное подтверждение отклоняется. Подтверждение отмененного
// бронирования по текущим правилам разрешено: проверка исключает только
// статус CONFIRMED. Ветка оставлена явной и покрыта тестом.
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) (*Response, error) {
	uc.logger.Info("ConfirmPayment: confirming booking id=%d", bookingID)

	var confirmed *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.IsConfirmed() {
			return ErrAlreadyConfirmed
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		if err := uc.slotRepo.SetAvailable(txCtx, booking.SlotID, false); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		confirmed = booking
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("ConfirmPayment: booking id=%d not found", bookingID)
		case errors.Is(err, ErrAlreadyConfirmed):
			uc.logger.Warn("ConfirmPayment: booking id=%d already confirmed", bookingID)
		default:
			uc.logger.Error("ConfirmPayment: failed for booking id=%d: %v", bookingID, err)
		}
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: booking id=%d confirmed, slot id=%d now unavailable",
		confirmed.ID, confirmed.SlotID)

	return &Response{
		ID:            confirmed.ID,
		SlotID:        confirmed.SlotID,
		DriverName:    confirmed.DriverName,
		VehicleNumber: confirmed.VehicleNumber,
		StartTime:     confirmed.StartTime,
		EndTime:       confirmed.EndTime,
		Amount:        confirmed.Amount,
		Status:        string(confirmed.Status),
		CreatedAt:     confirmed.CreatedAt,
	}, nil
}
