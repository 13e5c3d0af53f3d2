package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkease/parkease-backend/internal/domain"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
)

// UseCase use case создания бронирования.
// Сумма фиксируется в момент создания: целые часы с округлением вниз,
// минимум один час, умноженные на текущую цену слота.
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Слот намеренно остается доступным после создания: флаг доступности
// снимается только при подтверждении оплаты. Два PENDING бронирования на
// один слот возможны, это принятое поведение, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%d, driver=%q, vehicle=%q, start=%s, end=%s",
		req.SlotID, req.DriverName, req.VehicleNumber, req.StartTime, req.EndTime)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		created *domain.Booking
		code    string
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Читаем слот с блокировкой строки: цена и доступность должны быть
		// согласованы с параллельными подтверждениями и отменами
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !slot.Available {
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			SlotID:        slot.ID,
			DriverName:    req.DriverName,
			VehicleNumber: req.VehicleNumber,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Amount:        domain.BookingAmount(req.StartTime, req.EndTime, slot.PricePerHour),
			Status:        domain.StatusPending,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		code = slot.Code
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot id=%d not available", req.SlotID)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for slot=%s, amount=%.2f",
		created.ID, code, created.Amount)

	return &Response{
		ID:            created.ID,
		SlotID:        created.SlotID,
		SlotCode:      code,
		DriverName:    created.DriverName,
		VehicleNumber: created.VehicleNumber,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime,
		Amount:        created.Amount,
		Status:        string(created.Status),
		CreatedAt:     created.CreatedAt,
	}, nil
}
