package reports

import (
	"context"
	"fmt"

	"github.com/parkease/parkease-backend/internal/domain"
	"github.com/parkease/parkease-backend/internal/service/reports/models"
)

// Service отчеты администратора: статистика, сводка по водителям, история
// платежей, последние события. Каждый отчет читает снапшот обоих хранилищ
// в read-only транзакции и строится чистой функцией над ним.
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// AdminStats считает сводную статистику по бронированиям и слотам.
// Выручка считается как сумма amount только по подтвержденным бронированиям.
func (s *Service) AdminStats(ctx context.Context) (*models.AdminStatsResponse, error) {
	bookings, slots, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := buildAdminStats(bookings, slots)
	s.logger.Info("AdminStats: %d bookings, %d slots, revenue=%.2f",
		stats.TotalBookings, stats.TotalSlots, stats.TotalRevenue)
	return stats, nil
}

// UsersSummary группирует все бронирования по имени водителя
func (s *Service) UsersSummary(ctx context.Context) (*models.UsersSummaryResponse, error) {
	bookings, _, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return buildUsersSummary(bookings), nil
}

// PaymentHistory возвращает подтвержденные бронирования как историю платежей
func (s *Service) PaymentHistory(ctx context.Context) (*models.PaymentHistoryResponse, error) {
	bookings, slots, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return buildPaymentHistory(bookings, slotsByID(slots)), nil
}

// RecentActivity возвращает ленту последних событий по бронированиям
func (s *Service) RecentActivity(ctx context.Context) (*models.RecentActivityResponse, error) {
	bookings, slots, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return buildRecentActivity(bookings, slotsByID(slots), domain.RecentActivityLimit), nil
}

// snapshot читает оба хранилища в одной read-only транзакции
func (s *Service) snapshot(ctx context.Context) ([]*domain.Booking, []*domain.Slot, error) {
	var (
		bookings []*domain.Booking
		slots    []*domain.Slot
	)

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if bookings, err = s.bookingRepo.List(txCtx); err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}
		if slots, err = s.slotRepo.List(txCtx); err != nil {
			return fmt.Errorf("list slots: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("snapshot: failed to read stores: %v", err)
		return nil, nil, fmt.Errorf("%w: snapshot failed: %v", ErrInternal, err)
	}

	return bookings, slots, nil
}

func slotsByID(slots []*domain.Slot) map[int64]*domain.Slot {
	m := make(map[int64]*domain.Slot, len(slots))
	for _, s := range slots {
		m[s.ID] = s
	}
	return m
}
