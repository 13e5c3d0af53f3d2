package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/parkease/parkease-backend/internal/domain"
	bookingRepo "github.com/parkease/parkease-backend/internal/infra/storage/booking"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
	"github.com/parkease/parkease-backend/internal/service/bookings/models"
)

// Service сервис чтения бронирований: карточка бронирования, история
// водителя, поиск по номеру машины, полный список для администратора.
// Все операции без побочных эффектов; мутации живут в usecases.
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе с данными слота
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	slot, err := s.slotRepo.GetByID(ctx, booking.SlotID)
	if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
		s.logger.Error("GetByID: failed to fetch slot id=%d: %v", booking.SlotID, err)
		return nil, fmt.Errorf("%w: GetByID - slot repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, slot), nil
}

// GetForDriver получает историю бронирований водителя, сначала новые.
// Имя водителя приходит из токена аутентификации; сервис принимает его как
// обычную строку.
func (s *Service) GetForDriver(ctx context.Context, driverName string) (*models.BookingListResponse, error) {
	if strings.TrimSpace(driverName) == "" {
		return nil, fmt.Errorf("%w: driver name is required", ErrInvalidInput)
	}

	s.logger.Info("GetForDriver: fetching bookings for driver=%q", driverName)

	bookings, err := s.bookingRepo.GetByDriverName(ctx, driverName)
	if err != nil {
		s.logger.Error("GetForDriver: repository error for driver=%q: %v", driverName, err)
		return nil, fmt.Errorf("%w: GetForDriver - repository error: %v", ErrInternal, err)
	}

	return s.withSlots(ctx, bookings)
}

// GetForVehicle получает бронирования по номеру машины, сначала новые
func (s *Service) GetForVehicle(ctx context.Context, vehicleNumber string) (*models.BookingListResponse, error) {
	if strings.TrimSpace(vehicleNumber) == "" {
		return nil, fmt.Errorf("%w: vehicle number is required", ErrInvalidInput)
	}

	s.logger.Info("GetForVehicle: fetching bookings for vehicle=%q", vehicleNumber)

	bookings, err := s.bookingRepo.GetByVehicleNumber(ctx, vehicleNumber)
	if err != nil {
		s.logger.Error("GetForVehicle: repository error for vehicle=%q: %v", vehicleNumber, err)
		return nil, fmt.Errorf("%w: GetForVehicle - repository error: %v", ErrInternal, err)
	}

	return s.withSlots(ctx, bookings)
}

// ListAll получает все бронирования (административный список)
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("ListAll: fetching all bookings")

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d bookings", len(bookings))
	return s.withSlots(ctx, bookings)
}

// withSlots строит список ответов, подставляя слоты одним запросом
func (s *Service) withSlots(ctx context.Context, bookings []*domain.Booking) (*models.BookingListResponse, error) {
	if len(bookings) == 0 {
		return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
	}

	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("withSlots: failed to fetch slots: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch slots: %v", ErrInternal, err)
	}

	slotsByID := make(map[int64]*domain.Slot, len(slots))
	for _, slot := range slots {
		slotsByID[slot.ID] = slot
	}

	return models.FromDomainBookingList(bookings, slotsByID), nil
}
