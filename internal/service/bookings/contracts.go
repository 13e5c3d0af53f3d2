package bookings

import (
	"context"

	"github.com/parkease/parkease-backend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByDriverName(ctx context.Context, driverName string) ([]*domain.Booking, error)
	GetByVehicleNumber(ctx context.Context, vehicleNumber string) ([]*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	List(ctx context.Context) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
