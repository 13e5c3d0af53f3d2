package get_vehicle_bookings

import (
	"context"

	"github.com/parkease/parkease-backend/internal/service/bookings/models"
)

type BookingsService interface {
	GetForVehicle(ctx context.Context, vehicleNumber string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
