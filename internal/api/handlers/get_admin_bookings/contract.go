package get_admin_bookings

import (
	"context"

	"github.com/parkease/parkease-backend/internal/service/bookings/models"
)

type BookingsService interface {
	ListAll(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
