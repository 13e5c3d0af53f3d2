package get_available_slots

import (
	"context"

	"github.com/parkease/parkease-backend/internal/service/slots/models"
)

type SlotsService interface {
	ListAvailable(ctx context.Context) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
