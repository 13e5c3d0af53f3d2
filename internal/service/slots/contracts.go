package slots

import (
	"context"

	"github.com/parkease/parkease-backend/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	GetByCode(ctx context.Context, code string) (*domain.Slot, error)
	List(ctx context.Context) ([]*domain.Slot, error)
	ListAvailable(ctx context.Context) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
