package reports

import (
	"context"

	"github.com/parkease/parkease-backend/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	List(ctx context.Context) ([]*domain.Slot, error)
}

// TransactionManager интерфейс для управления транзакциями.
// Отчеты используют read-only транзакцию как снапшот обоих хранилищ.
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
