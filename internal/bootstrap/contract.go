package bootstrap

import (
	"context"

	"github.com/parkease/parkease-backend/internal/domain"
)

type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
