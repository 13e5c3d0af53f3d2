package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/parkease/parkease-backend/internal/config"
	"github.com/parkease/parkease-backend/internal/domain"
	userRepo "github.com/parkease/parkease-backend/internal/infra/storage/user"
)

const seedSlotCount = 12

// Seeder начальное наполнение базы при первом старте сервиса
type Seeder struct {
	slotRepo SlotRepository
	userRepo UserRepository
	logger   Logger
}

func NewSeeder(slotRepo SlotRepository, userRepo UserRepository, logger Logger) *Seeder {
	return &Seeder{
		slotRepo: slotRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Run наполняет пустую базу стартовыми слотами и учетной записью
// администратора. Повторный запуск на непустой базе ничего не меняет.
func (s *Seeder) Run(ctx context.Context, cfg *config.BootstrapConfig) error {
	if cfg.SeedSlots {
		if err := s.seedSlots(ctx); err != nil {
			return err
		}
	}
	if cfg.AdminEmail != "" {
		if err := s.seedAdmin(ctx, cfg); err != nil {
			return err
		}
	}
	return nil
}

// seedSlots создает стандартную разметку парковки: 12 слотов S1..S12,
// по 6 на уровень, с тарифом 30/40/50 в час.
func (s *Seeder) seedSlots(ctx context.Context) error {
	count, err := s.slotRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: count slots: %w", err)
	}
	if count > 0 {
		s.logger.Info("Bootstrap: slots already present (count=%d), skipping seed", count)
		return nil
	}

	for i := 1; i <= seedSlotCount; i++ {
		slot := &domain.Slot{
			Code:                fmt.Sprintf("S%d", i),
			Level:               1 + (i-1)/6,
			LocationDescription: fmt.Sprintf("Near pillar %d", i),
			PricePerHour:        float64(30 + (i%3)*10),
			Available:           true,
		}
		if _, err := s.slotRepo.Create(ctx, slot); err != nil {
			return fmt.Errorf("bootstrap: create slot %s: %w", slot.Code, err)
		}
	}

	s.logger.Info("Bootstrap: seeded %d parking slots", seedSlotCount)
	return nil
}

// seedAdmin создает учетную запись администратора, если ее еще нет
func (s *Seeder) seedAdmin(ctx context.Context, cfg *config.BootstrapConfig) error {
	count, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("bootstrap: count admins: %w", err)
	}
	if count > 0 {
		s.logger.Info("Bootstrap: admin account already present, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap: hash admin password: %w", err)
	}

	_, err = s.userRepo.Create(ctx, &domain.User{
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		// Гонка с параллельным инстансом при старте не считается ошибкой
		if errors.Is(err, userRepo.ErrEmailExists) {
			s.logger.Warn("Bootstrap: admin email %q already registered", cfg.AdminEmail)
			return nil
		}
		return fmt.Errorf("bootstrap: create admin: %w", err)
	}

	s.logger.Info("Bootstrap: admin account %q created", cfg.AdminEmail)
	return nil
}
