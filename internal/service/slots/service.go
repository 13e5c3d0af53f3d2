package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/parkease/parkease-backend/internal/domain"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
	"github.com/parkease/parkease-backend/internal/service/slots/models"
)

// Service сервис для работы со слотами: списки и создание.
// Удаление слота затрагивает два хранилища и живет в usecase delete_slot.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List получает все слоты
func (s *Service) List(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSlotList(slots), nil
}

// ListAvailable получает слоты с установленным флагом доступности
func (s *Service) ListAvailable(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.ListAvailable(ctx)
	if err != nil {
		s.logger.Error("ListAvailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSlotList(slots), nil
}

// Create создает новый слот. Код должен быть уникальным; новый слот
// всегда доступен для бронирования.
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating slot code=%q level=%d price=%.2f", req.Code, req.Level, req.PricePerHour)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Проверяем занятость кода заранее для понятной ошибки; само ограничение
	// уникальности защищает от гонки на уровне БД.
	if _, err := s.slotRepo.GetByCode(ctx, req.Code); err == nil {
		s.logger.Warn("Create: slot code=%q already exists", req.Code)
		return nil, ErrSlotCodeExists
	} else if !errors.Is(err, slotRepo.ErrSlotNotFound) {
		s.logger.Error("Create: failed to check code=%q: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Create - code check failed: %v", ErrInternal, err)
	}

	created, err := s.slotRepo.Create(ctx, &domain.Slot{
		Code:                req.Code,
		Level:               req.Level,
		LocationDescription: req.LocationDescription,
		PricePerHour:        req.PricePerHour,
		Available:           true,
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotCodeExists) {
			return nil, ErrSlotCodeExists
		}
		s.logger.Error("Create: repository error for code=%q: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot created id=%d code=%q", created.ID, created.Code)
	return models.FromDomainSlot(created), nil
}

func validateCreateRequest(req *models.CreateSlotRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if len(req.Code) > domain.MaxSlotCodeLength {
		return fmt.Errorf("%w: code is too long", ErrInvalidInput)
	}
	if req.Level < domain.MinSlotLevel {
		return fmt.Errorf("%w: level must be at least %d", ErrInvalidInput, domain.MinSlotLevel)
	}
	if strings.TrimSpace(req.LocationDescription) == "" {
		return fmt.Errorf("%w: location description is required", ErrInvalidInput)
	}
	if len(req.LocationDescription) > domain.MaxLocationDescLen {
		return fmt.Errorf("%w: location description is too long", ErrInvalidInput)
	}
	if req.PricePerHour < 0 {
		return fmt.Errorf("%w: price per hour must not be negative", ErrInvalidInput)
	}
	return nil
}
