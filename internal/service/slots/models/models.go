package models

import (
	"time"

	"github.com/parkease/parkease-backend/internal/domain"
)

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	Code                string  `json:"code"`
	Level               int     `json:"level"`
	LocationDescription string  `json:"locationDescription"`
	PricePerHour        float64 `json:"pricePerHour"`
}

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID                  int64     `json:"id"`
	Code                string    `json:"code"`
	Level               int       `json:"level"`
	LocationDescription string    `json:"locationDescription"`
	PricePerHour        float64   `json:"pricePerHour"`
	Available           bool      `json:"available"`
	CreatedAt           time.Time `json:"createdAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		ID:                  s.ID,
		Code:                s.Code,
		Level:               s.Level,
		LocationDescription: s.LocationDescription,
		PricePerHour:        s.PricePerHour,
		Available:           s.Available,
		CreatedAt:           s.CreatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		if sr := FromDomainSlot(s); sr != nil {
			resp.Slots = append(resp.Slots, *sr)
		}
	}
	return resp
}
