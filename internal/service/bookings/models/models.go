package models

import (
	"errors"
	"time"

	"github.com/parkease/parkease-backend/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// SlotResponse данные слота, вложенные в ответ бронирования
type SlotResponse struct {
	ID                  int64   `json:"id"`
	Code                string  `json:"code"`
	Level               int     `json:"level"`
	LocationDescription string  `json:"locationDescription"`
	PricePerHour        float64 `json:"pricePerHour"`
	Available           bool    `json:"available"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64         `json:"id"`
	DriverName    string        `json:"driverName"`
	VehicleNumber string        `json:"vehicleNumber"`
	Slot          *SlotResponse `json:"slot,omitempty"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	Amount        float64       `json:"amount"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO.
// Слот может быть nil, если бронирование осталось без слота
// (слот удален администратором).
func FromDomainBooking(b *domain.Booking, s *domain.Slot) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		DriverName:    b.DriverName,
		VehicleNumber: b.VehicleNumber,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Amount:        b.Amount,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}

	if s != nil {
		resp.Slot = FromDomainSlot(s)
	}

	return resp
}

// FromDomainSlot конвертирует domain слот в DTO
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
	}
}

// FromDomainBookingList конвертирует список бронирований, подставляя слоты
// из заранее построенного индекса slotsByID.
func FromDomainBookingList(bookings []*domain.Booking, slotsByID map[int64]*domain.Slot) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if br := FromDomainBooking(b, slotsByID[b.SlotID]); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}
