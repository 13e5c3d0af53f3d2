package create_booking

import (
	"time"

	createBooking "github.com/parkease/parkease-backend/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID        int64  `json:"slotId"`
	VehicleNumber string `json:"vehicleNumber"`
	StartTime     string `json:"startTime"` // RFC3339, "2026-09-01T10:00:00Z"
	EndTime       string `json:"endTime"`   // RFC3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	SlotID        int64   `json:"slotId"`
	SlotCode      string  `json:"slotCode"`
	DriverName    string  `json:"driverName"`
	VehicleNumber string  `json:"vehicleNumber"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Имя водителя приходит не из тела, а из токена вызывающего.
func (r *CreateBookingRequest) ToUseCaseRequest(driverName string) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		SlotID:        r.SlotID,
		DriverName:    driverName,
		VehicleNumber: r.VehicleNumber,
		StartTime:     startTime,
		EndTime:       endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		SlotID:        resp.SlotID,
		SlotCode:      resp.SlotCode,
		DriverName:    resp.DriverName,
		VehicleNumber: resp.VehicleNumber,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		Amount:        resp.Amount,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
