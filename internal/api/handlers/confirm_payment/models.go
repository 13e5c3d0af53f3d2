package confirm_payment

import (
	"time"

	confirmPayment "github.com/parkease/parkease-backend/internal/usecase/confirm_payment"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	SlotID        int64   `json:"slotId"`
	DriverName    string  `json:"driverName"`
	VehicleNumber string  `json:"vehicleNumber"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		SlotID:        resp.SlotID,
		DriverName:    resp.DriverName,
		VehicleNumber: resp.VehicleNumber,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		Amount:        resp.Amount,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
