package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/parkease/parkease-backend/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Граница API уже отклоняет пустые строки и отсутствующие даты; здесь те же
// проверки выполняются повторно, чтобы движок не зависел от дисциплины
// вызывающего.
func validateRequest(req *Request, now time.Time) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DriverName) == "" {
		return fmt.Errorf("%w: driverName is required", ErrInvalidInput)
	}
	if len(req.DriverName) > domain.MaxDriverNameLength {
		return fmt.Errorf("%w: driverName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleNumber) == "" {
		return fmt.Errorf("%w: vehicleNumber is required", ErrInvalidInput)
	}
	if len(req.VehicleNumber) > domain.MaxVehicleNumberLen {
		return fmt.Errorf("%w: vehicleNumber is too long", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	if !req.EndTime.After(now) {
		return fmt.Errorf("%w: endTime must be in the future", ErrInvalidInput)
	}

	return nil
}
