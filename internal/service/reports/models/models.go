package models

import "time"

// AdminStatsResponse сводная статистика по бронированиям и слотам
type AdminStatsResponse struct {
	TotalBookings     int64   `json:"totalBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	CancelledBookings int64   `json:"cancelledBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	TotalSlots        int64   `json:"totalSlots"`
	AvailableSlots    int64   `json:"availableSlots"`
	OccupiedSlots     int64   `json:"occupiedSlots"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// UserSummary сводка по водителю, построенная из его бронирований
type UserSummary struct {
	DriverName        string     `json:"driverName"`
	VehicleNumber     string     `json:"vehicleNumber"`
	TotalBookings     int64      `json:"totalBookings"`
	ConfirmedBookings int64      `json:"confirmedBookings"`
	TotalSpent        float64    `json:"totalSpent"`
	LastBooking       *time.Time `json:"lastBooking,omitempty"`
}

// UsersSummaryResponse список сводок по водителям
type UsersSummaryResponse struct {
	Users []UserSummary `json:"users"`
}

// Payment запись истории платежей (подтвержденное бронирование)
type Payment struct {
	ID            int64     `json:"id"`
	DriverName    string    `json:"driverName"`
	VehicleNumber string    `json:"vehicleNumber"`
	SlotCode      string    `json:"slotCode"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	DurationHours int64     `json:"duration"`
}

// PaymentHistoryResponse история платежей, сначала новые
type PaymentHistoryResponse struct {
	Payments []Payment `json:"payments"`
}

// Activity types derived from booking status
const (
	ActivityPaymentCompleted = "PAYMENT_COMPLETED"
	ActivityBookingCancelled = "BOOKING_CANCELLED"
	ActivityBookingCreated   = "BOOKING_CREATED"
)

// Activity запись ленты последних событий
type Activity struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type"`
	DriverName    string    `json:"driverName"`
	VehicleNumber string    `json:"vehicleNumber"`
	SlotCode      string    `json:"slotCode"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
	Description   string    `json:"description"`
}

// RecentActivityResponse последние события, сначала новые
type RecentActivityResponse struct {
	Activity []Activity `json:"activity"`
}
