package domain

// Billing constants
const (
	// MinBillableHours минимальное число оплачиваемых часов бронирования
	MinBillableHours = 1
)

// Business validation constants
const (
	MinSlotLevel        = 1
	MaxDriverNameLength = 100
	MaxVehicleNumberLen = 20
	MaxSlotCodeLength   = 16
	MaxLocationDescLen  = 200
	RecentActivityLimit = 20
)

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
