package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a driver's claim on a parking slot for a time interval.
// Amount is computed once at creation from the slot's price per hour and is
// not recomputed if the slot price changes later.
type Booking struct {
	ID            int64
	SlotID        int64
	DriverName    string
	VehicleNumber string
	StartTime     time.Time
	EndTime       time.Time
	Amount        float64
	Status        BookingStatus
	CreatedAt     time.Time
}

// IsConfirmed returns true if payment for the booking has been confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// DurationHours returns the booking duration in whole hours, rounded down
func (b *Booking) DurationHours() int64 {
	return int64(b.EndTime.Sub(b.StartTime).Hours())
}

// BillableHours returns the number of hours charged for the interval:
// whole hours rounded down, with a floor of one hour.
func BillableHours(start, end time.Time) int64 {
	hours := int64(end.Sub(start).Hours())
	if hours < MinBillableHours {
		return MinBillableHours
	}
	return hours
}

// BookingAmount computes the frozen booking amount for the interval
// at the given price per hour.
func BookingAmount(start, end time.Time, pricePerHour float64) float64 {
	return float64(BillableHours(start, end)) * pricePerHour
}
