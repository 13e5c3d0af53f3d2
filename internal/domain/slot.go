package domain

import "time"

// Slot represents a physical parking space identified by a unique code.
// Available is an instantaneous flag, not a calendar: it tells whether the
// slot may be newly booked right now.
type Slot struct {
	ID                  int64
	Code                string
	Level               int
	LocationDescription string
	PricePerHour        float64
	Available           bool
	CreatedAt           time.Time
}
