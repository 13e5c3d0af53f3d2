package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillableHours(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int64
	}{
		{"thirty minutes rounds up to minimum", base.Add(30 * time.Minute), 1},
		{"exactly one hour", base.Add(time.Hour), 1},
		{"ninety minutes floors to one", base.Add(90 * time.Minute), 1},
		{"two and a half hours floors to two", base.Add(150 * time.Minute), 2},
		{"exactly three hours", base.Add(3 * time.Hour), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BillableHours(base, tt.end))
		})
	}
}

func TestBookingAmount(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// 10:00-11:30 при цене 30/час оплачивается как один час
	assert.Equal(t, 30.0, BookingAmount(base, base.Add(90*time.Minute), 30))

	// 10:00-12:30 оплачивается как два часа
	assert.Equal(t, 60.0, BookingAmount(base, base.Add(150*time.Minute), 30))

	// Минимальный тариф берется даже за 15 минут
	assert.Equal(t, 50.0, BookingAmount(base, base.Add(15*time.Minute), 50))
}

func TestBookingStatusHelpers(t *testing.T) {
	b := &Booking{Status: StatusConfirmed}
	assert.True(t, b.IsConfirmed())
	assert.False(t, b.IsCancelled())

	b.Status = StatusCancelled
	assert.False(t, b.IsConfirmed())
	assert.True(t, b.IsCancelled())
}
