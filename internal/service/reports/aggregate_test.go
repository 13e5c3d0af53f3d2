package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkease/parkease-backend/internal/domain"
	"github.com/parkease/parkease-backend/internal/service/reports/models"
)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 10, 0, 0, 0, time.UTC)
}

func sampleBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, SlotID: 1, DriverName: "Ravi", VehicleNumber: "KA01AB1234",
			StartTime: day(1), EndTime: day(1).Add(2 * time.Hour), Amount: 60, Status: domain.StatusConfirmed},
		{ID: 2, SlotID: 2, DriverName: "Ravi", VehicleNumber: "KA01AB1234",
			StartTime: day(3), EndTime: day(3).Add(time.Hour), Amount: 40, Status: domain.StatusPending},
		{ID: 3, SlotID: 1, DriverName: "Meera", VehicleNumber: "MH12XY9876",
			StartTime: day(2), EndTime: day(2).Add(time.Hour), Amount: 30, Status: domain.StatusCancelled},
		{ID: 4, SlotID: 3, DriverName: "Meera", VehicleNumber: "MH12ZZ0001",
			StartTime: day(4), EndTime: day(4).Add(3 * time.Hour), Amount: 150, Status: domain.StatusConfirmed},
		{ID: 5, SlotID: 2, DriverName: "Arjun", VehicleNumber: "DL05CD5555",
			StartTime: day(5), EndTime: day(5).Add(time.Hour), Amount: 40, Status: domain.StatusPending},
	}
}

func sampleSlots() []*domain.Slot {
	return []*domain.Slot{
		{ID: 1, Code: "S1", Available: false},
		{ID: 2, Code: "S2", Available: true},
		{ID: 3, Code: "S3", Available: false},
	}
}

func slotIndex(slots []*domain.Slot) map[int64]*domain.Slot {
	byID := make(map[int64]*domain.Slot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}
	return byID
}

func TestBuildAdminStats(t *testing.T) {
	stats := buildAdminStats(sampleBookings(), sampleSlots())

	assert.Equal(t, int64(5), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.ConfirmedBookings)
	assert.Equal(t, int64(1), stats.CancelledBookings)
	assert.Equal(t, int64(2), stats.PendingBookings)
	assert.Equal(t, int64(3), stats.TotalSlots)
	assert.Equal(t, int64(1), stats.AvailableSlots)
	assert.Equal(t, int64(2), stats.OccupiedSlots)

	// Выручка только из подтвержденных: 60 + 150
	assert.Equal(t, 210.0, stats.TotalRevenue)
}

func TestBuildAdminStats_Empty(t *testing.T) {
	stats := buildAdminStats(nil, nil)

	assert.Equal(t, int64(0), stats.TotalBookings)
	assert.Equal(t, 0.0, stats.TotalRevenue)
}

func TestBuildUsersSummary(t *testing.T) {
	resp := buildUsersSummary(sampleBookings())

	require.Len(t, resp.Users, 3)

	// Порядок в ответе стабильный, по имени
	assert.Equal(t, "Arjun", resp.Users[0].DriverName)
	assert.Equal(t, "Meera", resp.Users[1].DriverName)
	assert.Equal(t, "Ravi", resp.Users[2].DriverName)

	meera := resp.Users[1]
	assert.Equal(t, int64(2), meera.TotalBookings)
	assert.Equal(t, int64(1), meera.ConfirmedBookings)
	assert.Equal(t, 150.0, meera.TotalSpent)

	// Номер машины из самого позднего бронирования
	assert.Equal(t, "MH12ZZ0001", meera.VehicleNumber)
	require.NotNil(t, meera.LastBooking)
	assert.True(t, meera.LastBooking.Equal(day(4)))
}

func TestBuildUsersSummary_LastBookingComparedAsTime(t *testing.T) {
	// 2 октября против 10 сентября: лексикографически "10" < "2", но как
	// время октябрь позже
	bookings := []*domain.Booking{
		{ID: 1, DriverName: "Ravi", VehicleNumber: "OLD",
			StartTime: time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC), Status: domain.StatusPending},
		{ID: 2, DriverName: "Ravi", VehicleNumber: "NEW",
			StartTime: time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC), Status: domain.StatusPending},
	}

	resp := buildUsersSummary(bookings)

	require.Len(t, resp.Users, 1)
	assert.Equal(t, "NEW", resp.Users[0].VehicleNumber)
	assert.True(t, resp.Users[0].LastBooking.Equal(time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC)))
}

func TestBuildPaymentHistory(t *testing.T) {
	resp := buildPaymentHistory(sampleBookings(), slotIndex(sampleSlots()))

	// Только подтвержденные, сначала новые
	require.Len(t, resp.Payments, 2)
	assert.Equal(t, int64(4), resp.Payments[0].ID)
	assert.Equal(t, int64(1), resp.Payments[1].ID)

	assert.Equal(t, "S3", resp.Payments[0].SlotCode)
	assert.Equal(t, 150.0, resp.Payments[0].Amount)
	assert.Equal(t, int64(3), resp.Payments[0].DurationHours)
}

func TestBuildPaymentHistory_OrphanedSlot(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, SlotID: 99, DriverName: "Ravi", Amount: 60,
			StartTime: day(1), EndTime: day(1).Add(time.Hour), Status: domain.StatusConfirmed},
	}

	resp := buildPaymentHistory(bookings, map[int64]*domain.Slot{})

	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "", resp.Payments[0].SlotCode)
}

func TestBuildRecentActivity(t *testing.T) {
	resp := buildRecentActivity(sampleBookings(), slotIndex(sampleSlots()), domain.RecentActivityLimit)

	require.Len(t, resp.Activity, 5)

	// Сначала новые
	assert.Equal(t, int64(5), resp.Activity[0].ID)
	assert.Equal(t, models.ActivityBookingCreated, resp.Activity[0].Type)

	confirmed := resp.Activity[1]
	assert.Equal(t, int64(4), confirmed.ID)
	assert.Equal(t, models.ActivityPaymentCompleted, confirmed.Type)
	assert.Equal(t, "Meera completed payment of ₹150.00 for slot S3", confirmed.Description)

	cancelled := resp.Activity[3]
	assert.Equal(t, int64(3), cancelled.ID)
	assert.Equal(t, models.ActivityBookingCancelled, cancelled.Type)
	assert.Equal(t, "Meera cancelled booking for slot S1", cancelled.Description)
}

func TestBuildRecentActivity_Limit(t *testing.T) {
	bookings := make([]*domain.Booking, 0, 25)
	for i := 1; i <= 25; i++ {
		bookings = append(bookings, &domain.Booking{
			ID:         int64(i),
			SlotID:     1,
			DriverName: "Ravi",
			StartTime:  day(1).Add(time.Duration(i) * time.Minute),
			Status:     domain.StatusPending,
		})
	}

	resp := buildRecentActivity(bookings, map[int64]*domain.Slot{}, domain.RecentActivityLimit)

	require.Len(t, resp.Activity, domain.RecentActivityLimit)
	assert.Equal(t, int64(25), resp.Activity[0].ID)
	assert.Equal(t, int64(6), resp.Activity[len(resp.Activity)-1].ID)
}
