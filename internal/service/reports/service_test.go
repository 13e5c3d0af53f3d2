package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkease/parkease-backend/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bookings, nil
}

type fakeSlotRepo struct {
	slots []*domain.Slot
	err   error
}

func (r *fakeSlotRepo) List(ctx context.Context) ([]*domain.Slot, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.slots, nil
}

func TestAdminStats_UsesBothStores(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Status: domain.StatusConfirmed, Amount: 60},
		{ID: 2, Status: domain.StatusPending, Amount: 40},
	}}
	slots := &fakeSlotRepo{slots: []*domain.Slot{
		{ID: 1, Available: true},
		{ID: 2, Available: false},
	}}
	svc := NewService(bookings, slots, fakeTxManager{}, nopLogger{})

	stats, err := svc.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.TotalSlots)
	assert.Equal(t, 60.0, stats.TotalRevenue)
}

func TestAdminStats_ReadFailureSurfaces(t *testing.T) {
	// Сбой чтения не маскируется под пустую статистику
	bookings := &fakeBookingRepo{err: errors.New("connection reset")}
	svc := NewService(bookings, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	stats, err := svc.AdminStats(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, stats)
}

func TestRecentActivity_EmptyStores(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := svc.RecentActivity(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Activity)
}
