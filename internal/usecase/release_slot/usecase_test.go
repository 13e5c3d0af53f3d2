package release_slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkease/parkease-backend/internal/domain"
	bookingRepo "github.com/parkease/parkease-backend/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

type fakeSlotRepo struct {
	available map[int64]bool
}

func (r *fakeSlotRepo) SetAvailable(ctx context.Context, id int64, available bool) error {
	r.available[id] = available
	return nil
}

func TestExecute_RemovesBookingAndFreesSlot(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, SlotID: 7, Status: domain.StatusConfirmed},
	}}
	slots := &fakeSlotRepo{available: map[int64]bool{7: false}}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, slots.available[7])

	// В отличие от отмены запись удаляется физически
	_, err = bookings.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	slots := &fakeSlotRepo{available: map[int64]bool{}}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 5)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
