package delete_slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkease/parkease-backend/internal/domain"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

func (r *fakeSlotRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.slots[id]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	delete(r.slots, id)
	return nil
}

type fakeBookingRepo struct {
	confirmedBySlot map[int64]int64
}

func (r *fakeBookingRepo) CountBySlotAndStatus(ctx context.Context, slotID int64, status domain.BookingStatus) (int64, error) {
	if status == domain.StatusConfirmed {
		return r.confirmedBySlot[slotID], nil
	}
	return 0, nil
}

func TestExecute_DeletesSlotWithoutConfirmedBookings(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{7: {ID: 7, Code: "S7"}}}
	bookings := &fakeBookingRepo{confirmedBySlot: map[int64]int64{}}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	assert.NotContains(t, slots.slots, int64(7))
}

func TestExecute_ConfirmedBookingBlocksDeletion(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{7: {ID: 7, Code: "S7"}}}
	bookings := &fakeBookingRepo{confirmedBySlot: map[int64]int64{7: 1}}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 7)

	assert.ErrorIs(t, err, ErrSlotHasActiveBookings)
	assert.Contains(t, slots.slots, int64(7))
}

func TestExecute_CancelledBookingsDoNotBlock(t *testing.T) {
	// PENDING и CANCELLED бронирования удалению не мешают
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{7: {ID: 7, Code: "S7"}}}
	bookings := &fakeBookingRepo{confirmedBySlot: map[int64]int64{}}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
}

func TestExecute_SlotNotFound(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{}}
	bookings := &fakeBookingRepo{confirmedBySlot: map[int64]int64{}}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 9)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}
