package cancel_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkease/parkease-backend/internal/domain"
	bookingRepo "github.com/parkease/parkease-backend/internal/infra/storage/booking"
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

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	copied := *r.booking
	return &copied, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	r.booking.Status = status
	return nil
}

type fakeSlotRepo struct {
	available map[int64]bool
	err       error
}

func (r *fakeSlotRepo) SetAvailable(ctx context.Context, id int64, available bool) error {
	if r.err != nil {
		return r.err
	}
	r.available[id] = available
	return nil
}

func TestExecute_CancelRetainsRecordAndFreesSlot(t *testing.T) {
	bookings := &fakeBookingRepo{booking: &domain.Booking{ID: 1, SlotID: 7, Status: domain.StatusPending}}
	slots := &fakeSlotRepo{available: map[int64]bool{7: false}}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bookings.booking.Status)
	assert.True(t, slots.available[7], "slot must be freed on cancellation")
}

func TestExecute_OrphanedBookingCancels(t *testing.T) {
	bookings := &fakeBookingRepo{booking: &domain.Booking{ID: 1, SlotID: 7, Status: domain.StatusPending}}
	slots := &fakeSlotRepo{available: map[int64]bool{}, err: slotRepo.ErrSlotNotFound}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	// Слот удален администратором; отмена все равно проходит
	err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bookings.booking.Status)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	slots := &fakeSlotRepo{available: map[int64]bool{}}
	uc := NewUseCase(bookings, slots, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
