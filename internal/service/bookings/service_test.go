package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

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

type fakeBookingRepo struct {
	bookings []*domain.Booking
	listErr  error
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.bookings, nil
}

func (r *fakeBookingRepo) GetByDriverName(ctx context.Context, driverName string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.DriverName == driverName {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByVehicleNumber(ctx context.Context, vehicleNumber string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.VehicleNumber == vehicleNumber {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeSlotRepo struct {
	slots []*domain.Slot
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	for _, s := range r.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (r *fakeSlotRepo) List(ctx context.Context) ([]*domain.Slot, error) {
	return r.slots, nil
}

func testBooking(id, slotID int64, driver, vehicle string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		SlotID:        slotID,
		DriverName:    driver,
		VehicleNumber: vehicle,
		StartTime:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Amount:        60,
		Status:        domain.StatusPending,
	}
}

func TestGetByID_IncludesSlot(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{testBooking(1, 7, "Ravi", "KA01AB1234")}}
	slots := &fakeSlotRepo{slots: []*domain.Slot{{ID: 7, Code: "S7", PricePerHour: 30}}}
	svc := NewService(bookings, slots, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, "S7", resp.Slot.Code)
}

func TestGetByID_OrphanedBookingHasNilSlot(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{testBooking(1, 99, "Ravi", "KA01AB1234")}}
	slots := &fakeSlotRepo{}
	svc := NewService(bookings, slots, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, resp.Slot)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeSlotRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetForDriver_FiltersByName(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		testBooking(1, 7, "Ravi", "KA01AB1234"),
		testBooking(2, 8, "Meera", "MH12XY9876"),
		testBooking(3, 7, "Ravi", "KA01AB1234"),
	}}
	slots := &fakeSlotRepo{slots: []*domain.Slot{{ID: 7, Code: "S7"}, {ID: 8, Code: "S8"}}}
	svc := NewService(bookings, slots, nopLogger{})

	resp, err := svc.GetForDriver(context.Background(), "Ravi")

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	for _, b := range resp.Bookings {
		assert.Equal(t, "Ravi", b.DriverName)
	}
}

func TestGetForDriver_BlankNameRejected(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeSlotRepo{}, nopLogger{})

	_, err := svc.GetForDriver(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAll_ReadFailureSurfaces(t *testing.T) {
	// Сбой чтения возвращается как ошибка, а не как пустой успешный список
	bookings := &fakeBookingRepo{listErr: errors.New("connection reset")}
	svc := NewService(bookings, &fakeSlotRepo{}, nopLogger{})

	resp, err := svc.ListAll(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestListAll_EmptyListIsNotError(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeSlotRepo{}, nopLogger{})

	resp, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}
