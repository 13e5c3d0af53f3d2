package delete_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("delete_slot: slot not found")

	// ErrSlotHasActiveBookings возвращается, когда слот удерживается
	// подтвержденным бронированием
	ErrSlotHasActiveBookings = errors.New("delete_slot: cannot delete slot with active bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_slot: internal error")
)
