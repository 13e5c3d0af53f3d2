package release_slot

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("release_slot: booking not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_slot: internal error")
)
