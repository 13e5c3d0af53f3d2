package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении
	ErrAlreadyConfirmed = errors.New("confirm_payment: booking already confirmed")

	// ErrSlotNotFound возвращается, когда слот бронирования не найден
	ErrSlotNotFound = errors.New("confirm_payment: slot not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
