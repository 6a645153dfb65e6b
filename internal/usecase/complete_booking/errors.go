package complete_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("complete_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке завершить отмененное бронирование
	ErrBookingCancelled = errors.New("complete_booking: booking is cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_booking: internal error")
)
