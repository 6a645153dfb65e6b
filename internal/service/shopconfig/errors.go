package shopconfig

import "errors"

var (
	// ErrInvalidHours возвращается при некорректном формате часов работы
	ErrInvalidHours = errors.New("invalid shop hours")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
