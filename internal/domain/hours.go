package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MYB-BookingService/pkg/types"
)

var (
	// ErrInvalidHours возвращается при некорректной строке часов работы
	ErrInvalidHours = errors.New("domain: invalid shop hours, expected \"HH:MM - HH:MM\"")

	// ErrCrossMidnightHours возвращается для часов работы через полночь.
	// Генератор слотов работает только в пределах одних суток, поэтому
	// такие значения отклоняются при разборе, а не молча обрезаются.
	ErrCrossMidnightHours = errors.New("domain: cross-midnight shop hours are not supported")
)

// BusinessHours represents the shop's operating window for a single day,
// in minutes from midnight. Invariant: 0 <= OpenMin < CloseMin < 1440.
type BusinessHours struct {
	OpenMin  int
	CloseMin int
}

// ParseShopHours parses an "HH:MM - HH:MM" configuration string.
// Cross-midnight windows (open >= close) are rejected.
func ParseShopHours(s string) (BusinessHours, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return BusinessHours{}, fmt.Errorf("%w: %q", ErrInvalidHours, s)
	}

	open, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return BusinessHours{}, fmt.Errorf("%w: %q", ErrInvalidHours, s)
	}
	close, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return BusinessHours{}, fmt.Errorf("%w: %q", ErrInvalidHours, s)
	}

	openMin, _ := open.Minutes()
	closeMin, _ := close.Minutes()

	if openMin >= closeMin {
		return BusinessHours{}, fmt.Errorf("%w: %q", ErrCrossMidnightHours, s)
	}

	return BusinessHours{OpenMin: openMin, CloseMin: closeMin}, nil
}

// Open returns the opening time as "HH:MM"
func (h BusinessHours) Open() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(h.OpenMin)
	return ts
}

// Close returns the closing time as "HH:MM"
func (h BusinessHours) Close() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(h.CloseMin)
	return ts
}

// String formats the hours back to the configuration form "HH:MM - HH:MM"
func (h BusinessHours) String() string {
	return fmt.Sprintf("%s - %s", h.Open(), h.Close())
}

// Contains returns true if the interval [startMin, endMin) fits within the hours
func (h BusinessHours) Contains(startMin, endMin int) bool {
	return startMin >= h.OpenMin && endMin <= h.CloseMin
}
