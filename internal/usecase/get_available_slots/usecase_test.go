package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/service"
	"github.com/m04kA/MYB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeHoursProvider struct {
	hours domain.BusinessHours
	err   error
}

func (f *fakeHoursProvider) GetBusinessHours(_ context.Context) (domain.BusinessHours, error) {
	return f.hours, f.err
}

type fakeCatalog struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalog) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings []*domain.Booking, services map[int64]*domain.Service, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeHoursProvider{hours: domain.BusinessHours{OpenMin: 540, CloseMin: 1200}},
		&fakeCatalog{services: services},
		Config{DefaultDurationMinutes: 25, SlotStepMinutes: 5},
		nopLogger{},
	)
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func TestExecute_EmptyDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, "09:00 - 20:00", resp.Hours)
	assert.Equal(t, 25, resp.DurationMinutes)
	require.Len(t, resp.Slots, 128)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:25"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("19:35"), resp.Slots[len(resp.Slots)-1].StartTime)
}

func TestExecute_BookedRangeExcluded(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 25, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(bookings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	starts := make(map[types.TimeString]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		starts[s.StartTime] = true
	}

	// Любой слот, пересекающийся с [10:00, 10:25), занят
	assert.False(t, starts["09:40"])
	assert.False(t, starts["10:00"])
	assert.False(t, starts["10:20"])

	// Граничащие слоты свободны: интервалы полуоткрытые
	assert.True(t, starts["09:35"])
	assert.True(t, starts["10:25"])
}

func TestExecute_CancelledBookingReleasesSlot(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 25, Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(bookings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 128)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{Date: date})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayAllowed(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_ServiceDuration(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	services := map[int64]*domain.Service{
		7: {ID: 7, Name: "Стрижка", DurationMinutes: 45},
	}
	uc := newTestUseCase(nil, services, now)

	serviceID := int64(7)
	resp, err := uc.Execute(context.Background(), &Request{Date: date, ServiceID: &serviceID})
	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("09:45"), resp.Slots[0].EndTime)
}

func TestExecute_ExplicitDurationOverridesService(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	services := map[int64]*domain.Service{
		7: {ID: 7, Name: "Стрижка", DurationMinutes: 45},
	}
	uc := newTestUseCase(nil, services, now)

	serviceID := int64(7)
	duration := 30
	resp, err := uc.Execute(context.Background(), &Request{
		Date:            date,
		ServiceID:       &serviceID,
		DurationMinutes: &duration,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, now)

	serviceID := int64(99)
	_, err := uc.Execute(context.Background(), &Request{Date: date, ServiceID: &serviceID})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidDuration(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, now)

	duration := 0
	_, err := uc.Execute(context.Background(), &Request{Date: date, DurationMinutes: &duration})
	assert.ErrorIs(t, err, ErrInvalidInput)

	duration = domain.MaxDurationMinutes + 1
	_, err = uc.Execute(context.Background(), &Request{Date: date, DurationMinutes: &duration})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MalformedBookingSkipped(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{StartTime: "junk", DurationMinutes: 25, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(bookings, nil, now)

	// Бронирование с битым временем не должно блокировать весь день
	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 128)
}
