package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/MYB-BookingService/pkg/ptr"
	"github.com/m04kA/MYB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	created   []*domain.Booking
	createErr error
	nextID    int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeHoursProvider struct{}

func (fakeHoursProvider) GetBusinessHours(_ context.Context) (domain.BusinessHours, error) {
	return domain.BusinessHours{OpenMin: 540, CloseMin: 1200}, nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	return &domain.Service{ID: id, Name: "Стрижка", DurationMinutes: 45}, nil
}

type fakeCustomerRepo struct {
	phones map[int64]string
}

func (f *fakeCustomerRepo) UpdatePhone(_ context.Context, id int64, phone string) error {
	if f.phones == nil {
		f.phones = make(map[int64]string)
	}
	f.phones[id] = phone
	return nil
}

// fakeTxManager вызывает fn напрямую, считая количество транзакций
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

type testEnv struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	customers *fakeCustomerRepo
	tx        *fakeTxManager
}

func newTestEnv(existing []*domain.Booking, now time.Time) *testEnv {
	bookings := &fakeBookingRepo{bookings: existing}
	customers := &fakeCustomerRepo{}
	tx := &fakeTxManager{}

	uc := NewUseCase(
		bookings,
		fakeHoursProvider{},
		fakeCatalog{},
		customers,
		tx,
		Config{DefaultDurationMinutes: 25},
		nopLogger{},
	)
	uc.timeProvider = &fakeTime{now: now}

	return &testEnv{uc: uc, bookings: bookings, customers: customers, tx: tx}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(nil, now)

	resp, err := env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 25, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Проверка конфликта и вставка выполняются в одной транзакции
	assert.Equal(t, 1, env.tx.calls)
}

func TestExecute_SlotConflict(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	existing := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 25, Status: domain.StatusConfirmed},
	}
	env := newTestEnv(existing, now)

	// [09:45, 10:10) пересекается с [10:00, 10:25)
	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "09:45",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, env.bookings.created)
}

func TestExecute_AbuttingSlotAllowed(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	existing := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 25, Status: domain.StatusConfirmed},
	}
	env := newTestEnv(existing, now)

	// [10:25, 10:50) граничит с [10:00, 10:25) - конфликта нет
	resp, err := env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "10:25",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:25"), resp.StartTime)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	existing := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 25, Status: domain.StatusCancelled},
	}
	env := newTestEnv(existing, now)

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "10:00",
	})
	require.NoError(t, err)
}

func TestExecute_DuplicateSlotFromDB(t *testing.T) {
	// Конкурентная вставка того же слота: уникальный индекс в БД
	// срабатывает, ошибка мапится в конфликт слота
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(nil, now)
	env.bookings.createErr = bookingRepo.ErrDuplicateSlot

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(nil, now)

	// До открытия
	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "08:00",
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// Слот начинается в часы работы, но заканчивается после закрытия
	_, err = env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "19:40",
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(nil, now)

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ServiceDuration(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(nil, now)

	resp, err := env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		ServiceID: ptr.Ptr(int64(7)),
		Date:      date,
		StartTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestExecute_PhoneUpdatedBestEffort(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(nil, now)

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:       42,
		Date:         date,
		StartTime:    "10:00",
		ContactPhone: ptr.Ptr("+79990001122"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+79990001122", env.customers.phones[42])
}

func TestExecute_Validation(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	env := newTestEnv(nil, now)

	// Нет userID
	_, err := env.uc.Execute(context.Background(), &Request{Date: date, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Некорректное время начала
	_, err = env.uc.Execute(context.Background(), &Request{UserID: 42, Date: date, StartTime: "25:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Слишком длинный комментарий
	longRemark := make([]byte, domain.MaxRemarkLength+1)
	for i := range longRemark {
		longRemark[i] = 'a'
	}
	_, err = env.uc.Execute(context.Background(), &Request{
		UserID:    42,
		Date:      date,
		StartTime: "10:00",
		Remark:    ptr.Ptr(string(longRemark)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
