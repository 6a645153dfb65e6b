package complete_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/customer"
	serviceRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/service"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) Complete(_ context.Context, id int64) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCompleted
	b.CompletedAt = &now
	return nil
}

type fakeConsumptionRepo struct {
	records   []*domain.ConsumptionRecord
	createErr error
}

func (f *fakeConsumptionRepo) Create(_ context.Context, record *domain.ConsumptionRecord) (*domain.ConsumptionRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *record
	created.ID = int64(len(f.records) + 1)
	f.records = append(f.records, &created)
	return &created, nil
}

func (f *fakeConsumptionRepo) ExistsByBookingID(_ context.Context, bookingID int64) (bool, error) {
	for _, r := range f.records {
		if r.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCustomerRepo struct {
	customers  map[int64]*domain.Customer
	decrements int
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) DecrementCardTimes(_ context.Context, id int64) (int, error) {
	c, ok := f.customers[id]
	if !ok || c.CardTimes <= 0 {
		return 0, customerRepo.ErrNoCardTimes
	}
	c.CardTimes--
	f.decrements++
	return c.CardTimes, nil
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

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	uc           *UseCase
	bookings     *fakeBookingRepo
	consumptions *fakeConsumptionRepo
	customers    *fakeCustomerRepo
	tx           *fakeTxManager
}

func newTestEnv() *testEnv {
	serviceID := int64(7)
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			1: {ID: 1, UserID: 42, ServiceID: &serviceID, Status: domain.StatusConfirmed},
		},
	}
	consumptions := &fakeConsumptionRepo{}
	customers := &fakeCustomerRepo{
		customers: map[int64]*domain.Customer{
			42: {ID: 42, CardTimes: 3},
		},
	}
	catalog := &fakeCatalog{
		services: map[int64]*domain.Service{
			7: {ID: 7, Name: "Стрижка", Price: 1500},
		},
	}
	tx := &fakeTxManager{}

	return &testEnv{
		uc:           NewUseCase(bookings, consumptions, customers, catalog, tx, nopLogger{}),
		bookings:     bookings,
		consumptions: consumptions,
		customers:    customers,
		tx:           tx,
	}
}

func TestExecute_CardPayment(t *testing.T) {
	env := newTestEnv()

	require.NoError(t, env.uc.Execute(context.Background(), 1))

	// Статус переведен в completed
	assert.Equal(t, domain.StatusCompleted, env.bookings.bookings[1].Status)
	require.NotNil(t, env.bookings.bookings[1].CompletedAt)

	// Списан ровно один визит
	assert.Equal(t, 2, env.customers.customers[42].CardTimes)

	// Одна запись в журнале
	require.Len(t, env.consumptions.records, 1)
	record := env.consumptions.records[0]
	assert.Equal(t, domain.PaymentCard, record.PaymentType)
	assert.Equal(t, 3, record.CardTimesBefore)
	assert.Equal(t, 2, record.CardTimesAfter)
	assert.Equal(t, "Стрижка", record.ServiceName)
	assert.Equal(t, 1500.0, record.Price)
	assert.Equal(t, int64(1), record.BookingID)

	// Все побочные эффекты в одной транзакции
	assert.Equal(t, 1, env.tx.calls)
}

func TestExecute_Idempotent(t *testing.T) {
	env := newTestEnv()

	require.NoError(t, env.uc.Execute(context.Background(), 1))
	require.NoError(t, env.uc.Execute(context.Background(), 1))
	require.NoError(t, env.uc.Execute(context.Background(), 1))

	// Повторные вызовы не создают новых записей и не списывают визиты
	assert.Len(t, env.consumptions.records, 1)
	assert.Equal(t, 1, env.customers.decrements)
	assert.Equal(t, 2, env.customers.customers[42].CardTimes)
}

func TestExecute_CashWhenNoCardTimes(t *testing.T) {
	env := newTestEnv()
	env.customers.customers[42].CardTimes = 0

	require.NoError(t, env.uc.Execute(context.Background(), 1))

	require.Len(t, env.consumptions.records, 1)
	record := env.consumptions.records[0]
	assert.Equal(t, domain.PaymentCash, record.PaymentType)
	assert.Equal(t, 0, record.CardTimesBefore)
	assert.Equal(t, 0, record.CardTimesAfter)
	assert.Equal(t, 0, env.customers.decrements)
}

func TestExecute_CashWhenCustomerMissing(t *testing.T) {
	env := newTestEnv()
	delete(env.customers.customers, 42)

	require.NoError(t, env.uc.Execute(context.Background(), 1))

	require.Len(t, env.consumptions.records, 1)
	assert.Equal(t, domain.PaymentCash, env.consumptions.records[0].PaymentType)
}

func TestExecute_FallbackServiceName(t *testing.T) {
	env := newTestEnv()
	// Услуга удалена из каталога после создания бронирования
	missingID := int64(99)
	env.bookings.bookings[1].ServiceID = &missingID

	require.NoError(t, env.uc.Execute(context.Background(), 1))

	require.Len(t, env.consumptions.records, 1)
	record := env.consumptions.records[0]
	assert.Equal(t, "service", record.ServiceName)
	assert.Equal(t, 0.0, record.Price)
	// Списание с абонемента при этом выполняется
	assert.Equal(t, domain.PaymentCard, record.PaymentType)
}

func TestExecute_BookingWithoutService(t *testing.T) {
	env := newTestEnv()
	env.bookings.bookings[1].ServiceID = nil

	require.NoError(t, env.uc.Execute(context.Background(), 1))

	require.Len(t, env.consumptions.records, 1)
	assert.Equal(t, "service", env.consumptions.records[0].ServiceName)
}

func TestExecute_CancelledBooking(t *testing.T) {
	env := newTestEnv()
	env.bookings.bookings[1].Status = domain.StatusCancelled

	err := env.uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBookingCancelled)
	assert.Empty(t, env.consumptions.records)
}

func TestExecute_BookingNotFound(t *testing.T) {
	env := newTestEnv()

	err := env.uc.Execute(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ExistingRecordOnlyMarksCompleted(t *testing.T) {
	// Запись о потреблении есть, но статус не completed: прошлый запуск
	// оборвался между записью и сменой статуса. Повтор доводит статус
	// без новых побочных эффектов
	env := newTestEnv()
	env.consumptions.records = append(env.consumptions.records, &domain.ConsumptionRecord{
		ID:        1,
		BookingID: 1,
		UserID:    42,
	})

	require.NoError(t, env.uc.Execute(context.Background(), 1))

	assert.Equal(t, domain.StatusCompleted, env.bookings.bookings[1].Status)
	assert.Len(t, env.consumptions.records, 1)
	assert.Equal(t, 0, env.customers.decrements)
}
