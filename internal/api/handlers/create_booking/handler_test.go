package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MYB-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/MYB-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string, withAuth bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	var h http.Handler = http.HandlerFunc(handler.Handle)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withAuth {
		req.Header.Set(middleware.HeaderUserID, "42")
		h = middleware.Auth(h)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:              10,
			UserID:          42,
			BookingDate:     time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			StartTime:       "10:00",
			DurationMinutes: 25,
			Status:          "pending",
			CreatedAt:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, `{"bookingDate":"2026-03-11","startTime":"10:00"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.UserID)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2026-03-11", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotConflict}

	rec := doRequest(t, uc, `{"bookingDate":"2026-03-11","startTime":"10:00"}`, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "занят")
}

func TestHandle_ServiceNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrServiceNotFound}

	rec := doRequest(t, uc, `{"bookingDate":"2026-03-11","startTime":"10:00","serviceId":99}`, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_OutsideBusinessHours(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrOutsideBusinessHours}

	rec := doRequest(t, uc, `{"bookingDate":"2026-03-11","startTime":"23:00"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"bookingDate":"11.03.2026","startTime":"10:00"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `not json`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Unauthorized(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"bookingDate":"2026-03-11","startTime":"10:00"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}
