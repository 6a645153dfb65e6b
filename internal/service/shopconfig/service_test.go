package shopconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/shopconfig"
	"github.com/m04kA/MYB-BookingService/internal/service/shopconfig/models"
)

type fakeSettingsRepo struct {
	values map[string]string
}

func (f *fakeSettingsRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", settingsRepo.ErrSettingNotFound
	}
	return v, nil
}

func (f *fakeSettingsRepo) Set(_ context.Context, key, value string) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetHours_FromSettings(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{domain.ShopHoursKey: "10:00 - 19:00"}}
	svc := NewService(repo, "09:00 - 20:00", nopLogger{})

	resp, err := svc.GetHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:00 - 19:00", resp.Hours)
	assert.Equal(t, "10:00", resp.OpenTime)
	assert.Equal(t, "19:00", resp.CloseTime)
}

func TestGetHours_DefaultWhenNotSet(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, "09:00 - 20:00", nopLogger{})

	resp, err := svc.GetHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:00 - 20:00", resp.Hours)
}

func TestGetHours_CorruptValueFallsBack(t *testing.T) {
	// Битое значение в настройках не должно ломать публичную выдачу слотов
	repo := &fakeSettingsRepo{values: map[string]string{domain.ShopHoursKey: "22:00 - 02:00"}}
	svc := NewService(repo, "09:00 - 20:00", nopLogger{})

	resp, err := svc.GetHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:00 - 20:00", resp.Hours)
}

func TestGetBusinessHours(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{domain.ShopHoursKey: "10:00 - 19:00"}}
	svc := NewService(repo, "09:00 - 20:00", nopLogger{})

	hours, err := svc.GetBusinessHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 600, hours.OpenMin)
	assert.Equal(t, 1140, hours.CloseMin)
}

func TestSetHours(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, "09:00 - 20:00", nopLogger{})

	resp, err := svc.SetHours(context.Background(), &models.UpdateHoursRequest{Hours: "8:30-18:00"})
	require.NoError(t, err)

	// Значение сохраняется в нормализованном виде
	assert.Equal(t, "08:30 - 18:00", resp.Hours)
	assert.Equal(t, "08:30 - 18:00", repo.values[domain.ShopHoursKey])
}

func TestSetHours_Invalid(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, "09:00 - 20:00", nopLogger{})

	_, err := svc.SetHours(context.Background(), &models.UpdateHoursRequest{Hours: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidHours)

	// Интервалы через полночь отклоняются
	_, err = svc.SetHours(context.Background(), &models.UpdateHoursRequest{Hours: "20:00 - 04:00"})
	assert.ErrorIs(t, err, ErrInvalidHours)
}
