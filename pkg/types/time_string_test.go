package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "обычное время", input: "09:30", want: "09:30"},
		{name: "один символ часа", input: "9:05", want: "09:05"},
		{name: "полночь", input: "00:00", want: "00:00"},
		{name: "последняя минута суток", input: "23:59", want: "23:59"},
		{name: "часы вне диапазона", input: "24:00", wantErr: true},
		{name: "минуты вне диапазона", input: "10:60", wantErr: true},
		{name: "отрицательные часы", input: "-1:00", wantErr: true},
		{name: "без разделителя", input: "0930", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
		{name: "мусор", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), got)

	got, err = NewTimeStringFromMinutes(575)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:35"), got)

	got, err = NewTimeStringFromMinutes(1439)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	// Значения вне суток отклоняются, а не заворачиваются
	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)

	_, err = NewTimeStringFromMinutes(1440)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)

	_, err = NewTimeStringFromMinutes(1500)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:25")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 625, minutes)

	_, err = TimeString("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	got, err := ts.AddMinutes(25)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:25"), got)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:50").AddMinutes(25)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{name: "граничащие интервалы не пересекаются", aStart: 10, aEnd: 20, bStart: 20, bEnd: 30, want: false},
		{name: "пересечение на одну минуту", aStart: 10, aEnd: 20, bStart: 19, bEnd: 30, want: true},
		{name: "идентичные интервалы", aStart: 10, aEnd: 20, bStart: 10, bEnd: 20, want: true},
		{name: "полное вложение", aStart: 10, aEnd: 40, bStart: 15, bEnd: 20, want: true},
		{name: "непересекающиеся", aStart: 10, aEnd: 20, bStart: 30, bEnd: 40, want: false},
		{name: "граничащие в обратном порядке", aStart: 20, aEnd: 30, bStart: 10, bEnd: 20, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("09:35")))
	assert.Equal(t, TimeString("09:35"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
