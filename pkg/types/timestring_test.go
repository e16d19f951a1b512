package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9:30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestValidate_RequiresLeadingZeros(t *testing.T) {
	assert.NoError(t, TimeString("09:30").Validate())
	assert.ErrorIs(t, TimeString("9:30").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("garbage").Validate(), ErrInvalidTimeString)
}

func TestNewTimeString_DropsDateAndSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 2, 14, 45, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:45"), ts)
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Zero(t, m)

	_, err = TimeString("garbage").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	// Выход за границу суток - ошибка, а не перенос на следующий день
	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	ts, err = TimeString("23:30").AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  TimeString
	}{
		{name: "postgres TIME with seconds", value: "15:04:05", want: "15:04"},
		{name: "bytes", value: []byte("09:30:00"), want: "09:30"},
		{name: "bare HH:MM", value: "09:30", want: "09:30"},
		{name: "time.Time", value: time.Date(2026, 3, 2, 11, 15, 0, 0, time.UTC), want: "11:15"},
		{name: "nil resets the value", value: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := TimeString("99:99")
			require.NoError(t, ts.Scan(tt.value))
			assert.Equal(t, tt.want, ts)
		})
	}

	var ts TimeString
	assert.ErrorIs(t, ts.Scan("garbage"), ErrInvalidTimeString)
	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("garbage").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
