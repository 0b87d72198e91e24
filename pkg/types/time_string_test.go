package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "24:00", "9:30", "09:60", "09-30", "0930", "09:30:00", "ab:cd"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:45")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:45"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())

	// Невалидное значение не паникует
	assert.Equal(t, 0, TimeString("bad").Minutes())
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	// Переход за полночь недопустим
	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	instant := TimeString("09:30").OnDate(date, loc)

	assert.Equal(t, 2026, instant.Year())
	assert.Equal(t, time.March, instant.Month())
	assert.Equal(t, 2, instant.Day())
	assert.Equal(t, 9, instant.Hour())
	assert.Equal(t, 30, instant.Minute())
	assert.Equal(t, loc, instant.Location())
}

func TestNewTimeString(t *testing.T) {
	instant := time.Date(2026, 3, 2, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(instant))
}
