package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClock(t *testing.T) {
	for _, good := range []string{"00:00", "09:30", "12:00", "23:59"} {
		assert.True(t, ValidateClock(good), "значение %q", good)
	}

	for _, bad := range []string{"", "24:00", "12:60", "9:30", "09:30:00", "9am"} {
		assert.False(t, ValidateClock(bad), "значение %q", bad)
	}
}

func TestValidateDate(t *testing.T) {
	assert.True(t, ValidateDate("2026-06-01"))
	assert.True(t, ValidateDate("2024-02-29"))

	for _, bad := range []string{"", "01.06.2026", "2026-6-1", "2026-13-01", "2026-02-30", "завтра"} {
		assert.False(t, ValidateDate(bad), "значение %q", bad)
	}
}

func TestValidateDayOfWeek(t *testing.T) {
	for day := 0; day <= 6; day++ {
		assert.True(t, ValidateDayOfWeek(day))
	}
	assert.False(t, ValidateDayOfWeek(-1))
	assert.False(t, ValidateDayOfWeek(7))
}

func TestValidateDuration(t *testing.T) {
	assert.True(t, ValidateDuration(15))
	assert.True(t, ValidateDuration(480))

	assert.False(t, ValidateDuration(0))
	assert.False(t, ValidateDuration(-30))
	assert.False(t, ValidateDuration(481))
}
