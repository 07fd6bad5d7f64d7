package validator

import (
	"regexp"
	"time"
)

var (
	clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateClock проверяет время суток в формате HH:MM (24 часа).
func ValidateClock(value string) bool {
	return clockRegex.MatchString(value)
}

// ValidateDate проверяет календарную дату в формате YYYY-MM-DD.
func ValidateDate(value string) bool {
	if !dateRegex.MatchString(value) {
		return false
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func ValidateDayOfWeek(day int) bool {
	return day >= 0 && day <= 6
}

// ValidateDuration проверяет длительность услуги в минутах.
func ValidateDuration(minutes int) bool {
	return minutes > 0 && minutes <= 8*60
}
