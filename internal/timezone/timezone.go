package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "UTC"
	DateLayout      = "2006-01-02"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// DayBounds returns the half-open window [date 00:00, next day 00:00) of a
// calendar date in loc, expressed in UTC.
func DayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return day.UTC(), day.AddDate(0, 0, 1).UTC(), nil
}
