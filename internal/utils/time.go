package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutTimeHM   = "15:04"
	layoutDateTime = "2006-01-02 15:04:05"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseTimeHM parses HH:MM clock times.
func ParseTimeHM(s string) (time.Time, error) {
	return time.Parse(layoutTimeHM, strings.TrimSpace(s))
}

// CombineDateTime builds the instant of a slot from its date and start time.
func CombineDateTime(date, startTime string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseTimeHM(startTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatDateHuman renders "January 2, 2006" for customer-facing copy.
func FormatDateHuman(t time.Time) string {
	return t.In(time.Local).Format("January 2, 2006")
}

// FormatTime12h renders "14:00" as "2:00 PM".
func FormatTime12h(hm string) string {
	t, err := ParseTimeHM(hm)
	if err != nil {
		return hm
	}
	return fmt.Sprint(t.Format("3:04 PM"))
}
