// Package datekey provides the canonical calendar-day identity used by every
// map in the scoring engine. A Key is a YYYY-MM-DD string in a single fixed
// timezone, so lexicographic order equals chronological order.
package datekey

import (
	"fmt"
	"math"
	"time"
)

// Key identifies one calendar day.
type Key = string

const layout = "2006-01-02"

var location = mustLoad("Asia/Taipei")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SetLocation changes the fixed timezone used for all day boundaries. Called
// once at startup from config; falls back to UTC on unknown names.
func SetLocation(name string) {
	location = mustLoad(name)
}

// Location returns the active fixed timezone.
func Location() *time.Location {
	return location
}

// Format returns the Key of the calendar day containing t.
func Format(t time.Time) Key {
	return t.In(location).Format(layout)
}

// Parse converts a Key back to midnight of that day in the fixed timezone.
// A malformed key yields the zero time.
func Parse(k Key) time.Time {
	t, err := time.ParseInLocation(layout, k, location)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Today returns the Key for the current day.
func Today() Key {
	return Format(time.Now())
}

// Yesterday returns the Key for the day before today.
func Yesterday() Key {
	return DaysAgo(1)
}

// DaysAgo returns the Key n days before today.
func DaysAgo(n int) Key {
	return Format(time.Now().AddDate(0, 0, -n))
}

// Prev returns the Key of the day before k.
func Prev(k Key) Key {
	return Format(Parse(k).AddDate(0, 0, -1))
}

// Next returns the Key of the day after k.
func Next(k Key) Key {
	return Format(Parse(k).AddDate(0, 0, 1))
}

// WeekOf returns the week bucket key {year}-W{ww} for t, using a ceil-based
// day-of-year computation anchored on the weekday of January 1st.
func WeekOf(t time.Time) string {
	t = t.In(location)
	firstDay := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, location)
	pastDays := t.Sub(firstDay).Hours() / 24
	week := int(math.Ceil((pastDays + float64(firstDay.Weekday()) + 1) / 7))
	return fmt.Sprintf("%d-W%02d", t.Year(), week)
}

// MonthOf returns the month bucket key {year}-{mm} for t.
func MonthOf(t time.Time) string {
	t = t.In(location)
	return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
}

// WeekOfKey and MonthOfKey bucket an existing day Key.
func WeekOfKey(k Key) string  { return WeekOf(Parse(k)) }
func MonthOfKey(k Key) string { return MonthOf(Parse(k)) }
