package appointment

import "time"

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// This is the single overlap predicate shared by the availability
// resolver and the booking-time conflict guard.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// ClockOn projects an "HH:MM" string onto the calendar day of ref,
// in ref's location.
func ClockOn(ref time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	), true
}
