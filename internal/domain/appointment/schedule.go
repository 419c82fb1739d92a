package appointment

import (
	"time"

	"github.com/groomly/salon-scheduler/internal/models"
)

// DaySchedule is a professional's working hours projected onto one date.
type DaySchedule struct {
	Open  Interval
	Break *Interval
}

// ResolveDaySchedule projects wh onto day. Returns false when the
// professional is closed (no record, inactive, or malformed hours).
func ResolveDaySchedule(wh *models.WorkingHours, day time.Time) (DaySchedule, bool) {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return DaySchedule{}, false
	}

	open, ok1 := ClockOn(day, wh.StartTime)
	end, ok2 := ClockOn(day, wh.EndTime)
	if !ok1 || !ok2 || !open.Before(end) {
		return DaySchedule{}, false
	}

	sched := DaySchedule{Open: Interval{Start: open, End: end}}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		bs, ok1 := ClockOn(day, wh.BreakStart)
		be, ok2 := ClockOn(day, wh.BreakEnd)
		if ok1 && ok2 && bs.Before(be) {
			sched.Break = &Interval{Start: bs, End: be}
		}
	}

	return sched, true
}

// Fits reports whether iv lies inside the open hours and clear of the break.
func (s DaySchedule) Fits(iv Interval) bool {
	if iv.Start.Before(s.Open.Start) || iv.End.After(s.Open.End) {
		return false
	}
	if s.Break != nil && iv.Overlaps(*s.Break) {
		return false
	}
	return true
}

// BlockedIntervals projects one-off blocks onto day. Rows with malformed
// times are skipped rather than failing the whole computation.
func BlockedIntervals(blocks []models.BlockedTime, day time.Time) []Interval {
	out := make([]Interval, 0, len(blocks))
	for _, b := range blocks {
		start, ok1 := ClockOn(day, b.StartTime)
		end, ok2 := ClockOn(day, b.EndTime)
		if ok1 && ok2 && start.Before(end) {
			out = append(out, Interval{Start: start, End: end})
		}
	}
	return out
}
