package handlers

import "time"

func parseDate(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

func isValidClock(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
