package timezone

import "time"

// Default is the fallback location when none is configured. The platform
// currently serves a single market.
const Default = "America/Sao_Paulo"

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(Default)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
