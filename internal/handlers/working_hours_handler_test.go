package handlers

import "testing"

func TestIsValidDayConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  WorkingDayConfig
		want bool
	}{
		{"no break", WorkingDayConfig{StartTime: "09:00", EndTime: "18:00"}, true},
		{"with break", WorkingDayConfig{StartTime: "09:00", EndTime: "18:00", BreakStart: "12:00", BreakEnd: "13:00"}, true},
		{"break at the edges", WorkingDayConfig{StartTime: "09:00", EndTime: "18:00", BreakStart: "09:00", BreakEnd: "18:00"}, true},
		{"inverted hours", WorkingDayConfig{StartTime: "18:00", EndTime: "09:00"}, false},
		{"zero-length day", WorkingDayConfig{StartTime: "09:00", EndTime: "09:00"}, false},
		{"inverted break", WorkingDayConfig{StartTime: "09:00", EndTime: "18:00", BreakStart: "13:00", BreakEnd: "12:00"}, false},
		{"break outside hours", WorkingDayConfig{StartTime: "09:00", EndTime: "18:00", BreakStart: "08:00", BreakEnd: "10:00"}, false},
		{"half break", WorkingDayConfig{StartTime: "09:00", EndTime: "18:00", BreakStart: "12:00"}, false},
		{"malformed clock", WorkingDayConfig{StartTime: "9h", EndTime: "18:00"}, false},
	}

	for _, c := range cases {
		if got := isValidDayConfig(c.cfg); got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		if !isValidClock(ok) {
			t.Fatalf("expected %q to be valid", ok)
		}
	}
	for _, bad := range []string{"", "24:00", "9:3", "believe"} {
		if isValidClock(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
