package sim

import "testing"

func at(hour, minute int) int {
	return hour*MinutesPerHour + minute
}

func TestCalendar_Classify(t *testing.T) {
	cal := DefaultCalendar()

	cases := []struct {
		name   string
		date   int
		minute int
		want   Mode
	}{
		{"monday before opening", 1, at(9, 59), ModeClosed},
		{"monday at opening", 1, at(10, 0), ModeOpen},
		{"monday mid-morning", 1, at(11, 30), ModeOpen},
		{"monday lunch start", 1, at(12, 0), ModeBreak},
		{"monday during lunch", 1, at(12, 30), ModeBreak},
		{"monday lunch end", 1, at(13, 0), ModeOpen},
		{"monday last open minute", 1, at(18, 59), ModeOpen},
		{"monday at closing", 1, at(19, 0), ModeClosed},
		{"friday short close", 5, at(17, 0), ModeClosed},
		{"friday still open", 5, at(16, 59), ModeOpen},
		{"friday evening", 5, at(18, 0), ModeClosed},
		{"saturday midday", 6, at(12, 0), ModeClosed},
		{"sunday midday", 7, at(12, 0), ModeClosed},
		{"second monday open", 8, at(10, 0), ModeOpen},
		{"midnight", 2, 0, ModeClosed},
	}
	for _, tc := range cases {
		if got := cal.Classify(tc.date, tc.minute); got != tc.want {
			t.Errorf("%s: Classify(%d, %d) = %s, want %s", tc.name, tc.date, tc.minute, got, tc.want)
		}
	}
}

func TestCalendar_IsClosingMinute(t *testing.T) {
	cal := DefaultCalendar()

	if !cal.IsClosingMinute(1, at(19, 0)) {
		t.Error("monday 19:00 should be the closing minute")
	}
	if !cal.IsClosingMinute(5, at(17, 0)) {
		t.Error("friday 17:00 should be the closing minute")
	}
	if cal.IsClosingMinute(5, at(19, 0)) {
		t.Error("friday 19:00 is past the short close, not the closing minute")
	}
	if cal.IsClosingMinute(6, at(19, 0)) {
		t.Error("saturday has no closing minute")
	}
	if cal.IsClosingMinute(1, at(19, 1)) {
		t.Error("19:01 is past the closing minute")
	}
}

func TestCalendar_OpenMinutes(t *testing.T) {
	cal := DefaultCalendar()

	cases := []struct {
		name   string
		date   int
		minute int
		want   int
	}{
		{"day 1 at opening", 1, at(10, 0), 0},
		{"day 1 before opening", 1, at(8, 0), 0},
		{"day 1 one open hour", 1, at(11, 0), 60},
		{"day 1 at lunch start", 1, at(12, 0), 120},
		{"day 1 during lunch", 1, at(12, 30), 120},
		{"day 1 after lunch", 1, at(14, 0), 180},
		{"day 1 after close", 1, at(20, 0), 480},
		{"day 2 at opening", 2, at(10, 0), 480},
		{"friday after short close", 5, at(18, 0), 4*480 + 360},
		{"saturday", 6, at(12, 0), 4*480 + 360},
		{"sunday", 7, at(12, 0), 4*480 + 360},
		{"second monday at opening", 8, at(10, 0), 4*480 + 360},
		{"second monday one hour in", 8, at(11, 0), 4*480 + 360 + 60},
	}
	for _, tc := range cases {
		if got := cal.OpenMinutes(tc.date, tc.minute); got != tc.want {
			t.Errorf("%s: OpenMinutes(%d, %d) = %d, want %d", tc.name, tc.date, tc.minute, got, tc.want)
		}
	}
}
