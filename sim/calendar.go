package sim

// Mode is the calendar classification of a single minute.
type Mode string

const (
	ModeOpen   Mode = "open"
	ModeBreak  Mode = "break"
	ModeClosed Mode = "closed"
)

// Calendar holds the weekly business schedule: standard hours, the shortened
// Friday window, the daily lunch break, and the weekend closure. All hour
// fields are whole hours of day.
type Calendar struct {
	OpenHour        int // shift start on every working day
	CloseHour       int // shift end Monday..Thursday
	FridayCloseHour int // shift end on Fridays
	BreakStartHour  int // lunch break start, every working day
	BreakEndHour    int // lunch break end
}

// DefaultCalendar returns the standard schedule: 10:00-19:00 Monday through
// Thursday, 10:00-17:00 on Fridays, lunch 12:00-13:00, weekends closed.
func DefaultCalendar() Calendar {
	return Calendar{
		OpenHour:        10,
		CloseHour:       19,
		FridayCloseHour: 17,
		BreakStartHour:  12,
		BreakEndHour:    13,
	}
}

// IsWeekend reports whether the given date is a non-working day.
func (c Calendar) IsWeekend(date int) bool {
	d := date % 7
	return d == 6 || d == 0
}

func (c Calendar) isFriday(date int) bool {
	return date%7 == 5
}

// closeHour returns the shift end hour for a working day.
func (c Calendar) closeHour(date int) int {
	if c.isFriday(date) {
		return c.FridayCloseHour
	}
	return c.CloseHour
}

// Classify maps a (date, minute-of-day) pair to its calendar mode.
func (c Calendar) Classify(date, minute int) Mode {
	if c.IsWeekend(date) {
		return ModeClosed
	}
	hour := minute / MinutesPerHour
	if hour < c.OpenHour || hour >= c.closeHour(date) {
		return ModeClosed
	}
	if hour >= c.BreakStartHour && hour < c.BreakEndHour {
		return ModeBreak
	}
	return ModeOpen
}

// IsClosingMinute reports whether the given minute is the exact minute the
// business day ends on a working day.
func (c Calendar) IsClosingMinute(date, minute int) bool {
	if c.IsWeekend(date) {
		return false
	}
	return minute == c.closeHour(date)*MinutesPerHour
}

// OpenMinutes returns the elapsed open-business minutes from the start of the
// simulation up to the given clock position: full prior working days plus the
// elapsed part of the current day, with the lunch break excluded throughout.
func (c Calendar) OpenMinutes(date, minute int) int {
	breakLen := (c.BreakEndHour - c.BreakStartHour) * MinutesPerHour
	total := 0
	for d := 1; d < date; d++ {
		if c.IsWeekend(d) {
			continue
		}
		total += (c.closeHour(d)-c.OpenHour)*MinutesPerHour - breakLen
	}

	if c.IsWeekend(date) {
		return total
	}
	open := c.OpenHour * MinutesPerHour
	breakStart := c.BreakStartHour * MinutesPerHour
	breakEnd := c.BreakEndHour * MinutesPerHour
	close := c.closeHour(date) * MinutesPerHour
	switch {
	case minute < open:
		// before opening, nothing elapsed today
	case minute <= breakStart:
		total += minute - open
	case minute <= close:
		total += breakStart - open
		if minute > breakEnd {
			total += minute - breakEnd
		}
	default:
		total += (breakStart - open) + (close - breakEnd)
	}
	return total
}
