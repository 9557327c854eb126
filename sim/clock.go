package sim

import "fmt"

const (
	MinutesPerHour = 60
	HoursPerDay    = 24
	MinutesPerDay  = HoursPerDay * MinutesPerHour
)

// Clock tracks simulation time as a day counter plus a minute of day.
// Day 1 is a Monday.
type Clock struct {
	Date   int // day counter, starts at 1
	Minute int // minute of day in [0, MinutesPerDay)
}

// Advance moves the clock forward exactly one minute, wrapping the minute of
// day to 0 and incrementing the date at the 1440th minute.
func (c *Clock) Advance() {
	c.Minute++
	if c.Minute == MinutesPerDay {
		c.Minute = 0
		c.Date++
	}
}

// AbsoluteMinute returns the number of minutes since day 1, 00:00.
func (c Clock) AbsoluteMinute() int {
	return (c.Date-1)*MinutesPerDay + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("day %d %02d:%02d", c.Date, c.Minute/MinutesPerHour, c.Minute%MinutesPerHour)
}
