package sim

import (
	"fmt"
	"slices"
)

// ValidStepMinutes are the accepted advance granularities: 1 min, 5 min,
// 30 min, 1 hour, 2 hours, 1 day.
var ValidStepMinutes = []int{1, 5, 30, 60, 120, 1440}

// Config carries every tunable of a simulation run.
type Config struct {
	Clerks       int              // number of clerk windows
	MaxQueueLen  int              // waiting line bound
	Distribution DistributionKind // family for all stochastic draws
	Seed         int64            // deterministic seed for the shared generator

	InterArrivalRange    Range // minutes between client arrivals
	ProfitRange          Range // monetary value per served client
	ServiceDurationRange Range // minutes of service per client

	StepMinutes  int     // minutes simulated per Advance call
	ModelingDays int     // length of the modeled month
	ClerkSalary  float64 // charged per clerk at each business-day close

	Calendar Calendar
}

// DefaultConfig returns the stock parameter set: 3 clerks, line bound 10,
// uniform draws, arrivals every 0-15 min, profit 100-10000, service 2-30 min,
// 30 min step, a 30-day month, salary 2000.
func DefaultConfig() Config {
	return Config{
		Clerks:               3,
		MaxQueueLen:          10,
		Distribution:         DistUniform,
		Seed:                 42,
		InterArrivalRange:    Range{Lo: 0, Hi: 15},
		ProfitRange:          Range{Lo: 100, Hi: 10000},
		ServiceDurationRange: Range{Lo: 2, Hi: 30},
		StepMinutes:          30,
		ModelingDays:         30,
		ClerkSalary:          2000,
		Calendar:             DefaultCalendar(),
	}
}

// Validate fails fast on malformed configuration. Values are never silently
// clamped.
func (c Config) Validate() error {
	if c.Clerks <= 0 {
		return fmt.Errorf("clerk count must be positive, got %d", c.Clerks)
	}
	if c.MaxQueueLen <= 0 {
		return fmt.Errorf("max queue length must be positive, got %d", c.MaxQueueLen)
	}
	if !slices.Contains(ValidDistributionKinds, c.Distribution) {
		return fmt.Errorf("unknown distribution kind %q", c.Distribution)
	}
	for _, rg := range []struct {
		name string
		r    Range
	}{
		{"inter-arrival", c.InterArrivalRange},
		{"profit", c.ProfitRange},
		{"service duration", c.ServiceDurationRange},
	} {
		if rg.r.Lo > rg.r.Hi {
			return fmt.Errorf("%s range: min %v > max %v", rg.name, rg.r.Lo, rg.r.Hi)
		}
		if rg.r.Lo < 0 {
			return fmt.Errorf("%s range: min %v is negative", rg.name, rg.r.Lo)
		}
	}
	if !slices.Contains(ValidStepMinutes, c.StepMinutes) {
		return fmt.Errorf("step must be one of %v minutes, got %d", ValidStepMinutes, c.StepMinutes)
	}
	if c.ModelingDays <= 0 {
		return fmt.Errorf("modeling days must be positive, got %d", c.ModelingDays)
	}
	if c.ClerkSalary < 0 {
		return fmt.Errorf("clerk salary must not be negative, got %v", c.ClerkSalary)
	}
	if c.Calendar.OpenHour < 0 || c.Calendar.CloseHour > HoursPerDay ||
		c.Calendar.OpenHour >= c.Calendar.FridayCloseHour || c.Calendar.FridayCloseHour > c.Calendar.CloseHour {
		return fmt.Errorf("calendar hours out of order: open %d, friday close %d, close %d",
			c.Calendar.OpenHour, c.Calendar.FridayCloseHour, c.Calendar.CloseHour)
	}
	if c.Calendar.BreakStartHour < c.Calendar.OpenHour || c.Calendar.BreakEndHour > c.Calendar.FridayCloseHour ||
		c.Calendar.BreakStartHour > c.Calendar.BreakEndHour {
		return fmt.Errorf("break hours %d-%d fall outside the business window",
			c.Calendar.BreakStartHour, c.Calendar.BreakEndHour)
	}
	return nil
}
