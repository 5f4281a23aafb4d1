// Package theme picks the entry screen palette from the time of day.
package theme

import (
	"time"

	"go.uber.org/fx"
)

var Module = fx.Module("theme",
	fx.Provide(func() Clock { return SystemClock{} }),
)

// Name identifies one of the four time-of-day themes
type Name string

const (
	Dawn  Name = "dawn"
	Day   Name = "day"
	Dusk  Name = "dusk"
	Night Name = "night"
)

// Theme is the fixed color pair applied to the orb and the grid
type Theme struct {
	Name  Name
	Orb   string
	Grid  string
	Label string
}

var (
	dawnTheme  = Theme{Name: Dawn, Orb: "#F59E0B", Grid: "#FDBA74", Label: "First light over the fields"}
	dayTheme   = Theme{Name: Day, Orb: "#60A5FA", Grid: "#60A5FA", Label: "The prairie at full signal"}
	duskTheme  = Theme{Name: Dusk, Orb: "#D4AF37", Grid: "#C084FC", Label: "Golden hour on the grid"}
	nightTheme = Theme{Name: Night, Orb: "#818CF8", Grid: "#3B82F6", Label: "The network never sleeps"}
)

// All returns the four themes in day order
func All() []Theme {
	return []Theme{dawnTheme, dayTheme, duskTheme, nightTheme}
}

// ForHour maps an hour of day to its theme. Ranges are [5,10) dawn,
// [10,17) day, [17,20) dusk and night otherwise. Hours outside 0..23
// wrap around the clock.
func ForHour(hour int) Theme {
	hour %= 24
	if hour < 0 {
		hour += 24
	}

	switch {
	case hour >= 5 && hour < 10:
		return dawnTheme
	case hour >= 10 && hour < 17:
		return dayTheme
	case hour >= 17 && hour < 20:
		return duskTheme
	default:
		return nightTheme
	}
}

// Lookup finds a theme by name
func Lookup(name Name) (Theme, bool) {
	for _, t := range All() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Clock is the time source for theme selection
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Fixed returns a clock stuck at t
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Current returns the theme for the clock's hour in loc. A nil loc
// uses the clock's own location.
func Current(c Clock, loc *time.Location) Theme {
	now := c.Now()
	if loc != nil {
		now = now.In(loc)
	}
	return ForHour(now.Hour())
}
