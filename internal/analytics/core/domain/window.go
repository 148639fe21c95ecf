package domain

import (
	"math"
	"time"
)

// Window is a relative time-window label such as "7d".
type Window string

const (
	WindowHour    Window = "1h"
	WindowDay     Window = "1d"
	WindowWeek    Window = "7d"
	WindowMonth   Window = "30d"
	WindowQuarter Window = "90d"
	WindowYear    Window = "1y"

	// DefaultWindow is the window shown when the caller does not pick one.
	DefaultWindow = WindowWeek
)

const (
	millisPerHour int64 = 60 * 60 * 1000
	millisPerDay        = 24 * millisPerHour
	millisPerYear       = 365 * millisPerDay
)

// Windows is the fixed set of labels offered to callers.
var Windows = []Window{WindowHour, WindowDay, WindowWeek, WindowMonth, WindowQuarter, WindowYear}

// Valid reports whether w is one of Windows.
func (w Window) Valid() bool {
	for _, known := range Windows {
		if w == known {
			return true
		}
	}
	return false
}

// Millis returns the window length in milliseconds. The magnitude is the run
// of leading digits and the unit is the last character; an unrecognised unit
// or a missing magnitude yields 0.
func (w Window) Millis() int64 {
	s := string(w)
	if s == "" {
		return 0
	}

	var unit int64
	switch s[len(s)-1] {
	case 'h':
		unit = millisPerHour
	case 'd':
		unit = millisPerDay
	case 'y':
		unit = millisPerYear
	default:
		return 0
	}

	var n int64
	digits := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int64(s[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			return math.MaxInt64
		}
		n = n*10 + d
		digits++
	}
	if digits == 0 {
		return 0
	}
	if n > math.MaxInt64/unit {
		return math.MaxInt64
	}
	return n * unit
}

// Duration is Millis as a time.Duration, saturating at the largest Duration.
func (w Window) Duration() time.Duration {
	ms := w.Millis()
	if ms > math.MaxInt64/int64(time.Millisecond) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}
