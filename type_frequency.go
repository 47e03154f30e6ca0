package finbook

import (
	"fmt"
	"strings"

	"github.com/etnz/finbook/date"
)

// Frequency describes how often an auto-credit falls due.
type Frequency string

const (
	Monthly   Frequency = "Monthly"
	Quarterly Frequency = "Quarterly"
	Yearly    Frequency = "Yearly"
	// OneTime schedules fire once; after materializing, their next due date
	// is pushed to Terminal so they never trigger again.
	OneTime Frequency = "One-Time"
)

// Terminal is the sentinel due date of an exhausted One-Time schedule.
var Terminal = date.New(9999, 12, 31)

// ParseFrequency parses a frequency from its string form, case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(s) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	case "one-time", "onetime", "once":
		return OneTime, nil
	default:
		return "", fmt.Errorf("unknown frequency %q", s)
	}
}

// Valid reports whether f is one of the recognized frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case Monthly, Quarterly, Yearly, OneTime:
		return true
	default:
		return false
	}
}

// Next returns the occurrence following a due date. One-Time schedules are
// terminal: their next occurrence is the far-future Terminal sentinel.
// An unrecognized frequency is a configuration error; the caller must leave
// the schedule untouched.
func (f Frequency) Next(d date.Date) (date.Date, error) {
	switch f {
	case Monthly:
		return d.AddMonths(1), nil
	case Quarterly:
		return d.AddMonths(3), nil
	case Yearly:
		return d.AddYears(1), nil
	case OneTime:
		return Terminal, nil
	default:
		return date.Date{}, fmt.Errorf("unknown frequency %q", string(f))
	}
}
