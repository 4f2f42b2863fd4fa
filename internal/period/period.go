// Package period maps symbolic period tokens ("daily", "weekly", "monthly")
// to concrete half-open time windows.
package period

import (
	"fmt"
	"time"
)

// Tokens recognized by Resolve. An empty token resolves to Daily.
const (
	Daily   = "daily"
	Weekly  = "weekly"
	Monthly = "monthly"
)

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window. Start is inclusive,
// End is exclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Resolve maps a period token to the window ending at now. The caller always
// supplies now; this package never reads the clock. An empty token is the
// documented default (daily); any other unrecognized token is an error.
func Resolve(token string, now time.Time) (Window, error) {
	switch token {
	case Daily, "":
		return Window{Start: now.AddDate(0, 0, -1), End: now}, nil
	case Weekly:
		return Window{Start: now.AddDate(0, 0, -7), End: now}, nil
	case Monthly:
		return Window{Start: now.AddDate(0, 0, -30), End: now}, nil
	default:
		return Window{}, fmt.Errorf("unknown period %q: expected daily, weekly, or monthly", token)
	}
}
