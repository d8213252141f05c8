package reservation

import "time"

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow normalizes both bounds to UTC and rejects empty or inverted
// windows.
func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidTimeRange
	}
	return Window{Start: start.UTC(), End: end.UTC()}, nil
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// overlaps is the predicate HasTimeConflict implementations evaluate in the
// store: start < o.End AND end > o.Start. Windows that only touch
// (a.End == b.Start) do not overlap.
func (w Window) overlaps(o Window) bool {
	return w.Start.Before(o.End) && w.End.After(o.Start)
}

// Policy bounds the windows customers may book.
type Policy struct {
	MinDuration time.Duration
	MaxDuration time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MinDuration: 30 * time.Minute,
		MaxDuration: 4 * time.Hour,
	}
}

func (p Policy) Check(w Window, now time.Time) error {
	if !w.Start.After(now) {
		return ErrStartInPast
	}
	if p.MinDuration > 0 && w.Duration() < p.MinDuration {
		return ErrTooShort
	}
	if p.MaxDuration > 0 && w.Duration() > p.MaxDuration {
		return ErrTooLong
	}
	return nil
}
