// Package clock provides the time source used by every now-dependent
// operation. Loading and reconciliation take a Clock rather than calling
// time.Now, so runs are deterministic under test.
package clock

import "time"

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// System returns the real current time.
type System struct{}

func NewSystem() System { return System{} }

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func NewFixed(t time.Time) Fixed { return Fixed{T: t} }

func (f Fixed) Now() time.Time { return f.T }
