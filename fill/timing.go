package fill

import "time"

// Timing groups the wait ceilings one engine instance runs under. The
// values are injectable so constrained environments can run the same
// resolvers with longer windows instead of forking the adapter.
type Timing struct {
	// Visible bounds how long a single predicate may wait for its target
	// to become visible.
	Visible time.Duration
	// Options bounds the wait for a typeahead option list to render after
	// typing.
	Options time.Duration
	// Settle is the pause after navigation, clicks, and typing that lets
	// client-side re-renders catch up before the next query.
	Settle time.Duration

	// TextCeiling caps the interactive-element count of a question block
	// for text and combobox fields.
	TextCeiling int
	// RadioCeiling caps it for radio groups, which legitimately hold more
	// inputs per block.
	RadioCeiling int
	// MaxClimb is how many ancestor levels the block search walks before
	// failing closed.
	MaxClimb int
}

// DefaultTiming suits an unconstrained desktop environment.
func DefaultTiming() Timing {
	return Timing{
		Visible:      2 * time.Second,
		Options:      3 * time.Second,
		Settle:       500 * time.Millisecond,
		TextCeiling:  40,
		RadioCeiling: 60,
		MaxClimb:     8,
	}
}

// SlowTiming stretches the waits for constrained environments where
// renders and network-driven option lists lag. The structural ceilings do
// not change; only time does.
func SlowTiming() Timing {
	return Timing{
		Visible:      3500 * time.Millisecond,
		Options:      5 * time.Second,
		Settle:       1200 * time.Millisecond,
		TextCeiling:  40,
		RadioCeiling: 60,
		MaxClimb:     8,
	}
}

// Millis converts a duration to the float milliseconds the browser driver
// expects.
func Millis(d time.Duration) float64 {
	return float64(d.Milliseconds())
}
