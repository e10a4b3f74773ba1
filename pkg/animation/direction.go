package animation

import "fmt"

// Direction controls which way an animation runs and how it behaves when it
// repeats.
type Direction int

const (
	// Forward runs from fraction 0 to 1 on every repeat.
	Forward Direction = iota
	// Reverse runs from fraction 1 to 0 on every repeat.
	Reverse
	// Alternate runs forward on even repeats and reversed on odd repeats.
	Alternate
	// AlternateReverse runs reversed on even repeats and forward on odd repeats.
	AlternateReverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Alternate:
		return "alternate"
	case AlternateReverse:
		return "alternate-reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Translate adjusts a raw linear fraction for the direction, given the
// parity of the current repeat count.
func (d Direction) Translate(frac float64, evenRepeat bool) float64 {
	switch d {
	case Forward:
		return frac
	case Reverse:
		return 1.0 - frac
	case Alternate:
		if evenRepeat {
			return frac
		}
		return 1.0 - frac
	case AlternateReverse:
		if !evenRepeat {
			return frac
		}
		return 1.0 - frac
	default:
		return frac
	}
}

// EndFraction returns the fraction an animation settles at when it retires,
// consistent with the direction and the parity of the final repeat.
func (d Direction) EndFraction(evenRepeat bool) float64 {
	switch d {
	case Forward:
		return 1.0
	case Reverse:
		return 0.0
	case Alternate:
		if evenRepeat {
			return 1.0
		}
		return 0.0
	case AlternateReverse:
		if !evenRepeat {
			return 1.0
		}
		return 0.0
	default:
		return 1.0
	}
}
