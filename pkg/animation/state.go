package animation

import "fmt"

// AnimationStatus is the externally visible state of an animation.
type AnimationStatus int

const (
	// StatusNotRunning means the animation is waiting for an event, a start
	// time, or has never been started.
	StatusNotRunning AnimationStatus = iota
	// StatusEnlisting means the animation just passed its start time and is
	// producing its first frame.
	StatusEnlisting
	// StatusRunning means the animation is progressing.
	StatusRunning
	// StatusRepeating means the animation just crossed a repeat boundary.
	StatusRepeating
	// StatusRetiring means the animation has settled at its end fraction and
	// will be removed on the next advance.
	StatusRetiring
)

func (s AnimationStatus) String() string {
	switch s {
	case StatusNotRunning:
		return "not-running"
	case StatusEnlisting:
		return "enlisting"
	case StatusRunning:
		return "running"
	case StatusRepeating:
		return "repeating"
	case StatusRetiring:
		return "retiring"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// statusPhase is the internal lifecycle phase of a stored animation.
type statusPhase int

const (
	phasePendingEvent statusPhase = iota
	phaseWaiting
	phaseEnlisting
	phaseRunning
	phaseRepeating
	phaseRetiring
)

// internalStatus pairs a phase with its time payload: the post-event delay
// for phasePendingEvent, the start time (on the animator clock) otherwise.
type internalStatus struct {
	phase statusPhase
	nanos float64
}

func waiting(start float64) internalStatus {
	return internalStatus{phase: phaseWaiting, nanos: start}
}

func pendingEvent(delay float64) internalStatus {
	return internalStatus{phase: phasePendingEvent, nanos: delay}
}

func (st internalStatus) isActive() bool {
	switch st.phase {
	case phaseEnlisting, phaseRunning, phaseRetiring:
		return true
	default:
		return false
	}
}

// addDelay shifts the animation's start time by delayNanos. A waiting
// animation whose whole span has already passed retires instead.
func (st internalStatus) addDelay(curNanos, delayNanos, duration float64) internalStatus {
	switch st.phase {
	case phasePendingEvent:
		return pendingEvent(st.nanos + delayNanos)
	case phaseWaiting:
		start := st.nanos + delayNanos
		if curNanos > start+duration {
			return internalStatus{phase: phaseRetiring}
		}
		return waiting(start)
	case phaseEnlisting, phaseRepeating, phaseRunning:
		start := st.nanos + delayNanos
		if start > curNanos {
			return internalStatus{phase: phaseRunning, nanos: start}
		}
		return waiting(start)
	default: // phaseRetiring
		return st
	}
}

// pending converts a scheduled status into phasePendingEvent, preserving any
// head start the animation already had as a (non-positive) delay.
func (st internalStatus) pending(curNanos float64) internalStatus {
	switch st.phase {
	case phaseWaiting, phaseEnlisting, phaseRunning:
		delay := curNanos - st.nanos
		if delay > 0 {
			delay = 0
		}
		return pendingEvent(delay)
	default:
		return st
	}
}

// animationState is the full per-animation record. It is owned exclusively
// by the storage inside an Animator; external code only borrows it through
// an AnimationID.
type animationState struct {
	duration    float64 // nanos
	curve       AnimationCurve
	direction   Direction
	repeatLimit int // repeats allowed; <= 0 means unlimited
	status      internalStatus
	sinceStart  float64
	fraction    float64
	progress    float64
	repeatCount int
}

func newAnimationState(status internalStatus) animationState {
	return animationState{
		duration:    1,
		repeatLimit: 1,
		status:      status,
	}
}

func (s *animationState) isActive() bool {
	return s.status.isActive()
}

// startPending releases a pending animation into phaseWaiting, applying its
// accumulated delay. Reports whether the animation was pending.
func (s *animationState) startPending(curNanos float64) bool {
	if s.status.phase != phasePendingEvent {
		return false
	}
	s.status = waiting(curNanos + s.status.nanos)
	return true
}

// calc recomputes fraction and progress from sinceStart. Past the duration
// it either re-enters phaseRepeating (one more calc pass runs at the
// boundary, so curves discontinuous at t=1 settle at the end value before
// repeating) or clamps to the direction's end fraction and retires.
func (s *animationState) calc(curNanos float64) {
	beforeEnd := s.sinceStart < s.duration
	evenRepeat := s.repeatCount%2 == 0

	if beforeEnd {
		s.fraction = s.direction.Translate(s.sinceStart/s.duration, evenRepeat)
		s.progress = s.curve.Translate(s.fraction)
		return
	}

	s.repeatCount++
	if s.repeatLimit <= 0 || s.repeatCount < s.repeatLimit {
		s.status = internalStatus{phase: phaseRepeating, nanos: curNanos}
	} else {
		endFraction := s.direction.EndFraction(evenRepeat)
		s.fraction = endFraction
		s.progress = endFraction
		s.status = internalStatus{phase: phaseRetiring}
	}
}

// advance moves the animation to curNanos on the animator clock. It returns
// true when the animation should be removed from storage.
func (s *animationState) advance(curNanos float64) bool {
	switch s.status.phase {
	case phaseWaiting:
		start := s.status.nanos
		s.sinceStart = curNanos - start
		if s.sinceStart > 0 {
			s.status = internalStatus{phase: phaseEnlisting, nanos: start}
			s.calc(curNanos)
		}
		return false
	case phaseEnlisting, phaseRepeating:
		start := s.status.nanos
		s.sinceStart = curNanos - start
		s.status = internalStatus{phase: phaseRunning, nanos: start}
		s.calc(curNanos)
		return false
	case phaseRunning:
		s.sinceStart = curNanos - s.status.nanos
		s.calc(curNanos)
		return false
	case phaseRetiring:
		return true
	default: // phasePendingEvent: inert until its trigger fires
		return false
	}
}

// publicStatus maps the internal phase to the externally visible status.
func (s *animationState) publicStatus() AnimationStatus {
	switch s.status.phase {
	case phaseEnlisting:
		return StatusEnlisting
	case phaseRunning:
		return StatusRunning
	case phaseRepeating:
		return StatusRepeating
	case phaseRetiring:
		return StatusRetiring
	default:
		return StatusNotRunning
	}
}
