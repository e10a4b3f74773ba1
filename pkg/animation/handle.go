package animation

import (
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// AnimationHandle configures and inspects one animation stored in an
// [Animator]. Configuration methods return the handle for chaining:
//
//	id := animator.NewAnimation().
//		Duration(250 * time.Millisecond).
//		Curve(animation.EaseOutBack).
//		ID()
//
// A handle whose animation has retired is stale: configuration calls become
// no-ops and report a diagnostic through the errors package.
type AnimationHandle struct {
	id       AnimationID
	animator *Animator
}

// changeState applies f to the underlying state, or reports a stale handle.
func (h *AnimationHandle) changeState(op string, f func(*animationState)) *AnimationHandle {
	if state := h.animator.storage.get(h.id); state != nil {
		f(state)
	} else {
		errors.ReportStaleHandle(op, h.id.String())
	}
	return h
}

// Delay shifts this animation's start time by the given duration. Delaying a
// waiting animation past its whole span retires it; delaying a pending
// animation accumulates the delay applied once its event fires.
func (h *AnimationHandle) Delay(delay time.Duration) *AnimationHandle {
	curNanos := h.animator.currentTime()
	delayNanos := float64(delay.Nanoseconds())
	return h.changeState("animation.Handle.Delay", func(state *animationState) {
		state.status = state.status.addDelay(curNanos, delayNanos, state.duration)
	})
}

// Duration sets the duration of this animation.
func (h *AnimationHandle) Duration(duration time.Duration) *AnimationHandle {
	return h.changeState("animation.Handle.Duration", func(state *animationState) {
		state.duration = float64(duration.Nanoseconds())
	})
}

// DurationNanos sets the duration in (possibly fractional) nanoseconds.
func (h *AnimationHandle) DurationNanos(nanos float64) *AnimationHandle {
	return h.changeState("animation.Handle.DurationNanos", func(state *animationState) {
		state.duration = nanos
	})
}

// Direction sets the direction of this animation.
func (h *AnimationHandle) Direction(direction Direction) *AnimationHandle {
	return h.changeState("animation.Handle.Direction", func(state *animationState) {
		state.direction = direction
	})
}

// RepeatLimit sets how many times this animation should run. Values <= 0
// repeat without limit.
func (h *AnimationHandle) RepeatLimit(limit int) *AnimationHandle {
	return h.changeState("animation.Handle.RepeatLimit", func(state *animationState) {
		state.repeatLimit = limit
	})
}

// Curve sets the animation curve.
func (h *AnimationHandle) Curve(curve AnimationCurve) *AnimationHandle {
	return h.changeState("animation.Handle.Curve", func(state *animationState) {
		state.curve = curve
	})
}

// After makes this animation wait for the given event before starting. Its
// status becomes pending until the event fires, when it transitions to
// waiting at the then-current animator time.
func (h *AnimationHandle) After(event AnimationEvent) *AnimationHandle {
	h.animator.registerPending(event, h.id)
	curNanos := h.animator.currentTime()
	return h.changeState("animation.Handle.After", func(state *animationState) {
		state.status = state.status.pending(curNanos)
	})
}

// ID returns the animation id.
func (h *AnimationHandle) ID() AnimationID {
	return h.id
}

// IsValid reports whether this handle points to an animation that still
// exists within the animator.
func (h *AnimationHandle) IsValid() bool {
	return h.animator.storage.contains(h.id)
}

// Status returns the status of this animation. Stale handles report
// [StatusNotRunning].
func (h *AnimationHandle) Status() AnimationStatus {
	if state := h.animator.storage.get(h.id); state != nil {
		return state.publicStatus()
	}
	return StatusNotRunning
}
