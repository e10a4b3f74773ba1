package animation

import "fmt"

// AnimationCtx provides read-only information about the progress of
// currently running animations. It can be focused on one animation at a
// time and refocused by [AnimationID], which lets an animated data
// structure descend without every level needing to know about ids.
type AnimationCtx struct {
	// immediate contexts stand alone; full contexts borrow the storage.
	immediate   bool
	immProgress float64
	immStatus   AnimationStatus

	focus      AnimationID
	additive   bool
	animations *animationStorage[animationState]
}

// newAnimationCtx builds a full context over the given storage. Focusing on
// an id that is not present is an internal wiring bug, not a runtime
// condition, and panics.
func newAnimationCtx(focus AnimationID, animations *animationStorage[animationState], additive bool) *AnimationCtx {
	if focus.Valid() && !animations.contains(focus) {
		panic(fmt.Sprintf("animation context focused on unknown %v", focus))
	}
	return &AnimationCtx{
		focus:      focus,
		additive:   additive,
		animations: animations,
	}
}

// RunningCtx makes a lightweight context representing a single running
// animation at the specified fraction.
func RunningCtx(frac float64) *AnimationCtx {
	return &AnimationCtx{
		immediate:   true,
		immProgress: frac,
		immStatus:   StatusRunning,
	}
}

func (ctx *AnimationCtx) focused() *animationState {
	if !ctx.focus.Valid() {
		return nil
	}
	return ctx.animations.get(ctx.focus)
}

// Progress returns the curve-translated progress of the focused animation,
// or 0 if nothing is focused.
func (ctx *AnimationCtx) Progress() float64 {
	if ctx.immediate {
		return ctx.immProgress
	}
	if state := ctx.focused(); state != nil {
		return state.progress
	}
	return 0
}

// Clamped returns the focused animation's progress clamped to the unit
// interval.
func (ctx *AnimationCtx) Clamped() float64 {
	return ClampUnit(ctx.Progress())
}

// Additive reports whether the focused animation's value should be added to
// the underlying value rather than replace it.
func (ctx *AnimationCtx) Additive() bool {
	if ctx.immediate {
		return false
	}
	return ctx.additive
}

// Status returns the status of the focused animation, or
// [StatusNotRunning] if nothing is focused.
func (ctx *AnimationCtx) Status() AnimationStatus {
	if ctx.immediate {
		return ctx.immStatus
	}
	if state := ctx.focused(); state != nil {
		return state.publicStatus()
	}
	return StatusNotRunning
}

// WithAnimation runs f with the context refocused on id, but only when id
// resolves to an active (enlisting, running or retiring) animation. It
// reports whether f ran: false means the id is absent, pending or waiting.
func (ctx *AnimationCtx) WithAnimation(id AnimationID, f func(*AnimationCtx)) bool {
	return ctx.WithAnimationFull(id, false, f)
}

// WithAnimationFull is [AnimationCtx.WithAnimation] with control over the
// additive flag of the refocused context.
func (ctx *AnimationCtx) WithAnimationFull(id AnimationID, additive bool, f func(*AnimationCtx)) bool {
	if ctx.immediate || !id.Valid() {
		return false
	}
	state := ctx.animations.get(id)
	if state == nil || !state.isActive() {
		return false
	}
	f(newAnimationCtx(id, ctx.animations, additive))
	return true
}

// QueryAnimation captures a value from the context refocused on id. The
// second return mirrors [AnimationCtx.WithAnimation]: false when id does
// not resolve to an active animation.
func QueryAnimation[V any](ctx *AnimationCtx, id AnimationID, f func(*AnimationCtx) V) (V, bool) {
	var res V
	ran := ctx.WithAnimation(id, func(c *AnimationCtx) {
		res = f(c)
	})
	return res, ran
}
