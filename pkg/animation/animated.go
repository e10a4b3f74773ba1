package animation

import (
	"time"

	"github.com/go-drift/motion/pkg/geometry"
)

// Animated provides simple transition animations for a single value: it
// pairs an [AnimationController] with a start/end value and a [Lerp],
// recomputing the current value on every update.
//
// A new target set with [Animated.Animate] restarts the transition from the
// currently displayed value; there is no queueing, the last call wins.
type Animated[T comparable] struct {
	start T
	end   T
	lerp  Lerp[T]

	controller *AnimationController
	curve      AnimationCurve

	current T
}

// NewAnimated creates an animation holding value, blended with lerp.
// The default transition takes one second; chain [Animated.Duration] and
// [Animated.Curve] to configure:
//
//	color := animation.AnimatedColor(geometry.RGB(255, 0, 0)).
//		Duration(800 * time.Millisecond).
//		Curve(animation.EaseInOut)
func NewAnimated[T comparable](value T, lerp Lerp[T]) *Animated[T] {
	return &Animated[T]{
		start:      value,
		end:        value,
		lerp:       lerp,
		controller: NewAnimationController(time.Second),
		current:    value,
	}
}

// NewJumpAnimated is like [NewAnimated] with a zero duration: values change
// instantly until a duration is configured.
func NewJumpAnimated[T comparable](value T, lerp Lerp[T]) *Animated[T] {
	a := NewAnimated(value, lerp)
	a.controller.SetDuration(0)
	return a
}

// AnimatedFloat64 creates an animated float64.
func AnimatedFloat64(value float64) *Animated[float64] {
	return NewAnimated(value, LerpFloat64)
}

// AnimatedOffset creates an animated Offset.
func AnimatedOffset(value geometry.Offset) *Animated[geometry.Offset] {
	return NewAnimated(value, LerpOffset)
}

// AnimatedSize creates an animated Size.
func AnimatedSize(value geometry.Size) *Animated[geometry.Size] {
	return NewAnimated(value, LerpSize)
}

// AnimatedRect creates an animated Rect.
func AnimatedRect(value geometry.Rect) *Animated[geometry.Rect] {
	return NewAnimated(value, LerpRect)
}

// AnimatedInsets creates an animated Insets.
func AnimatedInsets(value geometry.Insets) *Animated[geometry.Insets] {
	return NewAnimated(value, LerpInsets)
}

// AnimatedColor creates an animated Color.
func AnimatedColor(value geometry.Color) *Animated[geometry.Color] {
	return NewAnimated(value, LerpColor)
}

// Curve is the builder-style variant of SetCurve.
func (a *Animated[T]) Curve(curve AnimationCurve) *Animated[T] {
	a.SetCurve(curve)
	return a
}

// SetCurve sets the [AnimationCurve].
func (a *Animated[T]) SetCurve(curve AnimationCurve) {
	a.curve = curve
}

// Duration is the builder-style variant of SetDuration.
func (a *Animated[T]) Duration(duration time.Duration) *Animated[T] {
	a.SetDuration(duration)
	return a
}

// SetDuration sets the transition duration.
func (a *Animated[T]) SetDuration(duration time.Duration) {
	a.controller.SetDuration(duration)
}

// Layout is the builder-style variant of SetLayout.
func (a *Animated[T]) Layout(layout bool) *Animated[T] {
	a.SetLayout(layout)
	return a
}

// SetLayout makes each update request a widget relayout instead of a paint.
func (a *Animated[T]) SetLayout(layout bool) {
	a.controller.SetLayout(layout)
}

// Get returns the current interpolated value.
func (a *Animated[T]) Get() T {
	return a.current
}

// Start returns the transition's start value.
func (a *Animated[T]) Start() T {
	return a.start
}

// End returns the transition's end value.
func (a *Animated[T]) End() T {
	return a.end
}

// Progress returns the controller's fraction (between 0.0 and 1.0).
func (a *Animated[T]) Progress() float64 {
	return a.controller.Fraction()
}

// Animating reports whether a transition is in progress.
func (a *Animated[T]) Animating() bool {
	return a.controller.Animating()
}

// Animate starts a transition from the currently displayed value to value.
// If a transition is already running it is restarted from the current
// value. Setting the existing end value is a no-op.
func (a *Animated[T]) Animate(ctx RequestContext, value T) {
	if value == a.end {
		return
	}
	a.start = a.current
	a.end = value
	a.controller.Reset()
	a.controller.Start(ctx)
	if !a.controller.Animating() { // zero duration completes instantly
		a.current = a.end
	}
}

// AnimateWith sets the curve and duration, then starts a transition to
// value like [Animated.Animate].
func (a *Animated[T]) AnimateWith(ctx RequestContext, value T, duration time.Duration, curve AnimationCurve) {
	a.SetCurve(curve)
	a.SetDuration(duration)
	a.Animate(ctx, value)
}

// JumpToValue stops any transition and sets the value immediately, with
// zero frames of transition.
func (a *Animated[T]) JumpToValue(value T) {
	a.controller.Reset()
	a.start = value
	a.end = value
	a.current = value
}

// EndAnimation freezes the animation at the currently displayed value
// without jumping to the original target.
func (a *Animated[T]) EndAnimation() {
	a.controller.Reset()
	a.start = a.current
	a.end = a.current
}

// Update advances the transition by the given elapsed nanoseconds and
// recomputes the current value. Call this on every animation frame while
// [Animated.Animating] reports true; it requests further frames through
// ctx as needed.
func (a *Animated[T]) Update(ctx RequestContext, nanos float64) {
	a.controller.Update(ctx, nanos)
	if a.Animating() {
		fraction := a.controller.Fraction()
		a.current = a.lerp(a.start, a.end, a.curve.Translate(fraction))
	} else {
		a.current = a.end
	}
}
