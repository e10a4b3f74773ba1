// Package animation provides a frame-driven value-interpolation engine:
// easing curves, a slot-map-backed animation scheduler, and convenience
// wrappers for transitioning single values.
//
// # Core Components
//
//   - [Animator]: a registry of concurrently running animations. The host
//     calls [Animator.AdvanceBy] once per frame with the elapsed time in
//     nanoseconds; the animator advances every stored animation, retires
//     finished ones, and hands the caller an [AnimationCtx] to query
//     per-animation progress by [AnimationID].
//
//   - [AnimationHandle]: builder-style configuration of a stored animation
//     (duration, curve, direction, repeat limit, delay, and event
//     dependencies via [AnimationHandle.After]).
//
//   - [AnimationController]: a self-contained single-animation state machine
//     for widgets that only need one animation and no registry.
//
//   - [Animated]: wraps a controller plus a start/end value pair to
//     transition one value from A to B, recomputing the current value on
//     every [Animated.Update].
//
//   - [AnimationCurve]: easing functions mapping normalized time to
//     progress. Includes the Penner easing family and CSS-style
//     cubic-bezier curves.
//
// # Frame model
//
// The engine is single-threaded and cooperative. It never schedules work
// itself: the host delivers a monotonically increasing elapsed-nanoseconds
// value on each animation tick, and the engine signals repaint, relayout and
// further frame requests through the narrow [RequestContext] capability.
//
// # Basic Usage
//
//	animator := animation.NewAnimator()
//	fade := animator.NewAnimation().
//		Duration(300 * time.Millisecond).
//		Curve(animation.EaseInOut).
//		ID()
//	slide := animator.NewAnimation().
//		Duration(200 * time.Millisecond).
//		After(animation.EndedEvent(fade)).
//		ID()
//
//	// Once per frame:
//	animator.AdvanceBy(deltaNanos, func(ctx *animation.AnimationCtx) {
//		ctx.WithAnimation(fade, func(c *animation.AnimationCtx) {
//			opacity = c.Clamped()
//		})
//		ctx.WithAnimation(slide, func(c *animation.AnimationCtx) {
//			offset = c.Progress() * 40
//		})
//	})
//
// For the single-value case, see [Animated] and the Animated* constructors.
package animation
