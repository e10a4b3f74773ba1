package animation

import "time"

// AnimationController drives a single animation without an [Animator].
// It produces a fraction between 0.0 and 1.0 over the configured duration
// and can run forward, reversed, alternating and repeated.
//
// The controller is driven externally: call [AnimationController.Start]
// once, then [AnimationController.Update] on every animation frame with the
// elapsed nanoseconds. While the animation is still running, Update asks
// the host for another frame through the [RequestContext]; when it ends,
// the fraction settles at the direction's end fraction.
type AnimationController struct {
	duration    float64 // nanos
	direction   Direction
	repeatLimit int // <= 0 means unlimited
	layout      bool

	status     AnimationStatus
	sinceStart float64
	fraction   float64
}

// NewAnimationController creates a forward, run-once controller with the
// given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	c := &AnimationController{
		repeatLimit: 1,
		status:      StatusNotRunning,
	}
	c.SetDuration(duration)
	return c
}

// RepeatLimit is the builder-style variant of SetRepeatLimit.
func (c *AnimationController) RepeatLimit(limit int) *AnimationController {
	c.SetRepeatLimit(limit)
	return c
}

// SetRepeatLimit sets how many times the animation runs; values <= 0 repeat
// without limit.
func (c *AnimationController) SetRepeatLimit(limit int) {
	c.repeatLimit = limit
}

// Direction is the builder-style variant of SetDirection.
func (c *AnimationController) Direction(direction Direction) *AnimationController {
	c.SetDirection(direction)
	return c
}

// SetDirection sets the direction and resets the controller.
func (c *AnimationController) SetDirection(direction Direction) {
	c.direction = direction
	c.Reset()
}

// Layout is the builder-style variant of SetLayout.
func (c *AnimationController) Layout(layout bool) *AnimationController {
	c.SetLayout(layout)
	return c
}

// SetLayout makes each update request a widget relayout instead of a paint.
func (c *AnimationController) SetLayout(layout bool) {
	c.layout = layout
}

// Duration is the builder-style variant of SetDuration.
func (c *AnimationController) Duration(duration time.Duration) *AnimationController {
	c.SetDuration(duration)
	return c
}

// SetDuration sets the animation duration and resets the controller.
// A zero or negative duration completes instantly on the next update.
func (c *AnimationController) SetDuration(duration time.Duration) {
	c.duration = float64(duration.Nanoseconds())
	c.Reset()
}

// Fraction returns the current direction-adjusted fraction (between 0.0 and
// 1.0). Feed it through a curve's Translate for eased progress.
func (c *AnimationController) Fraction() float64 {
	return c.fraction
}

// Status returns the current [AnimationStatus].
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// Animating reports whether the animation is running.
func (c *AnimationController) Animating() bool {
	switch c.status {
	case StatusEnlisting, StatusRunning, StatusRepeating:
		return true
	default:
		return false
	}
}

// Reset stops the controller and rewinds the fraction to the direction's
// start.
func (c *AnimationController) Reset() {
	c.sinceStart = 0
	c.status = StatusNotRunning

	switch c.direction {
	case Reverse, AlternateReverse:
		c.fraction = 1.0
	default:
		c.fraction = 0.0
	}
}

// Start begins the animation and performs the first update immediately.
func (c *AnimationController) Start(ctx RequestContext) {
	c.sinceStart = 0
	c.fraction = 0
	c.status = StatusEnlisting
	c.Update(ctx, 0)
}

// Update advances the animation by the given elapsed nanoseconds.
//
// Call this on every animation-frame notification from the host. While the
// transition's end has not been reached an additional animation frame is
// requested; afterwards the fraction stays at the terminal value and the
// status becomes [StatusRetiring].
func (c *AnimationController) Update(ctx RequestContext, nanos float64) {
	switch c.status {
	case StatusNotRunning, StatusRetiring:
		return
	}

	c.sinceStart += nanos

	if c.duration <= 0 {
		c.fraction = c.direction.EndFraction(true)
		c.status = StatusRetiring
	} else {
		factor := c.sinceStart / c.duration
		repeatCount := int(factor)
		fraction := factor - float64(repeatCount)
		evenRepeat := repeatCount%2 == 0

		if c.repeatLimit <= 0 || repeatCount < c.repeatLimit {
			c.fraction = c.direction.Translate(fraction, evenRepeat)
			c.status = StatusRunning
			ctx.RequestAnimFrame()
		} else {
			c.fraction = c.direction.EndFraction(!evenRepeat)
			c.status = StatusRetiring
		}
	}

	if c.layout {
		ctx.RequestLayout()
	} else {
		ctx.RequestPaint()
	}
}
