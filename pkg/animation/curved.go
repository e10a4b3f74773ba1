package animation

// CurvedAnimation applies an [AnimationCurve] to the fractions produced by
// an [AnimationController].
type CurvedAnimation struct {
	curve      AnimationCurve
	controller *AnimationController
}

// NewCurvedAnimation pairs curve with controller.
func NewCurvedAnimation(curve AnimationCurve, controller *AnimationController) *CurvedAnimation {
	return &CurvedAnimation{curve: curve, controller: controller}
}

// Progress returns the current curved value. Depending on the curve, the
// result can overshoot or undershoot the default range of 0.0 to 1.0.
func (c *CurvedAnimation) Progress() float64 {
	return c.curve.Translate(c.controller.Fraction())
}

// Controller provides access to the underlying [AnimationController] for
// configuration beyond the Start/Update wrappers.
func (c *CurvedAnimation) Controller() *AnimationController {
	return c.controller
}

// Start starts the animation. Wrapper for [AnimationController.Start].
func (c *CurvedAnimation) Start(ctx RequestContext) {
	c.controller.Start(ctx)
}

// Update advances the animation. Wrapper for [AnimationController.Update].
func (c *CurvedAnimation) Update(ctx RequestContext, nanos float64) {
	c.controller.Update(ctx, nanos)
}
