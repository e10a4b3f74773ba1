package animation

// RequestContext is the capability an animation needs from its host: the
// ability to ask for a repaint, a relayout, and another animation frame.
// Any concrete UI context can implement it; the engine takes it as a
// parameter rather than depending on a host framework type.
type RequestContext interface {
	// RequestPaint asks the host to repaint the owning widget.
	RequestPaint()
	// RequestLayout asks the host to re-run layout for the owning widget.
	RequestLayout()
	// RequestAnimFrame asks the host to schedule another animation tick.
	RequestAnimFrame()
}
