package animation

// AnimationEvent is a trigger inside an [Animator]: either a named event
// supplied by the user, or the end of another animation. Animations
// configured with [AnimationHandle.After] stay pending until their event
// fires.
//
// The zero value is not a meaningful event. Events are comparable and can be
// used as map keys.
type AnimationEvent struct {
	name string
	id   AnimationID
}

// NamedEvent returns the event fired by [Animator.ProcessNamedEvent].
func NamedEvent(name string) AnimationEvent {
	return AnimationEvent{name: name}
}

// EndedEvent returns the event fired when the given animation retires.
func EndedEvent(id AnimationID) AnimationEvent {
	return AnimationEvent{id: id}
}

func (e AnimationEvent) String() string {
	if e.name != "" {
		return "Named(" + e.name + ")"
	}
	return "Ended(" + e.id.String() + ")"
}

// Animator keeps track of multiple running animations and the dependencies
// between animations and events.
//
// It is single-threaded by design: one widget instance owns one Animator,
// and every method runs to completion synchronously. The zero value is
// ready to use.
type Animator struct {
	curNanos      float64
	pendingCount  uint32
	pendingStarts map[AnimationEvent][]AnimationID
	storage       animationStorage[animationState]
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{}
}

func (a *Animator) currentTime() float64 {
	return a.curNanos
}

// AdvanceBy advances the state of all stored animations by the given number
// of nanoseconds, then invokes f with a context exposing the post-advance
// state of every animation. It reports whether f ran; with empty storage it
// is a no-op and returns false.
//
// Animations that finish during this call retire: they are removed from
// storage before f runs, and their Ended events are processed strictly after
// f returns. Animations released by those events therefore first move on the
// following frame, never within this one.
func (a *Animator) AdvanceBy(nanos float64, f func(*AnimationCtx)) bool {
	if a.storage.empty() {
		return false
	}
	a.curNanos += nanos
	curNanos := a.curNanos

	// Only Ended events are produced here, and rarely more than a few.
	var pendingEvents []AnimationEvent

	a.storage.removeIf(func(id AnimationID, state *animationState) bool {
		remove := state.advance(curNanos)
		if remove {
			pendingEvents = append(pendingEvents, EndedEvent(id))
		}
		return remove
	})

	ctx := newAnimationCtx(AnimationID{}, &a.storage, false)
	f(ctx)

	for _, event := range pendingEvents {
		a.processEvent(event)
	}

	if a.storage.empty() {
		// Not required for correctness; keeps the clock small.
		a.curNanos = 0
	}
	return true
}

// AdvanceBy advances the animator like [Animator.AdvanceBy] while capturing
// the closure's result. The second return is false when the animator was
// empty and f did not run.
func AdvanceBy[V any](a *Animator, nanos float64, f func(*AnimationCtx) V) (V, bool) {
	var res V
	ran := a.AdvanceBy(nanos, func(ctx *AnimationCtx) {
		res = f(ctx)
	})
	return res, ran
}

// ProcessNamedEvent fires a named event, releasing every animation
// registered to start after it. This can be used to trigger animations
// configured elsewhere.
func (a *Animator) ProcessNamedEvent(name string) {
	a.processEvent(NamedEvent(name))
}

func (a *Animator) processEvent(event AnimationEvent) {
	ids := a.pendingStarts[event]
	if ids == nil {
		return
	}
	delete(a.pendingStarts, event)
	for _, id := range ids {
		if state := a.storage.get(id); state != nil {
			if state.startPending(a.curNanos) {
				a.pendingCount--
			}
		}
	}
}

func (a *Animator) registerPending(event AnimationEvent, id AnimationID) {
	// A stale id must not inflate pendingCount: it would never be paired
	// with a startPending decrement and Running would overcount forever.
	if !a.storage.contains(id) {
		return
	}
	if a.pendingStarts == nil {
		a.pendingStarts = make(map[AnimationEvent][]AnimationID)
	}
	a.pendingStarts[event] = append(a.pendingStarts[event], id)
	a.pendingCount++
}

// Running reports whether at least one animation is actively progressing,
// as opposed to merely waiting on an unfired event.
func (a *Animator) Running() bool {
	return a.storage.count()-a.pendingCount > 0
}

// IsEmpty reports whether the animator holds no animations at all, running
// or pending.
func (a *Animator) IsEmpty() bool {
	return a.storage.empty()
}

// NewAnimation creates a new animation scheduled to start at the current
// animator time and returns a handle to configure it. Fresh animations have
// a negligible duration; chain [AnimationHandle.Duration] and friends.
func (a *Animator) NewAnimation() *AnimationHandle {
	id := a.storage.insert(newAnimationState(waiting(a.curNanos)))
	return &AnimationHandle{id: id, animator: a}
}

// Handle returns a handle for the given animation id. The handle is not
// guaranteed to be valid; configuration calls on a stale handle no-op with a
// diagnostic.
func (a *Animator) Handle(id AnimationID) *AnimationHandle {
	return &AnimationHandle{id: id, animator: a}
}
