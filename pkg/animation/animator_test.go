package animation

import (
	"testing"
	"time"
)

// progressPair captures the progress of two animations within one frame;
// ok is false when the animation was absent, pending or waiting.
type progressPair struct {
	p0, p1 float64
	ok0    bool
	ok1    bool
}

func advancePair(t *testing.T, animator *Animator, nanos float64, id0, id1 AnimationID) progressPair {
	t.Helper()
	res, ran := AdvanceBy(animator, nanos, func(ctx *AnimationCtx) progressPair {
		var pair progressPair
		pair.ok0 = ctx.WithAnimation(id0, func(c *AnimationCtx) { pair.p0 = c.Progress() })
		pair.ok1 = ctx.WithAnimation(id1, func(c *AnimationCtx) { pair.p1 = c.Progress() })
		return pair
	})
	if !ran {
		t.Fatalf("AdvanceBy(%v) did not run the frame closure", nanos)
	}
	return res
}

// Mirrors the canonical chained-animation scenario: a0 runs for 100ns, a1 is
// configured to start after a0 ends, and the dependent release is visible
// one frame after the Ended event.
func TestAnimatorChainedAnimations(t *testing.T) {
	animator := NewAnimator()

	id0 := animator.NewAnimation().DurationNanos(100).ID()
	id1 := animator.NewAnimation().
		DurationNanos(100).
		After(EndedEvent(id0)).
		ID()

	if got := animator.Handle(id1).Status(); got != StatusNotRunning {
		t.Fatalf("pending animation status = %v, want %v", got, StatusNotRunning)
	}

	got := advancePair(t, animator, 50.0, id0, id1)
	if !got.ok0 || got.p0 != 0.5 {
		t.Errorf("frame 1: a0 = (%v, %v), want (0.5, true)", got.p0, got.ok0)
	}
	if got.ok1 {
		t.Errorf("frame 1: a1 should still be pending")
	}

	// Advance just beyond the first animation's end: it is retiring and
	// forced to progress 1.0; the second is still pending because Ended
	// events are processed after the frame closure.
	got = advancePair(t, animator, 50.1, id0, id1)
	if !got.ok0 || got.p0 != 1.0 {
		t.Errorf("frame 2: a0 = (%v, %v), want (1.0, true)", got.p0, got.ok0)
	}
	if got.ok1 {
		t.Errorf("frame 2: a1 should still be pending")
	}
	if s := animator.Handle(id0).Status(); s != StatusRetiring {
		t.Errorf("frame 2: a0 status = %v, want %v", s, StatusRetiring)
	}

	// This frame removes a0 and fires Ended(a0), releasing a1 into waiting.
	got = advancePair(t, animator, 1.0, id0, id1)
	if got.ok0 || got.ok1 {
		t.Errorf("frame 3: expected both inactive, got a0=%v a1=%v", got.ok0, got.ok1)
	}
	if animator.Handle(id0).IsValid() {
		t.Error("frame 3: a0 should have been removed from storage")
	}
	if !animator.Handle(id1).IsValid() {
		t.Error("frame 3: a1 should still be stored")
	}

	got = advancePair(t, animator, 10.0, id0, id1)
	if got.ok0 {
		t.Errorf("frame 4: a0 should be gone")
	}
	if !got.ok1 || !approx(got.p1, 0.1) {
		t.Errorf("frame 4: a1 = (%v, %v), want (~0.1, true)", got.p1, got.ok1)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

// An Alternate animation with repeat limit 2 runs 0 -> 1 then 1 -> 0 and
// retires at fraction 0 (even repeat parity at retirement).
func TestAnimatorAlternateDirection(t *testing.T) {
	animator := NewAnimator()
	id := animator.NewAnimation().
		DurationNanos(100).
		Direction(Alternate).
		RepeatLimit(2).
		ID()

	query := func(nanos float64) (float64, bool) {
		res, ran := AdvanceBy(animator, nanos, func(ctx *AnimationCtx) float64 {
			p, _ := QueryAnimation(ctx, id, func(c *AnimationCtx) float64 { return c.Progress() })
			return p
		})
		if !ran {
			t.Fatalf("AdvanceBy(%v) on empty animator", nanos)
		}
		p, ok := res, animator.Handle(id).IsValid()
		return p, ok
	}

	if p, _ := query(50); !approx(p, 0.5) {
		t.Errorf("first cycle midpoint: progress = %v, want 0.5", p)
	}

	// Crossing the boundary enters the repeating state for one frame.
	query(50)
	if s := animator.Handle(id).Status(); s != StatusRepeating {
		t.Errorf("boundary status = %v, want %v", s, StatusRepeating)
	}

	// Second cycle runs reversed.
	if p, _ := query(10); !approx(p, 0.9) {
		t.Errorf("second cycle: progress = %v, want 0.9", p)
	}
	if p, _ := query(50); !approx(p, 0.4) {
		t.Errorf("second cycle: progress = %v, want 0.4", p)
	}

	// Past the second cycle the animation retires at fraction 0.
	if p, _ := query(40.1); !approx(p, 0.0) {
		t.Errorf("retirement: progress = %v, want 0", p)
	}
	if s := animator.Handle(id).Status(); s != StatusRetiring {
		t.Errorf("retirement status = %v, want %v", s, StatusRetiring)
	}

	query(1)
	if animator.Handle(id).IsValid() {
		t.Error("retired animation should have been removed")
	}
}

func TestAnimatorNamedEvent(t *testing.T) {
	animator := NewAnimator()
	id := animator.NewAnimation().
		DurationNanos(100).
		After(NamedEvent("shown")).
		ID()

	if animator.Running() {
		t.Error("Running() should be false while all animations are pending")
	}
	if animator.IsEmpty() {
		t.Error("IsEmpty() should be false with a pending animation stored")
	}

	animator.ProcessNamedEvent("shown")
	if !animator.Running() {
		t.Error("Running() should be true after the named event released the animation")
	}

	res, _ := AdvanceBy(animator, 25, func(ctx *AnimationCtx) float64 {
		p, _ := QueryAnimation(ctx, id, func(c *AnimationCtx) float64 { return c.Progress() })
		return p
	})
	if !approx(res, 0.25) {
		t.Errorf("progress after release = %v, want 0.25", res)
	}
}

func TestAnimatorEmptyAdvanceIsNoop(t *testing.T) {
	animator := NewAnimator()
	ran := animator.AdvanceBy(16e6, func(*AnimationCtx) {
		t.Error("closure must not run on an empty animator")
	})
	if ran {
		t.Error("AdvanceBy on empty animator should report false")
	}
}

func TestAnimatorClockResetsWhenDrained(t *testing.T) {
	animator := NewAnimator()
	animator.NewAnimation().DurationNanos(10).ID()

	animator.AdvanceBy(20, func(*AnimationCtx) {}) // retires
	animator.AdvanceBy(1, func(*AnimationCtx) {})  // removes; storage drains

	if !animator.IsEmpty() {
		t.Fatal("animator should be empty")
	}
	if animator.currentTime() != 0 {
		t.Errorf("clock = %v, want reset to 0", animator.currentTime())
	}
}

// A delay configured on a pending animation accumulates and counts from the
// trigger event, not from configuration time.
func TestDelayOnPendingAnimationCountsFromEvent(t *testing.T) {
	animator := NewAnimator()
	id0 := animator.NewAnimation().DurationNanos(100).ID()
	id1 := animator.NewAnimation().
		DurationNanos(100).
		After(EndedEvent(id0)).
		Delay(50 * time.Nanosecond).
		ID()

	animator.AdvanceBy(100, func(*AnimationCtx) {}) // a0 retires
	animator.AdvanceBy(10, func(*AnimationCtx) {})  // a0 removed, Ended releases a1

	got := advancePair(t, animator, 25, id0, id1)
	if got.ok1 {
		t.Error("a1 active before its post-event delay elapsed")
	}

	got = advancePair(t, animator, 50, id0, id1)
	if !got.ok1 || !approx(got.p1, 0.25) {
		t.Errorf("a1 = (%v, %v), want (0.25, true)", got.p1, got.ok1)
	}
}

// A delay that moves a waiting animation's whole span into the past skips
// the animation entirely.
func TestDelayPastSpanRetires(t *testing.T) {
	animator := NewAnimator()
	animator.NewAnimation().DurationNanos(1000).ID() // keeps the clock moving
	animator.AdvanceBy(100, func(*AnimationCtx) {})

	id := animator.NewAnimation().DurationNanos(10).ID()
	animator.Handle(id).Delay(-200 * time.Nanosecond)

	if s := animator.Handle(id).Status(); s != StatusRetiring {
		t.Fatalf("status after past-span delay = %v, want %v", s, StatusRetiring)
	}
	animator.AdvanceBy(1, func(*AnimationCtx) {})
	if animator.Handle(id).IsValid() {
		t.Error("skipped animation should have been removed")
	}
}

// Delaying a running animation shifts its start time: it re-waits and
// resumes with its progress moved back accordingly.
func TestDelayReschedulesRunningAnimation(t *testing.T) {
	animator := NewAnimator()
	id := animator.NewAnimation().DurationNanos(100).ID()

	res, _ := AdvanceBy(animator, 50, func(ctx *AnimationCtx) float64 {
		p, _ := QueryAnimation(ctx, id, func(c *AnimationCtx) float64 { return c.Progress() })
		return p
	})
	if !approx(res, 0.5) {
		t.Fatalf("progress before delay = %v, want 0.5", res)
	}

	animator.Handle(id).Delay(30 * time.Nanosecond)

	res, _ = AdvanceBy(animator, 10, func(ctx *AnimationCtx) float64 {
		p, _ := QueryAnimation(ctx, id, func(c *AnimationCtx) float64 { return c.Progress() })
		return p
	})
	if !approx(res, 0.3) {
		t.Errorf("progress after delay = %v, want 0.3", res)
	}
}

// After on a stale handle must not leave a phantom entry in the pending
// accounting; Running would overcount forever on a drained animator.
func TestStaleHandleAfterKeepsPendingBalanced(t *testing.T) {
	animator := NewAnimator()
	id := animator.NewAnimation().DurationNanos(10).ID()

	animator.AdvanceBy(20, func(*AnimationCtx) {})
	animator.AdvanceBy(1, func(*AnimationCtx) {})

	handle := animator.Handle(id)
	if handle.IsValid() {
		t.Fatal("handle should be stale after removal")
	}
	handle.After(NamedEvent("late"))

	if animator.Running() {
		t.Error("drained animator reports Running after a stale After")
	}
	animator.ProcessNamedEvent("late")
	if !animator.IsEmpty() || animator.Running() {
		t.Error("stale After must not resurrect anything when its event fires")
	}
}

func TestStaleHandleConfigurationIsNoop(t *testing.T) {
	animator := NewAnimator()
	id := animator.NewAnimation().DurationNanos(10).ID()

	animator.AdvanceBy(20, func(*AnimationCtx) {})
	animator.AdvanceBy(1, func(*AnimationCtx) {})

	handle := animator.Handle(id)
	if handle.IsValid() {
		t.Fatal("handle should be stale after removal")
	}
	// None of these may panic; they no-op with a diagnostic.
	handle.DurationNanos(50).Direction(Reverse).RepeatLimit(3).Curve(EaseIn)
	if got := handle.Status(); got != StatusNotRunning {
		t.Errorf("stale handle status = %v, want %v", got, StatusNotRunning)
	}
}

func TestContextPanicsOnUnknownFocus(t *testing.T) {
	var storage animationStorage[animationState]
	defer func() {
		if recover() == nil {
			t.Error("expected panic for context focused on unknown id")
		}
	}()
	newAnimationCtx(AnimationID{offset: 0, version: 1}, &storage, false)
}
