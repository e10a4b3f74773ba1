package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMotionErrorString(t *testing.T) {
	err := &MotionError{
		Op:   "test.operation",
		Kind: KindStoryboard,
		Err:  &StoryboardError{Name: "fade", Field: "curve", Err: errors.New("unknown curve")},
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestMotionErrorWithAnimation(t *testing.T) {
	err := &MotionError{
		Op:        "animation.Handle.Curve",
		Kind:      KindStaleHandle,
		Animation: "AnimationID(3v2)",
		Err:       &StaleHandleError{Animation: "AnimationID(3v2)"},
	}
	got := err.Error()
	want := "animation=AnimationID(3v2)"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindStaleHandle, "stale-handle"},
		{KindStoryboard, "storyboard"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestStoryboardErrorUnwrap(t *testing.T) {
	inner := errors.New("bad duration")
	err := &StoryboardError{Name: "slide", Field: "duration", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected StoryboardError to unwrap to inner error")
	}
}

type captureHandler struct {
	errs   []*MotionError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *MotionError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func TestReportStaleHandle(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	ReportStaleHandle("animation.Handle.Duration", "AnimationID(0v1)")

	if len(capture.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(capture.errs))
	}
	got := capture.errs[0]
	if got.Kind != KindStaleHandle {
		t.Errorf("expected KindStaleHandle, got %v", got.Kind)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected Report to stamp the error")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(capture.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(capture.panics))
	}
	if capture.panics[0].Op != "test.op" {
		t.Errorf("expected op %q, got %q", "test.op", capture.panics[0].Op)
	}
}
