// Package storyboard loads declarative animation sequences from YAML and
// wires them into an [animation.Animator].
//
// A storyboard names a set of animation tracks, each with a duration,
// curve, direction, repeat count and optional start dependency. A track
// may also carry a color range that is interpolated as the animation
// progresses:
//
//	animations:
//	  - name: fade
//	    duration: 300ms
//	    curve: ease-in-out
//	    from: transparent
//	    to: "#ff8800"
//	  - name: slide
//	    duration: 500ms
//	    after: fade
//	events: [intro-done]
package storyboard

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/geometry"
)

// Storyboard represents a parsed storyboard file.
type Storyboard struct {
	Animations []Track  `yaml:"animations"`
	Events     []string `yaml:"events,omitempty"`
}

// Track describes one animation in a storyboard.
type Track struct {
	Name      string   `yaml:"name"`
	Duration  Duration `yaml:"duration"`
	Curve     string   `yaml:"curve,omitempty"`
	Direction string   `yaml:"direction,omitempty"`
	Repeat    int      `yaml:"repeat,omitempty"`
	Delay     Duration `yaml:"delay,omitempty"`
	// After names a track or a declared event this track waits for.
	After string `yaml:"after,omitempty"`
	From  string `yaml:"from,omitempty"`
	To    string `yaml:"to,omitempty"`
}

// Duration wraps time.Duration so YAML values can use Go duration
// strings such as "300ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q (use forms like 300ms or 1.5s)", value.Value)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads and parses a storyboard file.
func Load(path string) (*Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read storyboard: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates storyboard YAML.
func Parse(data []byte) (*Storyboard, error) {
	var sb Storyboard
	if err := yaml.Unmarshal(data, &sb); err != nil {
		return nil, &errors.StoryboardError{Err: fmt.Errorf("failed to parse storyboard: %w", err)}
	}
	if err := sb.validate(); err != nil {
		return nil, err
	}
	return &sb, nil
}

func (sb *Storyboard) validate() error {
	if len(sb.Animations) == 0 {
		return &errors.StoryboardError{Err: fmt.Errorf("no animations defined")}
	}

	names := make(map[string]bool, len(sb.Animations))
	events := make(map[string]bool, len(sb.Events))
	for _, event := range sb.Events {
		events[event] = true
	}

	for _, track := range sb.Animations {
		if track.Name == "" {
			return &errors.StoryboardError{Field: "name", Err: fmt.Errorf("animation without a name")}
		}
		if names[track.Name] {
			return &errors.StoryboardError{Name: track.Name, Err: fmt.Errorf("duplicate animation name")}
		}
		names[track.Name] = true

		if track.Duration <= 0 {
			return trackErr(track, "duration", fmt.Errorf("must be positive"))
		}
		if _, err := curveByName(track.Curve); err != nil {
			return trackErr(track, "curve", err)
		}
		if _, err := directionByName(track.Direction); err != nil {
			return trackErr(track, "direction", err)
		}
		if track.Repeat < 0 {
			return trackErr(track, "repeat", fmt.Errorf("must not be negative"))
		}
		if (track.From == "") != (track.To == "") {
			return trackErr(track, "from", fmt.Errorf("from and to must be set together"))
		}
		if track.From != "" {
			if _, err := ParseColor(track.From); err != nil {
				return trackErr(track, "from", err)
			}
			if _, err := ParseColor(track.To); err != nil {
				return trackErr(track, "to", err)
			}
		}
	}

	for _, track := range sb.Animations {
		if track.After == "" {
			continue
		}
		if track.After == track.Name {
			return trackErr(track, "after", fmt.Errorf("cannot wait for itself"))
		}
		if !names[track.After] && !events[track.After] {
			return trackErr(track, "after", fmt.Errorf("unknown animation or event %q", track.After))
		}
	}

	return nil
}

func trackErr(track Track, field string, err error) error {
	return &errors.StoryboardError{Name: track.Name, Field: field, Err: err}
}

// Applied holds the animation ids created by [Storyboard.Apply].
type Applied struct {
	ids    map[string]animation.AnimationID
	colors map[string]colorRange
}

type colorRange struct {
	from geometry.Color
	to   geometry.Color
}

// Apply inserts every track into the animator and wires the declared
// dependencies. Tracks without an "after" reference start on the next
// frame; the rest wait for the named animation to end or the named event
// to fire.
func (sb *Storyboard) Apply(animator *animation.Animator) *Applied {
	applied := &Applied{
		ids:    make(map[string]animation.AnimationID, len(sb.Animations)),
		colors: make(map[string]colorRange),
	}

	handles := make(map[string]*animation.AnimationHandle, len(sb.Animations))
	for _, track := range sb.Animations {
		curve, _ := curveByName(track.Curve)
		direction, _ := directionByName(track.Direction)

		handle := animator.NewAnimation().
			Duration(time.Duration(track.Duration)).
			Curve(curve).
			Direction(direction)
		if track.Repeat > 0 {
			handle.RepeatLimit(track.Repeat)
		}
		// Delays for dependent tracks are applied after After below, so
		// they count from the trigger event rather than from now.
		if track.Delay > 0 && track.After == "" {
			handle.Delay(time.Duration(track.Delay))
		}

		handles[track.Name] = handle
		applied.ids[track.Name] = handle.ID()

		if track.From != "" {
			from, _ := ParseColor(track.From)
			to, _ := ParseColor(track.To)
			applied.colors[track.Name] = colorRange{from: from, to: to}
		}
	}

	// Dependencies wire after all ids exist so tracks can reference
	// later entries.
	for _, track := range sb.Animations {
		if track.After == "" {
			continue
		}
		handle := handles[track.Name]
		if id, ok := applied.ids[track.After]; ok {
			handle.After(animation.EndedEvent(id))
		} else {
			handle.After(animation.NamedEvent(track.After))
		}
		// A pending animation accumulates its delay and applies it once
		// the trigger fires.
		if track.Delay > 0 {
			handle.Delay(time.Duration(track.Delay))
		}
	}

	return applied
}

// ID returns the animation id created for the named track.
func (a *Applied) ID(name string) (animation.AnimationID, bool) {
	id, ok := a.ids[name]
	return id, ok
}

// Names returns the track names in sorted order.
func (a *Applied) Names() []string {
	names := make([]string, 0, len(a.ids))
	for name := range a.ids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color evaluates the named track's color range at the animation's
// current progress. It reports false when the track has no color range
// or is not currently active.
func (a *Applied) Color(ctx *animation.AnimationCtx, name string) (geometry.Color, bool) {
	track, ok := a.colors[name]
	if !ok {
		return geometry.Transparent, false
	}
	id, ok := a.ids[name]
	if !ok {
		return geometry.Transparent, false
	}
	return animation.QueryAnimation(ctx, id, func(c *animation.AnimationCtx) geometry.Color {
		return animation.LerpColor(track.from, track.to, c.Progress())
	})
}
