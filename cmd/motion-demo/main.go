// Package main runs a storyboard on a fixed-step clock and prints each
// frame, exercising the animation engine end to end without a UI host.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/storyboard"
)

const demoStoryboard = `
animations:
  - name: fade
    duration: 400ms
    curve: ease-in-out
    from: black
    to: "#ff8800"
  - name: slide
    duration: 600ms
    curve: ease-out-back
    after: fade
  - name: pulse
    duration: 250ms
    direction: alternate
    repeat: 4
    curve: ease-in-out-sine
`

func main() {
	path := flag.String("storyboard", "", "storyboard YAML file (default: built-in demo)")
	fps := flag.Int("fps", 60, "frames per second of the simulated clock")
	maxFrames := flag.Int("frames", 300, "stop after this many frames")
	flag.Parse()

	sb, err := loadStoryboard(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "motion-demo: %v\n", err)
		os.Exit(1)
	}

	animator := animation.NewAnimator()
	applied := sb.Apply(animator)

	// Declared events have no UI to fire them here, so fire them all
	// up front; dependent tracks start on the next frame.
	for _, event := range sb.Events {
		animator.ProcessNamedEvent(event)
	}

	step := 1e9 / float64(*fps)
	elapsed := 0.0
	for frame := 0; frame < *maxFrames; frame++ {
		elapsed += step
		advanced := animator.AdvanceBy(step, func(ctx *animation.AnimationCtx) {
			printFrame(ctx, applied, sb, elapsed)
		})
		if !advanced {
			break
		}
	}
	fmt.Println("done")
}

func loadStoryboard(path string) (*storyboard.Storyboard, error) {
	if path == "" {
		return storyboard.Parse([]byte(demoStoryboard))
	}
	return storyboard.Load(path)
}

func printFrame(ctx *animation.AnimationCtx, applied *storyboard.Applied, sb *storyboard.Storyboard, elapsed float64) {
	var parts []string
	for _, name := range applied.Names() {
		id, _ := applied.ID(name)
		progress, active := animation.QueryAnimation(ctx, id, (*animation.AnimationCtx).Clamped)
		if !active {
			continue
		}
		if color, ok := applied.Color(ctx, name); ok {
			parts = append(parts, fmt.Sprintf("%s=%.3f #%06x", name, progress, uint32(color)&0xffffff))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%.3f", name, progress))
		}
	}
	if len(parts) == 0 {
		return
	}
	fmt.Printf("%7.1fms  %s\n", elapsed/1e6, strings.Join(parts, "  "))
}
