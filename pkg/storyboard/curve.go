package storyboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/motion/pkg/animation"
)

var curveNames = map[string]animation.AnimationCurve{
	"linear":              animation.Linear,
	"ease":                animation.Cubic(0.25, 0.1, 0.25, 1.0),
	"ease-in":             animation.EaseIn,
	"ease-out":            animation.EaseOut,
	"ease-in-out":         animation.EaseInOut,
	"ease-in-sine":        animation.EaseInSine,
	"ease-out-sine":       animation.EaseOutSine,
	"ease-in-out-sine":    animation.EaseInOutSine,
	"ease-in-expo":        animation.EaseInExpo,
	"ease-out-expo":       animation.EaseOutExpo,
	"ease-in-out-expo":    animation.EaseInOutExpo,
	"ease-in-elastic":     animation.EaseInElastic,
	"ease-out-elastic":    animation.EaseOutElastic,
	"ease-in-out-elastic": animation.EaseInOutElastic,
	"ease-in-back":        animation.EaseInBack,
	"ease-out-back":       animation.EaseOutBack,
	"ease-in-out-back":    animation.EaseInOutBack,
	"bounce-in":           animation.BounceIn,
	"bounce-out":          animation.BounceOut,
	"bounce-in-out":       animation.BounceInOut,
}

// curveByName resolves a storyboard curve value. An empty value means
// linear; "cubic-bezier(x1, y1, x2, y2)" builds a custom curve.
func curveByName(name string) (animation.AnimationCurve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return animation.Linear, nil
	}
	if curve, ok := curveNames[name]; ok {
		return curve, nil
	}
	if strings.HasPrefix(name, "cubic-bezier(") && strings.HasSuffix(name, ")") {
		return parseCubicBezier(name)
	}
	return animation.Linear, fmt.Errorf("unknown curve %q", name)
}

func parseCubicBezier(name string) (animation.AnimationCurve, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(name, "cubic-bezier("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return animation.Linear, fmt.Errorf("cubic-bezier needs 4 control values, got %d", len(parts))
	}
	var values [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return animation.Linear, fmt.Errorf("invalid cubic-bezier value %q", strings.TrimSpace(part))
		}
		values[i] = v
	}
	return animation.Cubic(values[0], values[1], values[2], values[3]), nil
}

var directionNames = map[string]animation.Direction{
	"forward":           animation.Forward,
	"reverse":           animation.Reverse,
	"alternate":         animation.Alternate,
	"alternate-reverse": animation.AlternateReverse,
}

// directionByName resolves a storyboard direction value. An empty value
// means forward.
func directionByName(name string) (animation.Direction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return animation.Forward, nil
	}
	if direction, ok := directionNames[name]; ok {
		return direction, nil
	}
	return animation.Forward, fmt.Errorf("unknown direction %q", name)
}
