package storyboard

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/motion/pkg/geometry"
)

// ParseColor parses a storyboard color value. Accepted forms are the SVG
// color names ("cornflowerblue"), "transparent", and hex notation in
// #rgb, #rrggbb and #rrggbbaa forms.
func ParseColor(s string) (geometry.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return geometry.Transparent, fmt.Errorf("empty color")
	}
	if s == "transparent" {
		return geometry.Transparent, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if rgba, ok := colornames.Map[s]; ok {
		return geometry.RGBA8(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}
	return geometry.Transparent, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (geometry.Color, error) {
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	case 6, 8:
	default:
		return geometry.Transparent, fmt.Errorf("hex color needs 3, 6 or 8 digits, got %d", len(hex))
	}

	value, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return geometry.Transparent, fmt.Errorf("invalid hex color %q", "#"+hex)
	}

	if len(hex) == 8 {
		// #rrggbbaa: rotate the alpha byte to the front.
		alpha := uint32(value & 0xff)
		rgb := uint32(value >> 8)
		return geometry.Color(alpha<<24 | rgb), nil
	}
	return geometry.Color(uint32(value) | 0xff000000), nil
}
