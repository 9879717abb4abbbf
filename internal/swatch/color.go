// ABOUTME: Resolves plotting color specs (hex, CSS names, base letters, tab: names, grey levels)
// ABOUTME: Returns go-colorful colors; named colors come from x/image/colornames

package swatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when a color spec cannot be resolved.
var ErrUnknownColor = errors.New("unknown color")

// baseColors are the single-letter color codes.
var baseColors = map[string]colorful.Color{
	"b": {R: 0, G: 0, B: 1},
	"g": {R: 0, G: 0.5, B: 0},
	"r": {R: 1, G: 0, B: 0},
	"c": {R: 0, G: 0.75, B: 0.75},
	"m": {R: 0.75, G: 0, B: 0.75},
	"y": {R: 0.75, G: 0.75, B: 0},
	"k": {R: 0, G: 0, B: 0},
	"w": {R: 1, G: 1, B: 1},
}

// tableau holds the tab: palette.
var tableau = map[string]string{
	"tab:blue":   "#1f77b4",
	"tab:orange": "#ff7f0e",
	"tab:green":  "#2ca02c",
	"tab:red":    "#d62728",
	"tab:purple": "#9467bd",
	"tab:brown":  "#8c564b",
	"tab:pink":   "#e377c2",
	"tab:gray":   "#7f7f7f",
	"tab:grey":   "#7f7f7f",
	"tab:olive":  "#bcbd22",
	"tab:cyan":   "#17becf",
}

// Resolve parses a color spec.
func Resolve(spec string) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if hex, ok := tableau[s]; ok {
		s = hex
	}

	if strings.HasPrefix(s, "#") {
		switch len(s) {
		case 9: // #rrggbbaa; alpha is dropped
			s = s[:7]
		case 5: // #rgba
			s = s[:4]
		}
		if len(s) == 4 || len(s) == 7 {
			if c, err := colorful.Hex(s); err == nil {
				return c, nil
			}
		}
		return colorful.Color{}, fmt.Errorf("%w %q", ErrUnknownColor, spec)
	}
	if c, ok := baseColors[s]; ok {
		return c, nil
	}
	if rgba, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	if grey, err := strconv.ParseFloat(s, 64); err == nil && grey >= 0 && grey <= 1 {
		return colorful.Color{R: grey, G: grey, B: grey}, nil
	}
	return colorful.Color{}, fmt.Errorf("%w %q", ErrUnknownColor, spec)
}

// Hex returns the #rrggbb form of spec, or spec itself when it does not
// resolve.
func Hex(spec string) string {
	c, err := Resolve(spec)
	if err != nil {
		return spec
	}
	return c.Hex()
}

// TextOn returns black or white, whichever reads better on c.
func TextOn(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	if l > 0.55 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}
