// ABOUTME: Typed setter arguments: on/off switches, tick label sizes, axis selectors and spines
// ABOUTME: Parse functions accept the legacy bool-or-string spellings and reject everything else

package theme

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/mauromedda/plottheme/pkg/rcparams"
)

// Switch is a two-valued visibility state.
type Switch bool

const (
	Off Switch = false
	On  Switch = true
)

func (s Switch) String() string {
	if s {
		return "on"
	}
	return "off"
}

// ParseSwitch accepts true, false, "on" and "off" (case-insensitive).
func ParseSwitch(v any) (Switch, error) {
	switch x := v.(type) {
	case Switch:
		return x, nil
	case bool:
		return Switch(x), nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "on":
			return On, nil
		case "off":
			return Off, nil
		}
	}
	return Off, fmt.Errorf("%w %v: use true, false, \"on\" or \"off\"", ErrUnknownState, v)
}

// LabelSize is a tick label size, either named or in points. The zero value
// is the named size "medium".
type LabelSize struct {
	name   string
	points float64
}

var labelSizes = []string{"small", "medium", "large"}

// NamedSize returns the named label size s. SetTicklabelSize rejects names
// other than small, medium and large.
func NamedSize(s string) LabelSize { return LabelSize{name: s} }

// PointSize returns a numeric label size.
func PointSize(pt float64) LabelSize { return LabelSize{points: pt} }

// ParseLabelSize accepts small, medium, large or a positive number.
func ParseLabelSize(s string) (LabelSize, error) {
	s = strings.TrimSpace(s)
	for _, n := range labelSizes {
		if strings.EqualFold(s, n) {
			return NamedSize(n), nil
		}
	}
	if pt, err := strconv.ParseFloat(s, 64); err == nil && pt > 0 && !math.IsInf(pt, 0) {
		return PointSize(pt), nil
	}
	return LabelSize{}, fmt.Errorf("%w %q: use one of %s or a size in points", ErrInvalidSize, s, strings.Join(labelSizes, ", "))
}

// Value returns the rc param value for the size.
func (l LabelSize) Value() rcparams.Value {
	if l.points > 0 {
		return rcparams.Number(l.points)
	}
	if l.name == "" {
		return rcparams.String("medium")
	}
	return rcparams.String(l.name)
}

func (l LabelSize) String() string { return l.Value().Text() }

func (l LabelSize) validate() error {
	switch {
	case l.name != "" && !slices.Contains(labelSizes, l.name):
		return fmt.Errorf("%w %q: use one of %s", ErrInvalidSize, l.name, strings.Join(labelSizes, ", "))
	case l.points < 0 || math.IsNaN(l.points) || math.IsInf(l.points, 0):
		return fmt.Errorf("%w %v: sizes in points must be positive", ErrInvalidSize, l.points)
	}
	return nil
}

// Axis selects the x axis, the y axis or both.
type Axis uint8

const (
	BothAxes Axis = iota
	XAxis
	YAxis
)

func (a Axis) String() string {
	switch a {
	case BothAxes:
		return "both"
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// ParseAxis accepts both, x or y.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "both", "":
		return BothAxes, nil
	case "x":
		return XAxis, nil
	case "y":
		return YAxis, nil
	}
	return BothAxes, fmt.Errorf("%w %q: use both, x or y", ErrInvalidAxis, s)
}

func (a Axis) x() bool { return a == BothAxes || a == XAxis }
func (a Axis) y() bool { return a == BothAxes || a == YAxis }

// Spine names one side of the axes frame.
type Spine string

const (
	SpineTop    Spine = "top"
	SpineRight  Spine = "right"
	SpineBottom Spine = "bottom"
	SpineLeft   Spine = "left"
)

// AllSpines lists every spine in store order.
var AllSpines = []Spine{SpineTop, SpineRight, SpineBottom, SpineLeft}

func (s Spine) key() string { return "axes.spines." + string(s) }

// ParseSpines parses spine names separated by commas or spaces. An empty
// string selects no spine in particular, which setters read as all four.
func ParseSpines(s string) ([]Spine, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]Spine, 0, len(fields))
	for _, f := range fields {
		sp := Spine(strings.ToLower(f))
		switch sp {
		case SpineTop, SpineRight, SpineBottom, SpineLeft:
			out = append(out, sp)
		default:
			return nil, fmt.Errorf("%w %q: use top, right, bottom or left", ErrInvalidSpine, f)
		}
	}
	return out, nil
}
