// ABOUTME: Chainable setters that write rc params and keep the mirrored Look consistent
// ABOUTME: The first store failure sticks in Err and turns later setters into no-ops

package theme

import (
	"fmt"

	"github.com/mauromedda/plottheme/pkg/rcparams"
)

// set writes one key unless an earlier write failed.
func (s *State) set(key string, v rcparams.Value) {
	if s.err != nil {
		return
	}
	if err := s.store.Set(key, v); err != nil {
		s.err = fmt.Errorf("setting %s: %w", key, err)
	}
}

// SetFont writes family as the store font and resets both font descriptors
// to it. An empty family only re-reads the store font.
func (s *State) SetFont(family string) *State {
	if s.err != nil {
		return s
	}
	if family == "" {
		s.look.FontFamily = s.text("font.family")
		return s
	}
	s.set("font.family", rcparams.Strings(family))
	if s.err != nil {
		return s
	}
	s.look.FontFamily = family
	s.look.TitleFont = FontSpec{Family: family}
	s.look.BodyFont = FontSpec{Family: family}
	return s
}

// SetFontColor writes color to the text, label and tick colors and merges it
// into both font descriptors. An empty color only re-reads the label color.
func (s *State) SetFontColor(color string) *State {
	if s.err != nil {
		return s
	}
	if color == "" {
		s.look.FontColor = s.text("axes.labelcolor")
		return s
	}
	for _, key := range []string{"text.color", "axes.labelcolor", "xtick.color", "ytick.color"} {
		s.set(key, rcparams.String(color))
	}
	if s.err != nil {
		return s
	}
	s.look.FontColor = color
	s.look.TitleFont.Color = color
	s.look.BodyFont.Color = color
	return s
}

// SetTitleFont sets the title descriptor. An empty family takes the store
// font; a non-empty color is merged in either way.
func (s *State) SetTitleFont(family, color string) *State {
	if s.err != nil {
		return s
	}
	s.look.TitleFont = s.fontSpec(family, color)
	return s
}

// SetBodyFont sets the body text descriptor like SetTitleFont.
func (s *State) SetBodyFont(family, color string) *State {
	if s.err != nil {
		return s
	}
	s.look.BodyFont = s.fontSpec(family, color)
	return s
}

func (s *State) fontSpec(family, color string) FontSpec {
	if family == "" {
		family = s.text("font.family")
	}
	return FontSpec{Family: family, Color: color}
}

// Surface selects which backgrounds SetBackground writes.
type Surface uint8

const (
	// SurfaceFigure covers the figure and saved-figure backgrounds.
	SurfaceFigure Surface = 1 << iota
	// SurfaceAxes covers the plotting area background.
	SurfaceAxes

	SurfaceAll = SurfaceFigure | SurfaceAxes
)

// SetBackground writes color to the selected surfaces. The mirrored
// background follows color even when no surface is selected.
func (s *State) SetBackground(color string, surfaces Surface) *State {
	if s.err != nil {
		return s
	}
	if surfaces&SurfaceFigure != 0 {
		s.set("figure.facecolor", rcparams.String(color))
		s.set("savefig.facecolor", rcparams.String(color))
	}
	if surfaces&SurfaceAxes != 0 {
		s.set("axes.facecolor", rcparams.String(color))
	}
	if s.err != nil {
		return s
	}
	s.look.Background = color
	return s
}

// PlotColors holds replacements for the first six cycle positions. Empty
// fields keep the current color.
type PlotColors struct {
	Primary   string
	Secondary string
	Tertiary  string
	Fourth    string
	Fifth     string
	Sixth     string
}

func (p PlotColors) positions() [6]string {
	return [6]string{p.Primary, p.Secondary, p.Tertiary, p.Fourth, p.Fifth, p.Sixth}
}

// SetPlotColors overwrites the given positions of the current color cycle.
// Positions at or beyond the cycle length are ignored.
func (s *State) SetPlotColors(pc PlotColors) *State {
	if s.err != nil {
		return s
	}
	v, _ := s.store.Get(rcparams.PropCycle)
	colors := v.Colors()
	for i, c := range pc.positions() {
		if c != "" && i < len(colors) {
			colors[i] = c
		}
	}
	s.set(rcparams.PropCycle, rcparams.Cycle(colors...))
	if s.err != nil {
		return s
	}

	at := func(i int) string {
		if i < len(colors) {
			return colors[i]
		}
		return ""
	}
	s.look.Primary = at(0)
	s.look.Secondary = at(1)
	s.look.Tertiary = at(2)
	s.look.Fourth = at(3)
	return s
}

// SetPips shows or hides the bottom x and left y tick marks. A non-empty
// color is written to both axes' ticks.
func (s *State) SetPips(state Switch, color string) *State {
	if s.err != nil {
		return s
	}
	s.set("xtick.bottom", rcparams.Bool(bool(state)))
	s.set("ytick.left", rcparams.Bool(bool(state)))
	if color != "" {
		s.set("xtick.color", rcparams.String(color))
		s.set("ytick.color", rcparams.String(color))
	}
	return s
}

// SpineOptions narrows SetSpines. No spines in Which means all four.
type SpineOptions struct {
	Which     []Spine
	Color     string
	LineWidth *float64
}

// SetSpines switches the selected spines on or off and optionally restyles
// the axes edge.
func (s *State) SetSpines(state Switch, opts SpineOptions) *State {
	if s.err != nil {
		return s
	}
	which := opts.Which
	if len(which) == 0 {
		which = AllSpines
	}
	for _, sp := range which {
		s.set(sp.key(), rcparams.Bool(bool(state)))
	}
	if opts.Color != "" {
		s.set("axes.edgecolor", rcparams.String(opts.Color))
	}
	if opts.LineWidth != nil {
		s.set("axes.linewidth", rcparams.Number(*opts.LineWidth))
	}
	return s
}

// SetTicklabelSize writes the tick label size of the selected axes.
func (s *State) SetTicklabelSize(size LabelSize, axis Axis) *State {
	if s.err != nil {
		return s
	}
	if axis > YAxis {
		s.err = fmt.Errorf("%w %s", ErrInvalidAxis, axis)
		return s
	}
	if err := size.validate(); err != nil {
		s.err = err
		return s
	}
	if axis.x() {
		s.set("xtick.labelsize", size.Value())
	}
	if axis.y() {
		s.set("ytick.labelsize", size.Value())
	}
	return s
}

// GridOptions restyles the grid in SetGrid. Empty strings and nil pointers
// leave the corresponding key alone.
type GridOptions struct {
	Which     string
	Axis      string
	Color     string
	LineStyle string
	Alpha     *float64
	LineWidth *float64
}

// SetGrid switches the grid of 2-D, polar and 3-D axes on or off.
func (s *State) SetGrid(state Switch, opts GridOptions) *State {
	if s.err != nil {
		return s
	}
	for _, key := range []string{"axes.grid", "polaraxes.grid", "axes3d.grid"} {
		s.set(key, rcparams.Bool(bool(state)))
	}
	optional := []struct {
		key string
		val string
	}{
		{"axes.grid.which", opts.Which},
		{"axes.grid.axis", opts.Axis},
		{"grid.color", opts.Color},
		{"grid.linestyle", opts.LineStyle},
	}
	for _, o := range optional {
		if o.val != "" {
			s.set(o.key, rcparams.String(o.val))
		}
	}
	if opts.Alpha != nil {
		s.set("grid.alpha", rcparams.Number(*opts.Alpha))
	}
	if opts.LineWidth != nil {
		s.set("grid.linewidth", rcparams.Number(*opts.LineWidth))
	}
	return s
}

// SetDPI sets the display resolution. It has no store key.
func (s *State) SetDPI(dpi int) *State {
	s.look.DPI = dpi
	return s
}
