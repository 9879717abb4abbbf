// ABOUTME: derive command: applies a base theme, runs the setter flags and saves the result
// ABOUTME: Overwriting an existing theme asks for confirmation unless --yes is given

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mauromedda/plottheme/internal/confirm"
	"github.com/mauromedda/plottheme/pkg/theme"
)

type deriveFlags struct {
	font, fontColor string

	background string
	surface    string

	colors theme.PlotColors

	pips, pipsColor string

	spines, spinesWhich, spinesColor string
	spinesWidth                      float64

	tickSize, tickAxis string

	grid, gridWhich, gridAxis, gridColor, gridStyle string
	gridAlpha, gridWidth                            float64

	yes bool
}

func newDeriveCmd(app *App) *cobra.Command {
	f := &deriveFlags{}
	cmd := &cobra.Command{
		Use:   "derive <base> <name>",
		Short: "Save a new theme built from an existing one",
		Long: "Applies <base>, changes it with the given flags and saves the result as <name>.\n" +
			"Pass an empty <base> (\"\") to start from the default configuration.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := app.state(ctx, args[0])
			if err != nil {
				return err
			}
			if err := f.apply(st, cmd.Flags()); err != nil {
				return err
			}

			policy := confirm.Policy(cmd.InOrStdin(), cmd.ErrOrStderr())
			if f.yes {
				policy = theme.AlwaysOverwrite
			}
			res, err := st.AddTheme(ctx, args[1], policy)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message(args[1]))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.font, "font", "", "Font family for all text")
	fl.StringVar(&f.fontColor, "font-color", "", "Color of all text")
	fl.StringVar(&f.background, "background", "", "Background color")
	fl.StringVar(&f.surface, "surface", "all", "Surfaces the background applies to (figure|axes|all|none)")
	fl.StringVar(&f.colors.Primary, "primary", "", "First cycle color")
	fl.StringVar(&f.colors.Secondary, "secondary", "", "Second cycle color")
	fl.StringVar(&f.colors.Tertiary, "tertiary", "", "Third cycle color")
	fl.StringVar(&f.colors.Fourth, "fourth", "", "Fourth cycle color")
	fl.StringVar(&f.colors.Fifth, "fifth", "", "Fifth cycle color")
	fl.StringVar(&f.colors.Sixth, "sixth", "", "Sixth cycle color")
	fl.StringVar(&f.pips, "pips", "", "Tick marks on|off")
	fl.StringVar(&f.pipsColor, "pips-color", "", "Tick mark color (with --pips)")
	fl.StringVar(&f.spines, "spines", "", "Axes spines on|off")
	fl.StringVar(&f.spinesWhich, "spines-which", "", "Spines to switch, e.g. top,right (with --spines, default all)")
	fl.StringVar(&f.spinesColor, "spines-color", "", "Axes edge color (with --spines)")
	fl.Float64Var(&f.spinesWidth, "spines-width", 0, "Axes edge line width (with --spines)")
	fl.StringVar(&f.tickSize, "ticklabel-size", "", "Tick label size: small, medium, large or points")
	fl.StringVar(&f.tickAxis, "ticklabel-axis", "both", "Axes the tick label size applies to (x|y|both)")
	fl.StringVar(&f.grid, "grid", "", "Grid on|off")
	fl.StringVar(&f.gridWhich, "grid-which", "", "Grid lines to draw (major|minor|both, with --grid)")
	fl.StringVar(&f.gridAxis, "grid-axis", "", "Grid axes (x|y|both, with --grid)")
	fl.StringVar(&f.gridColor, "grid-color", "", "Grid color (with --grid)")
	fl.StringVar(&f.gridStyle, "grid-style", "", "Grid line style (with --grid)")
	fl.Float64Var(&f.gridAlpha, "grid-alpha", 1, "Grid alpha (with --grid)")
	fl.Float64Var(&f.gridWidth, "grid-width", 0.8, "Grid line width (with --grid)")
	fl.BoolVarP(&f.yes, "yes", "y", false, "Overwrite an existing theme without asking")
	return cmd
}

// errNeedsSwitch marks a styling flag given without the switch it refines.
var errNeedsSwitch = errors.New("flag needs its switch")

// refinements lists, per on/off switch flag, the flags that only take effect
// together with it.
var refinements = []struct {
	parent string
	flags  []string
}{
	{"pips", []string{"pips-color"}},
	{"spines", []string{"spines-which", "spines-color", "spines-width"}},
	{"grid", []string{"grid-which", "grid-axis", "grid-color", "grid-style", "grid-alpha", "grid-width"}},
}

func checkRefinements(fl *pflag.FlagSet) error {
	for _, r := range refinements {
		if fl.Changed(r.parent) {
			continue
		}
		for _, name := range r.flags {
			if fl.Changed(name) {
				return fmt.Errorf("%w: --%s requires --%s", errNeedsSwitch, name, r.parent)
			}
		}
	}
	return nil
}

var surfaces = map[string]theme.Surface{
	"none":   0,
	"figure": theme.SurfaceFigure,
	"axes":   theme.SurfaceAxes,
	"all":    theme.SurfaceAll,
}

// apply runs the setters whose flags were given, in a fixed order. Only
// setters that write the store are offered, since the saved theme is a
// snapshot of the store.
func (f *deriveFlags) apply(st *theme.State, fl *pflag.FlagSet) error {
	if err := checkRefinements(fl); err != nil {
		return err
	}
	if f.font != "" {
		st.SetFont(f.font)
	}
	if f.fontColor != "" {
		st.SetFontColor(f.fontColor)
	}
	if f.background != "" {
		surface, ok := surfaces[f.surface]
		if !ok {
			return fmt.Errorf("unknown surface %q", f.surface)
		}
		st.SetBackground(f.background, surface)
	}
	if f.colors != (theme.PlotColors{}) {
		st.SetPlotColors(f.colors)
	}

	if fl.Changed("pips") {
		on, err := theme.ParseSwitch(f.pips)
		if err != nil {
			return fmt.Errorf("--pips: %w", err)
		}
		st.SetPips(on, f.pipsColor)
	}
	if fl.Changed("spines") {
		on, err := theme.ParseSwitch(f.spines)
		if err != nil {
			return fmt.Errorf("--spines: %w", err)
		}
		which, err := theme.ParseSpines(f.spinesWhich)
		if err != nil {
			return fmt.Errorf("--spines-which: %w", err)
		}
		opts := theme.SpineOptions{Which: which, Color: f.spinesColor}
		if fl.Changed("spines-width") {
			opts.LineWidth = &f.spinesWidth
		}
		st.SetSpines(on, opts)
	}
	if f.tickSize != "" {
		size, err := theme.ParseLabelSize(f.tickSize)
		if err != nil {
			return fmt.Errorf("--ticklabel-size: %w", err)
		}
		axis, err := theme.ParseAxis(f.tickAxis)
		if err != nil {
			return fmt.Errorf("--ticklabel-axis: %w", err)
		}
		st.SetTicklabelSize(size, axis)
	}
	if fl.Changed("grid") {
		on, err := theme.ParseSwitch(f.grid)
		if err != nil {
			return fmt.Errorf("--grid: %w", err)
		}
		opts := theme.GridOptions{
			Which:     f.gridWhich,
			Axis:      f.gridAxis,
			Color:     f.gridColor,
			LineStyle: f.gridStyle,
		}
		if fl.Changed("grid-alpha") {
			opts.Alpha = &f.gridAlpha
		}
		if fl.Changed("grid-width") {
			opts.LineWidth = &f.gridWidth
		}
		st.SetGrid(on, opts)
	}
	return st.Err()
}
