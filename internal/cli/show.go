// ABOUTME: show command: palette chips, a rendered preview and a markdown summary of one theme
// ABOUTME: --markdown prints the summary source instead of the terminal rendering

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/plottheme/internal/swatch"
)

func newShowCmd(app *App) *cobra.Command {
	var (
		width     int
		noPreview bool
		markdown  bool
	)
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the colors and parameters of a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := app.state(ctx, args[0])
			if err != nil {
				return err
			}
			def, err := app.definition(ctx, st.Name())
			if err != nil {
				return err
			}

			md := swatch.Summary(st.Name(), st.Look(), def)
			out := cmd.OutOrStdout()
			if markdown {
				fmt.Fprint(out, md)
				return nil
			}

			fmt.Fprintln(out, swatch.Palette(def.Colors()))
			if !noPreview {
				fmt.Fprintln(out, strings.Join(swatch.Preview(st.Look(), width, width/4), "\n"))
			}
			fmt.Fprintln(out, swatch.Render(md, width))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Output width in cells")
	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "Skip the chart preview")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print the summary as markdown")
	return cmd
}
