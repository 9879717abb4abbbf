// ABOUTME: apply command: applies a theme to a fresh store and prints the resulting look
// ABOUTME: Without a name the configured default theme is used, then the built-in configuration

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mauromedda/plottheme/internal/swatch"
	"github.com/mauromedda/plottheme/pkg/theme"
)

func newApplyCmd(app *App) *cobra.Command {
	var (
		dpi                 int
		titleFont, bodyFont string
	)
	cmd := &cobra.Command{
		Use:   "apply [name]",
		Short: "Apply a theme and print its look",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.settings.DefaultTheme
			if len(args) == 1 {
				name = args[0]
			}
			st, err := app.state(cmd.Context(), name)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dpi") {
				st.SetDPI(dpi)
			}
			if titleFont != "" {
				st.SetTitleFont(titleFont, "")
			}
			if bodyFont != "" {
				st.SetBodyFont(bodyFont, "")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, st)
			fmt.Fprint(out, swatch.Columns(lookRows(st.Look()), 2))
			return nil
		},
	}
	cmd.Flags().IntVar(&dpi, "dpi", theme.DefaultDPI, "Display resolution")
	cmd.Flags().StringVar(&titleFont, "title-font", "", "Font family of titles")
	cmd.Flags().StringVar(&bodyFont, "body-font", "", "Font family of body text")
	return cmd
}

func lookRows(l theme.Look) [][2]string {
	rows := [][2]string{
		{"background", l.Background},
		{"primary", l.Primary},
		{"secondary", l.Secondary},
		{"tertiary", l.Tertiary},
		{"fourth", l.Fourth},
		{"markings", l.Markings},
		{"font family", l.FontFamily},
		{"font color", l.FontColor},
		{"title font", l.TitleFont.Family},
		{"body font", l.BodyFont.Family},
	}
	out := rows[:0]
	for _, r := range rows {
		if r[1] != "" {
			out = append(out, r)
		}
	}
	return append(out, [2]string{"dpi", strconv.Itoa(l.DPI)})
}
