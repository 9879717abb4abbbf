// ABOUTME: params command: lists store parameters whose key contains a substring
// ABOUTME: --theme applies a theme first; --keys prints key names only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/plottheme/internal/swatch"
	"github.com/mauromedda/plottheme/pkg/rcparams"
	"github.com/mauromedda/plottheme/pkg/theme"
)

func newParamsCmd(app *App) *cobra.Command {
	var (
		name     string
		keysOnly bool
	)
	cmd := &cobra.Command{
		Use:   "params [substring]",
		Short: "Search store parameters by key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := rcparams.New()
			if name != "" {
				if _, err := theme.New(cmd.Context(), store, app.registry(), name, app.options()...); err != nil {
					return err
				}
			}
			substr := ""
			if len(args) == 1 {
				substr = args[0]
			}

			found := store.Containing(substr)
			out := cmd.OutOrStdout()
			if keysOnly {
				for _, k := range found.Keys() {
					fmt.Fprintln(out, k)
				}
				return nil
			}
			rows := make([][2]string, 0, found.Len())
			for _, e := range found.Entries() {
				rows = append(rows, [2]string{e.Key, e.Value.Literal()})
			}
			fmt.Fprint(out, swatch.Columns(rows, 2))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "theme", "", "Apply this theme before searching")
	cmd.Flags().BoolVar(&keysOnly, "keys", false, "Print keys without values")
	return cmd
}
