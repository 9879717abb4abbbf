// ABOUTME: list command: prints local, remote or all theme names
// ABOUTME: --all queries both registries concurrently and tags each name with its source

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/plottheme/internal/swatch"
	"github.com/mauromedda/plottheme/pkg/theme"
)

func newListCmd(app *App) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available themes (--remote lists the remote registry)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reg := app.registry()
			out := cmd.OutOrStdout()

			if all && app.Remote {
				return fmt.Errorf("--remote and --all cannot be combined")
			}
			if !all {
				src := theme.Local
				if app.Remote {
					src = theme.Remote
				}
				names, err := reg.List(ctx, src)
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(out, n)
				}
				return nil
			}

			var locals, remotes []string
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				locals, err = reg.List(gctx, theme.Local)
				return err
			})
			g.Go(func() error {
				var err error
				remotes, err = reg.List(gctx, theme.Remote)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			rows := make([][2]string, 0, len(locals)+len(remotes))
			for _, n := range locals {
				rows = append(rows, [2]string{swatch.Truncate(n, nameWidth), theme.Local.String()})
			}
			for _, n := range remotes {
				rows = append(rows, [2]string{swatch.Truncate(n, nameWidth), theme.Remote.String()})
			}
			fmt.Fprint(out, swatch.Columns(rows, 2))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "List the local and remote registries together")
	return cmd
}

// nameWidth caps the name column of tabular output.
const nameWidth = 40
