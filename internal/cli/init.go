// ABOUTME: init command: installs the bundled themes and writes a starter config file
// ABOUTME: Existing themes and an existing config file are left untouched

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/plottheme/internal/config"
	"github.com/mauromedda/plottheme/pkg/theme"
)

func newInitCmd(app *App) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Install the bundled themes and a starter config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := app.settings

			if err := config.EnsureDir(s.ThemesDir); err != nil {
				return err
			}
			installed, err := app.registry().Install(theme.Bundled())
			if err != nil {
				return err
			}
			for _, name := range installed {
				fmt.Fprintf(out, "installed %s\n", name)
			}
			if len(installed) == 0 {
				fmt.Fprintln(out, "bundled themes already installed")
			}

			if path == "" {
				path = config.GlobalConfigFile()
			}
			switch _, err := os.Stat(path); {
			case err == nil:
				return nil
			case !errors.Is(err, fs.ErrNotExist):
				return err
			}
			starter := &config.Settings{
				ThemesDir: s.ThemesDir,
				RemoteURL: s.RemoteURL,
				Timeout:   s.Timeout,
			}
			if err := config.Write(path, starter); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "Config file to create (default ~/.plottheme/config.toml)")
	return cmd
}
