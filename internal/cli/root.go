// ABOUTME: Root cobra command for plottheme: persistent flags, settings resolution and shared helpers
// ABOUTME: Flags override config files and PLOTTHEME_* env vars; subcommands share one App

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mauromedda/plottheme/internal/config"
	"github.com/mauromedda/plottheme/internal/log"
	"github.com/mauromedda/plottheme/pkg/rcparams"
	"github.com/mauromedda/plottheme/pkg/theme"
)

// App carries the flag values and resolved settings of one invocation.
type App struct {
	Dir          string
	RemoteURL    string
	Remote       bool
	Timeout      time.Duration
	Verbose      bool
	NoTitleStyle bool

	// LoadSettings reads the file and environment settings that flags
	// override. Nil means config.Load from the working directory.
	LoadSettings func() (*config.Settings, error)

	settings *config.Settings
}

// NewRootCmd returns the plottheme command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "plottheme",
		Short:        "Manage named plot themes over an rcParams store",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Install the bundled themes and a starter config
  plottheme init

  # See what is available and what a theme looks like
  plottheme list --all
  plottheme show nightfall

  # Build a new theme on top of an existing one
  plottheme derive nightfall midnight --grid on --grid-color '#333333'
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.Verbose {
			log.SetLevel(log.LevelDebug)
		}
		return app.resolve(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Local themes directory (default from config)")
	cmd.PersistentFlags().StringVar(&app.RemoteURL, "remote-url", "", "Remote registry base URL")
	cmd.PersistentFlags().BoolVar(&app.Remote, "remote", false, "Fall back to the remote registry when a theme is not local")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", config.DefaultTimeout, "Remote request timeout")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.PersistentFlags().BoolVar(&app.NoTitleStyle, "no-title-style", false, "Leave the title size and weight of themes alone")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newApplyCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDeriveCmd(app))
	cmd.AddCommand(newParamsCmd(app))

	return cmd
}

// resolve loads settings and lays the explicitly set flags over them.
func (app *App) resolve(cmd *cobra.Command) error {
	load := app.LoadSettings
	if load == nil {
		load = func() (*config.Settings, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return config.Load(cwd)
		}
	}
	s, err := load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		s.ThemesDir = config.ExpandHome(app.Dir)
	}
	if flags.Changed("remote-url") {
		s.RemoteURL = app.RemoteURL
	}
	if flags.Changed("remote") {
		on := app.Remote
		s.RemoteEnabled = &on
	}
	if flags.Changed("timeout") {
		s.Timeout = config.Duration{Duration: app.Timeout}
	}
	if app.NoTitleStyle {
		off := false
		s.Title.Enabled = &off
	}
	if s.ThemesDir == "" {
		return fmt.Errorf("no themes directory; pass --dir or set %s", config.EnvDir)
	}
	app.settings = s
	log.Debug("cli: themes dir %s, remote %q (enabled %t)", s.ThemesDir, s.RemoteURL, s.Remote())
	return nil
}

func (app *App) registry() *theme.Registry {
	s := app.settings
	return theme.NewRegistry(s.ThemesDir, s.RemoteURL, s.Timeout.Duration)
}

func (app *App) options() []theme.Option {
	s := app.settings
	var opts []theme.Option
	if s.Remote() {
		opts = append(opts, theme.WithRemote())
	}
	if s.Title.On() {
		opts = append(opts, theme.WithTitleStyle(s.Title.Size, s.Title.Weight))
	} else {
		opts = append(opts, theme.WithoutTitleStyle())
	}
	return opts
}

// state applies name to a fresh store.
func (app *App) state(ctx context.Context, name string) (*theme.State, error) {
	return theme.New(ctx, rcparams.New(), app.registry(), name, app.options()...)
}

// definition loads name from the local registry, then from the remote one
// when the remote fallback is enabled.
func (app *App) definition(ctx context.Context, name string) (*theme.Definition, error) {
	reg := app.registry()
	def, err := reg.Load(ctx, name, theme.Local)
	if err == nil || !errors.Is(err, theme.ErrNotFound) || !app.settings.Remote() {
		return def, err
	}
	return reg.Load(ctx, name, theme.Remote)
}
