// ABOUTME: export command: writes a stored theme definition to stdout
// ABOUTME: The default is the definition file format; --yaml emits an ordered YAML mapping

package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd(app *App) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Print a theme definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := app.definition(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var data []byte
			if asYAML {
				data, err = yaml.Marshal(def)
			} else {
				data, err = def.MarshalText()
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Emit YAML instead of the definition format")
	return cmd
}
