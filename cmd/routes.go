package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/encodeous/vecsim/core"
	"github.com/encodeous/vecsim/display"
)

// routesCmd prints only the converged routing tables, skipping the
// per-round distance tables.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print only the converged routing tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readTopology()
		if err != nil {
			return err
		}

		var renderer core.Renderer = display.NewTextRenderer(os.Stdout)
		if ok, _ := cmd.Flags().GetBool("pretty"); ok {
			renderer = display.NewPrettyRenderer(os.Stdout)
		}

		return core.Start(cfg, core.Options{
			Renderer:   renderer,
			LogLevel:   slog.LevelWarn,
			RoutesOnly: true,
		})
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)

	routesCmd.Flags().Bool("pretty", false, "Render styled terminal tables")
}
