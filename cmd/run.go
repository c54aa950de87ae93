package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/encodeous/vecsim/core"
	"github.com/encodeous/vecsim/display"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate convergence over a topology",
	Long: `Reads a topology (token protocol by default, YAML with --yaml), runs the
relaxation to a fixed point, prints every round's distance tables and the final
routing tables, then applies the update batch and re-converges the same way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readTopology()
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			level = slog.LevelDebug
		}
		logPath, _ := cmd.Flags().GetString("log")

		var renderer core.Renderer = display.NewTextRenderer(os.Stdout)
		if ok, _ := cmd.Flags().GetBool("pretty"); ok {
			renderer = display.NewPrettyRenderer(os.Stdout)
		}

		return core.Start(cfg, core.Options{
			Renderer: renderer,
			LogLevel: level,
			LogPath:  logPath,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	runCmd.Flags().Bool("pretty", false, "Render styled terminal tables")
	runCmd.Flags().String("log", "", "Also write logs to this file")
}
