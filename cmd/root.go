package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	inputPath string
	yamlInput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vecsim",
	Short: "Distance-vector routing convergence simulator",
	Long: `Vecsim centrally simulates the round-by-round Bellman-Ford relaxation
that distance-vector routers would perform over a weighted topology, including
warm-started re-convergence after a batch of link changes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "file", "f", "", "topology input file (defaults to stdin)")
	rootCmd.PersistentFlags().BoolVar(&yamlInput, "yaml", false, "treat the input as a YAML topology document")
}
