package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "polybool",
	Short: "run polygon boolean and offset jobs",
	Long: `polybool drives the vattikit/polybool clipping engine from the
command line:
	- run a union/intersection/difference/xor job described in YAML,
	- run an offset job described in YAML,
	- read subject/clip/input paths and write results as JSON.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
