package cmd

import (
	"fmt"

	"github.com/oneinabillion/vedic-match/internal/matching"

	"github.com/spf13/cobra"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the result schema version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s version: %s (result schema %s)\n", app, version, matching.SchemaVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
