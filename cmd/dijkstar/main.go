// Command dijkstar is the command-line entry point: serve the HTTP
// service, inspect stored graphs, and run ad-hoc path searches.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dijkstar",
	Short: "Shortest paths over weighted graphs with pluggable costs",
	Long: `dijkstar computes single-source shortest paths over weighted graphs
whose edge costs may be computed dynamically and whose search may be
goal-directed (A*). It serves graphs over HTTP and works with graph
files in the versioned JSON/YAML adjacency schema.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, infoCmd, findCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
