package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wylee/dijkstar/graphio"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print node and edge counts of a stored graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	graph, err := graphio.Load[any](args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "nodes: %d\nedges: %d\n",
		graph.NodeCount(), graph.EdgeCount())

	return nil
}
