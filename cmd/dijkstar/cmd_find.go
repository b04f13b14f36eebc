package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wylee/dijkstar/graphio"
	"github.com/wylee/dijkstar/pathfind"
)

var findJSON bool

var findCmd = &cobra.Command{
	Use:   "find FILE START DEST",
	Short: "Find the shortest path between two nodes of a stored graph",
	Long: `Loads a graph file and runs a shortest-path search from START to DEST,
treating edge payloads as numeric costs.`,
	Args: cobra.ExactArgs(3),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "print the result as JSON")
}

func runFind(cmd *cobra.Command, args []string) error {
	file, start, dest := args[0], args[1], args[2]

	graph, err := graphio.Load[any](file)
	if err != nil {
		return err
	}
	info, err := pathfind.FindPath(graph, start, dest)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if findJSON {
		return json.NewEncoder(out).Encode(map[string]any{
			"nodes":      info.Nodes,
			"edges":      info.Edges,
			"costs":      info.Costs,
			"total_cost": info.TotalCost,
		})
	}

	fmt.Fprintf(out, "path:  %v\n", info.Nodes)
	fmt.Fprintf(out, "costs: %v\n", info.Costs)
	fmt.Fprintf(out, "total: %v\n", info.TotalCost)

	return nil
}
