// Command frontierpath wires the adjacency-list parser, frontier table,
// ZDD construction, solution counter, and diagram writer into a Cobra CLI.
package main

import "github.com/katalvlaran/frontierpath/cmd/frontierpath/cmd"

func main() {
	cmd.Execute()
}
