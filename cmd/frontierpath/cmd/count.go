package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontierpath/adjtext"
	"github.com/katalvlaran/frontierpath/count"
	"github.com/katalvlaran/frontierpath/frontier"
	"github.com/katalvlaran/frontierpath/zdd"
)

var (
	countInput    string
	countS        int
	countT        int
	countMaxEdges int
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Parse, construct, and print only the decimal solution count",
	RunE:  runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)

	countCmd.Flags().StringVarP(&countInput, "input", "i", "", "adjacency-list file (defaults to stdin)")
	countCmd.Flags().IntVar(&countS, "s", 0, "source vertex (defaults to 1)")
	countCmd.Flags().IntVar(&countT, "t", 0, "target vertex (defaults to n)")
	countCmd.Flags().IntVar(&countMaxEdges, "max-edges", 0, "override parser.max_edges (0 keeps the config value)")
}

func runCount(c *cobra.Command, args []string) error {
	r, closeFn, err := openInput(countInput)
	if err != nil {
		return err
	}
	defer closeFn()

	maxEdges := cfg.Parser.MaxEdges
	if countMaxEdges > 0 {
		maxEdges = countMaxEdges
	}

	g, err := adjtext.Parse(r, adjtext.WithMaxEdges(maxEdges))
	if err != nil {
		return err
	}

	s, t := countS, countT
	if s == 0 {
		s = 1
	}
	if t == 0 {
		t = g.N
	}

	ft := frontier.Build(g)
	d, err := zdd.Construct(g, ft, s, t)
	if err != nil {
		return err
	}

	fmt.Println(count.Solutions(d).String())

	return nil
}
