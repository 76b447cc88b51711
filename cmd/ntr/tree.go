package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/fedox/go-ntr"
	"github.com/spf13/cobra"
)

var (
	keyColor = color.New(color.FgCyan).SprintFunc()
	valColor = color.New(color.FgGreen).SprintFunc()
	sepColor = color.New(color.FgMagenta).SprintFunc()
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Render an NTR file as a colored tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forest, err := ntr.ParseFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, root := range forest.Roots() {
			printNode(out, root, 0)
		}
		return nil
	},
}

func printNode(out io.Writer, n *ntr.Node, depth int) {
	fmt.Fprint(out, strings.Repeat("  ", depth))
	fmt.Fprint(out, keyColor(n.Key()))
	if v := n.Value(); v != "" {
		fmt.Fprint(out, sepColor(" > "), valColor(v))
	}
	fmt.Fprintln(out)
	for _, child := range n.Children() {
		printNode(out, child, depth+1)
	}
}
