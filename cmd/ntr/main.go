package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "ntr",
	Short:         "Inspect and rewrite NTR files",
	Long:          "ntr parses NTR, an indentation-based hierarchical key-value format, and can query values by dot path, reprint files canonically, and render them as a tree.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run: prints help by default.
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(treeCmd)
}
