package main

import (
	"fmt"

	"github.com/fedox/go-ntr"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Print the value at a dot-separated key path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, path := args[0], args[1]
		forest, err := ntr.ParseFile(cmd.Context(), file)
		if err != nil {
			return err
		}
		value, ok := forest.Value(path)
		if !ok {
			return fmt.Errorf("%s: no node at %q", file, path)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
