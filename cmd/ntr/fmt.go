package main

import (
	"fmt"

	"github.com/fedox/go-ntr"
	"github.com/spf13/cobra"
)

var flagWrite bool

func init() {
	fmtCmd.Flags().BoolVarP(&flagWrite, "write", "w", false, "rewrite the file in place instead of printing to stdout")
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reprint an NTR file with canonical two-space indentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		forest, err := ntr.ParseFile(cmd.Context(), file)
		if err != nil {
			return err
		}
		w, err := ntr.NewWriter(forest)
		if err != nil {
			return err
		}
		if flagWrite {
			return w.WriteFile(cmd.Context(), file)
		}
		out, err := w.String()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
