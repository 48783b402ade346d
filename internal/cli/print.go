package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/syssam/veloxts/compiler/gen"
	"github.com/syssam/veloxts/compiler/load"
)

func newPrintCmd() *cobra.Command {
	var runtimeModule string
	cmd := &cobra.Command{
		Use:   "print <schema-file>",
		Short: "Print the generated model of one schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := load.File(args[0])
			if err != nil {
				return wrapError(fmt.Sprintf("print: %v", err), err, "", 1)
			}
			s, err := gen.NewSchema(ls)
			if err != nil {
				return wrapError(fmt.Sprintf("print: %v", err), err, "", 1)
			}
			f, err := gen.NewModelGenerator(s).WithRuntimeModule(runtimeModule).Gen()
			if err != nil {
				return wrapError(fmt.Sprintf("print: %v", err), err, "", 1)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), f.Contents)
			return err
		},
	}
	cmd.Flags().StringVar(&runtimeModule, "runtime", gen.DefaultRuntimeModule, "Module the Model base class is imported from")
	return cmd
}
