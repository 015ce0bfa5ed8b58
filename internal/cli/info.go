package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limaJavier/incsat/pkg/sat"
)

// NewBackendsCommand creates the backends command.
func NewBackendsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered solver backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sat.Backends() {
				marker := " "
				if name == rootOpts.Config.Backend {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v %v\n", marker, name)
			}
			return nil
		},
	}
}

// NewSignatureCommand creates the signature command.
func NewSignatureCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signature",
		Short: "Print the name and version of the configured engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			solver, err := rootOpts.newSolver()
			if err != nil {
				return err
			}
			defer solver.Close()

			fmt.Fprintln(cmd.OutOrStdout(), solver.Signature())
			return nil
		},
	}
}
