package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.build.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.build.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.build.BuildCommit())
			return nil
		},
	}
}
