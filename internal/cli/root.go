// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/natanaeljr/gerlib/internal/config"
)

// NewRootCmd builds the ger command tree. Configuration is loaded once the
// command line is parsed, before any subcommand runs.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := newApp(opts...)

	cmd := &cobra.Command{
		Use:               appName,
		Short:             "Gerrit command line client",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	a.flags = config.RegisterFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase output verbosity (-v, -vv)")

	cmd.AddCommand(newRemoteCmd(a))
	cmd.AddCommand(newChangeCmd(a))
	cmd.AddCommand(newVersionCmd(a))

	return cmd
}
