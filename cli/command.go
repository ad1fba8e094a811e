package cli

import (
	"github.com/spf13/cobra"
)

// NewStandardCommand creates a single-purpose root command whose arguments
// are parsed by the caller, in order, instead of by cobra.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	SetStyledHelp(cmd)

	return cmd
}
