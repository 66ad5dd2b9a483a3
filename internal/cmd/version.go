package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "color-mcp %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Build time: %s\n", buildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", gitCommit)
		},
	}
}
