package cmd

import (
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/spf13/cobra"
)

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.serverConfig()
			a.logger.Info("Starting MCP server",
				"version", cfg.Version,
				"strict_hex", cfg.StrictHex,
				"default_amount", cfg.DefaultAmount,
			)
			return server.New(cfg).Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
