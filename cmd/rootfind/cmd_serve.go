package main

import (
	"context"

	"github.com/spf13/cobra"

	"rootfind/internal/logging"
	mcpserver "rootfind/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func newServeCmd() *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Long: `Starts an MCP server over stdin/stdout exposing the list_scenarios,
solve and compare tools.

The server monitors its parent process and exits when the parent goes away.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := mcpserver.NewServer()
			if !cmd.Flags().Changed("parallel") {
				p, err := envInt(envParallel, parallel)
				if err != nil {
					return err
				}
				parallel = p
			}
			srv.Parallel = parallel

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			mcpserver.WatchParent(ctx, mcpserver.DefaultWatchInterval, cancel)

			logging.New("mcp").Info("starting rootfind MCP server over stdio (parent watchdog active)")
			return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 1, "Default parallel engine runs for the compare tool; default $ROOTFIND_PARALLEL")
	return cmd
}
