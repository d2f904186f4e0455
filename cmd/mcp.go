package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/animdocs/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to list, search and read the animation catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := openCatalog(cfg)
		if err != nil {
			return err
		}
		recorder, _, closeActivity, err := openActivity(cfg)
		if err != nil {
			return err
		}
		defer closeActivity()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "animdocs MCP server started on stdio (animations=%d)\n", c.Len())

		srv := mcpserver.NewServer(c, recorder)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
