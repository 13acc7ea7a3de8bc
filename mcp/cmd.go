package mcp

import (
	"github.com/ka2n/menu/api"
	"github.com/spf13/cobra"
)

// ClientFunc resolves the API client once the command has parsed its flags
type ClientFunc func(cmd *cobra.Command) (*api.Client, error)

// Command returns the MCP server command
func Command(client ClientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client(cmd)
			if err != nil {
				return err
			}
			return NewServer(c).Run()
		},
	}
}
