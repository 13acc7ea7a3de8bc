// Package mcp implements the Model Context Protocol server for menu.
//
// The mcp package provides:
// - An MCP server over stdio
// - Tools fetching today's, dated, searched and upcoming menus
// - A tool describing the configured menu api
package mcp
