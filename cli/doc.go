// Package cli implements the command-line interface for menu.
//
// The cli package provides:
// - Command-line argument parsing and validation
// - Selection of today's, dated, searched or upcoming menus
// - First-run setup and config loading
// - Terminal output with optional color stripping and a pager
// - Opening menu pages in the browser
package cli
