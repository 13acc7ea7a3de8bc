package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorize reports whether styled output should be kept for w
func (a *app) colorize(w io.Writer) bool {
	switch a.color {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(w)
}

// write prints rendered output, through the pager when requested and possible
func (a *app) write(cmd *cobra.Command, out string) error {
	w := cmd.OutOrStdout()
	if !a.colorize(w) {
		out = ansi.Strip(out)
	}

	if a.pager && isTerminal(w) {
		return RunPager(out)
	}

	_, err := io.WriteString(w, out)
	return err
}
