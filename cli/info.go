package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/ka2n/menu/api"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Prints information about the menu api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, true)
			if err != nil {
				return err
			}
			client, err := a.client(cfg)
			if err != nil {
				return err
			}

			info, err := client.FetchInfo(cmd.Context())
			if err != nil {
				return withPrefix(err, "Couldn't read information from api")
			}
			count, err := client.FetchMenuCount(cmd.Context())
			if err != nil {
				return withPrefix(err, "Couldn't read menu stats from api")
			}

			doc := infoMarkdown(client.BaseURL(), cfg.WebsiteRemote, info, count, a.now())

			style := glamour.WithAutoStyle()
			if !a.colorize(cmd.OutOrStdout()) {
				style = glamour.WithStandardStyle("notty")
			}
			renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
			if err != nil {
				return failure.Wrap(err)
			}
			out, err := renderer.Render(doc)
			if err != nil {
				return failure.Wrap(err)
			}

			return a.write(cmd, out)
		},
	}
}

// infoMarkdown describes the API as a markdown document
func infoMarkdown(apiURL, website string, info api.Info, count int64, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Menu API\n\n")
	fmt.Fprintf(&b, "- **Api**: %s\n", apiURL)
	if website != "" {
		fmt.Fprintf(&b, "- **Website**: %s\n", website)
	}
	fmt.Fprintf(&b, "- **Version**: %s\n", info.Version)
	fmt.Fprintf(&b, "- **Running since**: %s (%s)\n",
		info.Started.Local().Format("2006-01-02 15:04"),
		uptime(now.Sub(info.Started)),
	)
	fmt.Fprintf(&b, "- **Menus**: %d\n", count)
	return b.String()
}

func uptime(d time.Duration) string {
	if d < time.Minute {
		return "just started"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
