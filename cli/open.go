package cli

import (
	"fmt"

	"github.com/ka2n/menu/format"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

func (a *app) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Opens the page of a menu on the website",
		Long: `Opens the page of a menu on the website in your browser.
Menu ids are shown with --ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, true)
			if err != nil {
				return err
			}
			if cfg.WebsiteRemote == "" {
				return failure.New(MissingRemote,
					failure.Message("No website remote configured. Set website_remote in your config file"),
				)
			}

			u := format.MenuURL(cfg.WebsiteRemote, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Opening menu in browser: %s\n", u)
			if err := a.openURL(u); err != nil {
				return failure.Wrap(err, failure.Message("Failed to open browser"))
			}
			return nil
		},
	}
}
