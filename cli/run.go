package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ka2n/menu/api"
	"github.com/ka2n/menu/config"
	"github.com/ka2n/menu/log"
	"github.com/ka2n/menu/mcp"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// Version information
var (
	Commit = "none"
	Date   = "unknown"
)

// app holds the global flags and the collaborators replaced in tests
type app struct {
	showIDs bool
	api     urlFlag
	pager   bool
	color   colorMode
	debug   bool

	now     func() time.Time
	openURL func(url string) error
}

func newApp() *app {
	return &app{
		color:   colorAuto,
		now:     time.Now,
		openURL: browser.OpenURL,
	}
}

// Run executes the main CLI functionality
func Run() error {
	return newRootCmd(newApp()).ExecuteContext(context.Background())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "menu",
		Short:         "A CLI to quickly check what is served in your local Mensa",
		Version:       api.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `menu fetches the menus of your cafeteria from its API and prints them.

On the first run you are asked for the website and the API of your menu service.
Both are stored in the config file, see "menu config".`,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.showIDs, "ids", "i", false, "Show the ids of the menus")
	flags.VarP(&a.api, "api", "a", "Override the api remote set in the config")
	flags.BoolVarP(&a.pager, "pager", "p", false, "Show the output in a pager")
	flags.Var(&a.color, "color", "Colorize the output: auto, always or never")
	flags.BoolVar(&a.debug, "debug", false, "Log requests and decisions to stderr")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if a.debug {
			log.SetDebug(true)
		}
	}

	rootCmd.AddCommand(
		a.menuCmd("today", "Prints today's menus", cobra.NoArgs, func(args []string) (api.Selection, error) {
			return api.Today(), nil
		}),
		a.menuCmd("tomorrow", "Prints tomorrow's menus", cobra.NoArgs, func(args []string) (api.Selection, error) {
			return api.InDays(a.now(), 1), nil
		}),
		a.menuCmd("next <offset>", "Prints the menus in <offset> days", cobra.ExactArgs(1), func(args []string) (api.Selection, error) {
			offset, err := parseOffset(args[0])
			if err != nil {
				return api.Selection{}, err
			}
			return api.InDays(a.now(), offset), nil
		}),
		a.menuCmd("date <dd.mm.yy>", "Prints the menus on a specific date", cobra.ExactArgs(1), func(args []string) (api.Selection, error) {
			date, err := parseDate(args[0])
			if err != nil {
				return api.Selection{}, err
			}
			return api.OnDate(date), nil
		}),
		a.menuCmd("search <query>...", "Searches for menus to print with a specific query", cobra.MinimumNArgs(1), func(args []string) (api.Selection, error) {
			return parseQuery(args)
		}),
		a.menuCmd("upcoming", "Prints all menus that are yet to come", cobra.NoArgs, func(args []string) (api.Selection, error) {
			return api.Upcoming(), nil
		}),
		a.infoCmd(),
		a.openCmd(),
		a.configCmd(),
		mcp.Command(a.mcpClient),
		versionCmd(),
	)

	return rootCmd
}

// menuCmd builds a subcommand printing the menus chosen by sel
func (a *app) menuCmd(use, short string, args cobra.PositionalArgs, sel func(args []string) (api.Selection, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are checked before anything touches the config or the network
			selection, err := sel(args)
			if err != nil {
				return err
			}
			return a.printMenus(cmd, selection)
		},
	}
}

func (a *app) printMenus(cmd *cobra.Command, sel api.Selection) error {
	cfg, err := a.loadConfig(cmd, true)
	if err != nil {
		return err
	}

	client, err := a.client(cfg)
	if err != nil {
		return err
	}

	menus, err := client.Menus(cmd.Context(), sel)
	if err != nil {
		return withPrefix(err, "Couldn't read menus from api")
	}

	return a.write(cmd, newPrinter(cfg, a.showIDs).Render(menus))
}

// loadConfig reads the settings and applies the --api override.
// With interactive set, a first run without override starts the setup.
func (a *app) loadConfig(cmd *cobra.Command, interactive bool) (config.Config, error) {
	path, err := config.Path()
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if a.api.IsSet {
		cfg.APIRemote = a.api.Value
		return cfg, nil
	}

	if interactive && cfg.NeedsSetup() {
		setup := &config.Setup{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
		changed, err := setup.Complete(cmd.Context(), &cfg)
		if err != nil {
			return config.Config{}, err
		}
		if changed {
			if err := config.Save(path, cfg); err != nil {
				return config.Config{}, err
			}
			setup.Done()
		}
	}

	return cfg, nil
}

func (a *app) client(cfg config.Config) (*api.Client, error) {
	if cfg.APIRemote == "" {
		return nil, failure.New(MissingRemote,
			failure.Message("No api remote configured. Set api_remote in your config file or pass --api"),
		)
	}
	return api.NewClient(cfg.APIRemote), nil
}

// mcpClient provides the API client for the MCP server, which owns stdin and cannot run the setup
func (a *app) mcpClient(cmd *cobra.Command) (*api.Client, error) {
	cfg, err := a.loadConfig(cmd, false)
	if err != nil {
		return nil, err
	}
	return a.client(cfg)
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the location of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about menu",
		Run: func(cmd *cobra.Command, args []string) {
			commit := Commit
			if api.VersionCommit != "" {
				commit = api.VersionCommit
			}
			fmt.Fprintf(cmd.OutOrStdout(), "menu version %s\n", api.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", Date)
		},
	}
}
