package config

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ka2n/menu/api"
	"github.com/ka2n/menu/log"
	"github.com/morikuni/failure/v2"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// ProbeFunc checks that an API answers at apiURL
type ProbeFunc func(ctx context.Context, apiURL string) error

// ProbeAPI accepts apiURL when its root information object can be fetched and parsed
func ProbeAPI(ctx context.Context, apiURL string) error {
	_, err := api.NewClient(apiURL).FetchInfo(ctx)
	return err
}

// Setup asks for the remotes on first use
type Setup struct {
	In    io.Reader
	Out   io.Writer
	Probe ProbeFunc
}

// Complete fills in both remotes when none is configured.
// It reports whether cfg was changed and should be saved.
func (s *Setup) Complete(ctx context.Context, cfg *Config) (bool, error) {
	if !cfg.NeedsSetup() {
		return false, nil
	}

	probe := s.Probe
	if probe == nil {
		probe = ProbeAPI
	}
	scanner := bufio.NewScanner(s.In)

	fmt.Fprintln(s.Out, headingStyle.Render("Welcome! It appears that you are using this cli the first time."))
	fmt.Fprintln(s.Out, "So please enter the following details in order to use it (You can always change them later in your config file):")
	fmt.Fprintln(s.Out)

	fmt.Fprintln(s.Out, promptStyle.Render("Please enter the website of your menu service.")+" "+hintStyle.Render("[Example: https://menu.example.com]"))
	website, err := s.ask(scanner, func(u string) string {
		if !validURL(u) {
			return "Please enter a valid url."
		}
		return ""
	})
	if err != nil {
		return false, err
	}

	fmt.Fprintln(s.Out, promptStyle.Render("Now enter the API of your menu service. If you don't know its url, try looking for it on the website (presumably in the footer).")+" "+hintStyle.Render("[Example: https://api.example.com]"))
	apiURL, err := s.ask(scanner, func(u string) string {
		if !validURL(u) {
			return "Please enter a valid url."
		}
		if err := probe(ctx, u); err != nil {
			log.Debug("API probe failed", "url", u, "error", err)
			return "Couldn't reach a valid api. Please enter a proper api url."
		}
		return ""
	})
	if err != nil {
		return false, err
	}

	cfg.WebsiteRemote = website
	cfg.APIRemote = apiURL
	return true, nil
}

// Done prints the closing line of a completed setup
func (s *Setup) Done() {
	fmt.Fprintln(s.Out, headingStyle.Render("Configured menu-cli successfully!"))
	fmt.Fprintln(s.Out)
}

// ask reads lines until check accepts one. check returns the message to re-prompt with.
func (s *Setup) ask(scanner *bufio.Scanner, check func(string) string) (string, error) {
	for {
		if !scanner.Scan() {
			ctx := failure.Context{}
			if err := scanner.Err(); err != nil {
				ctx["error"] = err.Error()
			}
			return "", failure.New(InputValidationFailure,
				failure.Message("Failed to read string from console input"),
				ctx,
			)
		}

		answer := strings.TrimSpace(scanner.Text())
		if msg := check(answer); msg != "" {
			fmt.Fprintln(s.Out, warnStyle.Render(msg))
			continue
		}
		return answer, nil
	}
}

func validURL(u string) bool {
	return validate.Var(u, "required,url") == nil
}
