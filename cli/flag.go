package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/pflag"
)

// urlFlag holds an absolute URL and remembers whether it was given
type urlFlag struct {
	IsSet bool
	Value string
}

// String implements pflag.Value.
func (s *urlFlag) String() string {
	return s.Value
}

func (s *urlFlag) Set(value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not a valid url", value)
	}
	s.Value = value
	s.IsSet = true
	return nil
}

func (s *urlFlag) Type() string {
	return "url"
}

// colorMode decides whether ANSI styling reaches the output
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (c *colorMode) String() string {
	return string(*c)
}

func (c *colorMode) Set(value string) error {
	switch colorMode(value) {
	case colorAuto, colorAlways, colorNever:
		*c = colorMode(value)
		return nil
	default:
		return fmt.Errorf("must be one of %s, %s or %s", colorAuto, colorAlways, colorNever)
	}
}

func (c *colorMode) Type() string {
	return "when"
}

var (
	_ pflag.Value = &urlFlag{}
	_ pflag.Value = new(colorMode)
)
