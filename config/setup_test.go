package config

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/morikuni/failure/v2"
)

func TestSetup_Complete(t *testing.T) {
	var probed []string
	probe := func(ctx context.Context, apiURL string) error {
		probed = append(probed, apiURL)
		if apiURL != "https://api.example.com" {
			return errors.New("unreachable")
		}
		return nil
	}

	in := strings.Join([]string{
		"menu.example.com",
		"  https://menu.example.com  ",
		"not a url",
		"https://down.example.com",
		"https://api.example.com",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := &Setup{In: strings.NewReader(in), Out: &out, Probe: probe}

	cfg := Default()
	changed, err := s.Complete(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !changed {
		t.Error("Expected config to be changed")
	}
	if cfg.WebsiteRemote != "https://menu.example.com" {
		t.Errorf("WebsiteRemote = %q", cfg.WebsiteRemote)
	}
	if cfg.APIRemote != "https://api.example.com" {
		t.Errorf("APIRemote = %q", cfg.APIRemote)
	}

	// Invalid syntax never reaches the probe
	if want := []string{"https://down.example.com", "https://api.example.com"}; strings.Join(probed, ",") != strings.Join(want, ",") {
		t.Errorf("probed %v, want %v", probed, want)
	}

	text := out.String()
	if n := strings.Count(text, "Please enter a valid url."); n != 2 {
		t.Errorf("Expected 2 invalid url messages, got %d in %q", n, text)
	}
	if !strings.Contains(text, "Couldn't reach a valid api") {
		t.Errorf("Expected unreachable api message in %q", text)
	}
}

func TestSetup_AlreadyConfigured(t *testing.T) {
	cfg := Default()
	cfg.APIRemote = "https://api.example.com"

	var out bytes.Buffer
	s := &Setup{In: strings.NewReader(""), Out: &out}
	changed, err := s.Complete(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if changed {
		t.Error("Expected config to be left alone")
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestSetup_EOF(t *testing.T) {
	cfg := Default()
	s := &Setup{In: strings.NewReader("https://menu.example.com\n"), Out: &bytes.Buffer{}}

	_, err := s.Complete(context.Background(), &cfg)
	if !failure.Is(err, InputValidationFailure) {
		t.Errorf("Expected error %v, got %v", InputValidationFailure, err)
	}
	if cfg.WebsiteRemote != "" {
		t.Errorf("Expected config untouched on failure, got %q", cfg.WebsiteRemote)
	}
}
