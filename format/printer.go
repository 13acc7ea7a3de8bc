package format

import (
	"fmt"
	"strings"

	"github.com/ka2n/menu/api"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

// Options are the per invocation display switches
type Options struct {
	// ShowIDs prints the menu identifier above the description
	ShowIDs bool
	// LinkBase is the website root used for menu links. Empty disables links.
	LinkBase string
}

// Printer renders menus as ANSI styled text
type Printer struct {
	cfg  Config
	opts Options
}

// NewPrinter creates a printer for the given styling and options
func NewPrinter(cfg Config, opts Options) *Printer {
	return &Printer{cfg: cfg, opts: opts}
}

// Render returns the full console output for menus
func (p *Printer) Render(menus []api.Menu) string {
	if len(menus) == 0 {
		return ANSI(p.cfg.NotFoundText, p.cfg.NotFoundANSI) + "\n\n"
	}

	var b strings.Builder
	for _, m := range menus {
		b.WriteString(p.RenderMenu(m))
	}
	return b.String()
}

// RenderMenu returns one menu block followed by a blank line
func (p *Printer) RenderMenu(m api.Menu) string {
	block := fmt.Sprintf("%s %s %s\n%s%s\n%s\n%s",
		p.Title(m),
		p.Date(m),
		p.Label(m),
		p.ID(m),
		p.Description(m),
		p.Price(m),
		p.Link(m),
	)
	return strings.TrimSpace(block) + "\n\n"
}

func (p *Printer) Title(m api.Menu) string {
	return ANSI(m.Title, p.cfg.TitleANSI)
}

func (p *Printer) Date(m api.Menu) string {
	return ANSI(m.Date.Format(p.cfg.DateFormat), p.cfg.DateANSI)
}

// Label renders nothing for label 0 and falls back to UnknownLabel/ResetANSI
// when the label is beyond the configured lists.
func (p *Printer) Label(m api.Menu) string {
	if m.Label <= 0 {
		return ""
	}
	i := m.Label - 1
	return ANSI(nth(p.cfg.LabelText, i, UnknownLabel), nth(p.cfg.LabelANSI, i, ResetANSI))
}

func (p *Printer) ID(m api.Menu) string {
	if !p.opts.ShowIDs {
		return ""
	}
	return ANSI(m.ID, p.cfg.IDANSI) + "\n"
}

// Description wraps the text to the configured width and styles it as a single unit
func (p *Printer) Description(m api.Menu) string {
	return ANSI(Wrap(m.Description, p.cfg.DescriptionWidth), p.cfg.DescriptionANSI)
}

// Price renders "TAG amount" pairs in input order joined by the separator
func (p *Printer) Price(m api.Menu) string {
	parts := lo.Map(m.Prices, func(pr api.Price, _ int) string {
		return ANSI(strings.ToUpper(pr.Tag), p.cfg.PriceGroupANSI) + " " +
			ANSI(fmt.Sprintf("%.2f", pr.Amount), p.cfg.PriceAmountANSI)
	})
	return strings.Join(parts, ANSI(p.cfg.PriceSeparator, p.cfg.PriceSeparatorANSI))
}

func (p *Printer) Link(m api.Menu) string {
	if p.opts.LinkBase == "" {
		return ""
	}
	return ANSI(MenuURL(p.opts.LinkBase, m.ID), p.cfg.LinkANSI) + "\n"
}

// MenuURL returns the website page of the menu with exactly one slash before "menu/"
func MenuURL(base, id string) string {
	return strings.TrimRight(base, "/") + "/menu/" + id
}

// Wrap breaks text at whitespace so no line exceeds width.
// Words longer than width are split.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wrap.String(wordwrap.String(text, width), width)
}

// ANSI wraps s in an SGR sequence using code and resets afterwards
func ANSI(s, code string) string {
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func nth(list []string, i int, fallback string) string {
	v, err := lo.Nth(list, i)
	if err != nil {
		return fallback
	}
	return v
}
