package format

// Config holds the user editable styling of rendered menus.
// Every *ANSI field is an SGR parameter string such as "1;4" or "32" and is not validated.
type Config struct {
	TitleANSI string `yaml:"title_ansi"`

	// DateFormat is a Go reference layout, e.g. "[02.01.06]" for [dd.mm.yy]
	DateFormat string `yaml:"date_format"`
	DateANSI   string `yaml:"date_ansi"`

	// LabelText and LabelANSI are indexed by label value - 1
	LabelText []string `yaml:"label_text"`
	LabelANSI []string `yaml:"label_ansi"`

	DescriptionANSI  string `yaml:"description_ansi"`
	DescriptionWidth int    `yaml:"description_width" validate:"gt=0"`

	IDANSI string `yaml:"id_ansi"`

	PriceSeparator     string `yaml:"price_separator"`
	PriceSeparatorANSI string `yaml:"price_separator_ansi"`
	PriceAmountANSI    string `yaml:"price_amount_ansi"`
	PriceGroupANSI     string `yaml:"price_group_ansi"`

	LinkANSI string `yaml:"link_ansi"`

	NotFoundText string `yaml:"not_found_text"`
	NotFoundANSI string `yaml:"not_found_ansi"`
}

const (
	// UnknownLabel is shown for labels without a configured name
	UnknownLabel = "Unknown Label"
	// ResetANSI is the style used for labels without a configured style
	ResetANSI = "0"
)

// DefaultConfig returns the styling used when the config file does not override it
func DefaultConfig() Config {
	return Config{
		TitleANSI:          "1;4",
		DateFormat:         "[02.01.06]",
		DateANSI:           "0",
		LabelText:          []string{"Vegetarian", "Vegan", "One Climate"},
		LabelANSI:          []string{"32", "92", "31"},
		DescriptionANSI:    "0",
		DescriptionWidth:   55,
		IDANSI:             "90;3",
		PriceSeparator:     " | ",
		PriceSeparatorANSI: "90",
		PriceAmountANSI:    "0",
		PriceGroupANSI:     "0",
		LinkANSI:           "0",
		NotFoundText:       "No menus found!",
		NotFoundANSI:       "90",
	}
}
