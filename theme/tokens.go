package theme

// Tokens is the themable surface of the kit. Every widget reads its colors,
// spacing, borders, text variants, and layer order from a Tokens value, so
// consumers can override any single token without touching widget code.
//
// Token groups mirror the banda naming contract: color.*, space.*, radius.*,
// shadow.*, text.*, z.*.
type Tokens struct {
	Color  ColorTokens  `yaml:"color"`
	Space  SpaceTokens  `yaml:"space"`
	Radius RadiusTokens `yaml:"radius"`
	Shadow ShadowTokens `yaml:"shadow"`
	Text   TextTokens   `yaml:"text"`
	Z      ZTokens      `yaml:"z"`
}

// ColorTokens holds the palette. Values are lipgloss color strings
// (ANSI 256 codes or hex).
type ColorTokens struct {
	Primary  string `yaml:"primary"`  // selected items, active borders
	Accent   string `yaml:"accent"`   // titles, highlights
	Danger   string `yaml:"danger"`   // errors, destructive actions
	Warning  string `yaml:"warning"`  // warning details
	Success  string `yaml:"success"`  // confirmations, valid state
	Text     string `yaml:"text"`     // normal text
	Muted    string `yaml:"muted"`    // dimmed text, hints
	Dim      string `yaml:"dim"`      // very dim text
	Border   string `yaml:"border"`   // default borders
	Backdrop string `yaml:"backdrop"` // modal backdrop fill
}

// SpaceTokens holds spacing steps in terminal cells.
type SpaceTokens struct {
	XS int `yaml:"xs"`
	SM int `yaml:"sm"`
	MD int `yaml:"md"`
	LG int `yaml:"lg"`
}

// RadiusTokens selects border shapes by name: "rounded", "normal", "thick",
// "double", or "hidden". The terminal analog of corner radius.
type RadiusTokens struct {
	Small  string `yaml:"small"`
	Medium string `yaml:"medium"`
	Large  string `yaml:"large"`
}

// ShadowTokens configures the depth illusion available to a terminal:
// backdrop dimming behind raised layers.
type ShadowTokens struct {
	Backdrop string `yaml:"backdrop"` // color used to dim obscured content
}

// StyleSpec describes one named text variant.
type StyleSpec struct {
	Color  string `yaml:"color,omitempty"`
	Bold   bool   `yaml:"bold,omitempty"`
	Italic bool   `yaml:"italic,omitempty"`
	Faint  bool   `yaml:"faint,omitempty"`
}

// TextTokens holds the named text variants widgets compose from.
type TextTokens struct {
	Title   StyleSpec `yaml:"title"`
	Label   StyleSpec `yaml:"label"`
	Help    StyleSpec `yaml:"help"`
	Caption StyleSpec `yaml:"caption"`
}

// ZTokens orders the compositing layers. Higher renders on top.
type ZTokens struct {
	Base  int `yaml:"base"`
	Modal int `yaml:"modal"`
	Toast int `yaml:"toast"`
}

// DefaultTokens returns the stock light-on-dark palette.
func DefaultTokens() Tokens {
	return Tokens{
		Color: ColorTokens{
			Primary:  "205", // magenta
			Accent:   "86",  // cyan/green
			Danger:   "196", // red
			Warning:  "208", // orange
			Success:  "42",  // green
			Text:     "252", // light gray
			Muted:    "241", // gray
			Dim:      "243", // darker gray
			Border:   "205",
			Backdrop: "236",
		},
		Space: SpaceTokens{XS: 0, SM: 1, MD: 2, LG: 4},
		Radius: RadiusTokens{
			Small:  "normal",
			Medium: "rounded",
			Large:  "double",
		},
		Shadow: ShadowTokens{Backdrop: "236"},
		Text: TextTokens{
			Title:   StyleSpec{Color: "86", Bold: true},
			Label:   StyleSpec{Color: "252"},
			Help:    StyleSpec{Color: "241"},
			Caption: StyleSpec{Color: "243", Italic: true},
		},
		Z: ZTokens{Base: 0, Modal: 100, Toast: 200},
	}
}

// DarkTokens returns a lower-contrast palette for dark terminals.
func DarkTokens() Tokens {
	t := DefaultTokens()
	t.Color.Primary = "99"  // purple
	t.Color.Accent = "39"   // blue
	t.Color.Border = "60"   // dim purple
	t.Color.Text = "250"
	t.Color.Backdrop = "234"
	t.Shadow.Backdrop = "234"
	t.Text.Title = StyleSpec{Color: "39", Bold: true}
	return t
}
