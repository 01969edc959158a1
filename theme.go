package mdnb

// Theme defines semantic color mappings for the terminal preview using ANSI
// color indices (0-15). The user's terminal theme determines the actual RGB
// values, so the preview automatically matches any color scheme.
type Theme struct {
	Accent int // headings, notebook title
	Muted  int // code gutters, language labels
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent: 5,
		Muted:  8,
	}
}
