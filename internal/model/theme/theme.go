package theme

// Option mirrors the ChatKit ThemeOption shape consumed by the widget.
type Option struct {
	Color       Color      `json:"color"`
	Radius      string     `json:"radius"`
	ColorScheme string     `json:"colorScheme"`
	Density     string     `json:"density"`
	Typography  Typography `json:"typography"`
}

// Color groups the grayscale and accent token blocks.
type Color struct {
	Grayscale Grayscale `json:"grayscale"`
	Accent    Accent    `json:"accent"`
}

// Grayscale tunes the widget's neutral palette.
type Grayscale struct {
	Hue   int `json:"hue"`
	Tint  int `json:"tint"`
	Shade int `json:"shade"`
}

// Accent sets the widget's primary accent color.
type Accent struct {
	Primary string `json:"primary"`
	Level   int    `json:"level"`
}

// Typography carries the base font size.
type Typography struct {
	BaseSize int `json:"baseSize"`
}

// ForScheme returns the widget theme tokens for a color scheme. Anything
// other than "dark" gets the light palette.
func ForScheme(scheme string) Option {
	colorScheme := "light"
	shade := -4
	primary := "#0f172a"
	if scheme == "dark" {
		colorScheme = "dark"
		shade = -1
		primary = "#f1f5f9"
	}

	return Option{
		Color: Color{
			Grayscale: Grayscale{Hue: 220, Tint: 6, Shade: shade},
			Accent:    Accent{Primary: primary, Level: 1},
		},
		Radius:      "round",
		ColorScheme: colorScheme,
		Density:     "normal",
		Typography:  Typography{BaseSize: 15},
	}
}
