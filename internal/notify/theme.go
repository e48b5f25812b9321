package notify

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadColor is returned for a color that is neither a known name nor CSS hex
var ErrBadColor = errors.New("invalid color")

// Theme holds the colors of one toast
type Theme struct {
	Background color.Color // toast body
	Text       color.Color // message text
	Bar        color.Color // progress bar along the bottom edge
}

// Themes maps each severity to its toast colors
type Themes map[Severity]Theme

// Named colors accepted in theme files
var namedColors = map[string]color.RGBA{
	"black":     {R: 0, G: 0, B: 0, A: 255},
	"white":     {R: 255, G: 255, B: 255, A: 255},
	"green":     {R: 0, G: 128, B: 0, A: 255},
	"olive":     {R: 128, G: 128, B: 0, A: 255},
	"orange":    {R: 255, G: 165, B: 0, A: 255},
	"red":       {R: 255, G: 0, B: 0, A: 255},
	"royalblue": {R: 65, G: 105, B: 225, A: 255},
	"gray":      {R: 128, G: 128, B: 128, A: 255},
}

// DefaultThemes returns the stock colors: green, orange and red toasts with
// white text and an olive, black or royal blue bar.
func DefaultThemes() Themes {
	return Themes{
		SeveritySuccess: {Background: namedColors["green"], Text: namedColors["white"], Bar: namedColors["olive"]},
		SeverityWarning: {Background: namedColors["orange"], Text: namedColors["white"], Bar: namedColors["black"]},
		SeverityFailure: {Background: namedColors["red"], Text: namedColors["white"], Bar: namedColors["royalblue"]},
	}
}

type themeEntry struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Bar        string `yaml:"bar"`
}

// ParseThemes reads theme overrides from YAML keyed by severity name:
//
//	success:
//	  background: "#2ea043"
//	failure: {bar: black}
//
// Colors left out keep their default value.
func ParseThemes(data []byte) (Themes, error) {
	var entries map[string]themeEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	themes := DefaultThemes()
	for name, entry := range entries {
		severity, err := ParseSeverity(name)
		if err != nil {
			return nil, err
		}

		theme := themes[severity]
		if err := overrideColor(&theme.Background, entry.Background); err != nil {
			return nil, fmt.Errorf("%s background: %w", name, err)
		}
		if err := overrideColor(&theme.Text, entry.Text); err != nil {
			return nil, fmt.Errorf("%s text: %w", name, err)
		}
		if err := overrideColor(&theme.Bar, entry.Bar); err != nil {
			return nil, fmt.Errorf("%s bar: %w", name, err)
		}
		themes[severity] = theme
	}

	return themes, nil
}

func overrideColor(dst *color.Color, value string) error {
	if value == "" {
		return nil
	}
	c, err := ParseColor(value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

// ParseColor accepts a color name from the default palette or CSS hex in
// #rgb, #rrggbb or #rrggbbaa form
func ParseColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)
	if c, ok := namedColors[strings.ToLower(value)]; ok {
		return c, nil
	}

	if !strings.HasPrefix(value, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, value)
	}
	hex := value[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, value)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, value)
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
