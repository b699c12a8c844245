package twitchchat

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color triplet.
type RGB struct {
	R, G, B uint8
}

// String formats the triplet as "#RRGGBB".
func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseRGB parses "#RRGGBB" or "RRGGBB" into an RGB triplet.
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("twitchchat: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("twitchchat: invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// ColorName identifies one of Twitch's documented preset chat colors, or
// Turbo for an arbitrary user-selected RGB value (available to Turbo/Prime
// accounts).
type ColorName int

const (
	ColorBlue ColorName = iota
	ColorBlueViolet
	ColorCadetBlue
	ColorChocolate
	ColorCoral
	ColorDodgerBlue
	ColorFirebrick
	ColorGoldenRod
	ColorGreen
	ColorHotPink
	ColorOrangeRed
	ColorRed
	ColorSeaGreen
	ColorSpringGreen
	ColorYellowGreen
	ColorTurbo
)

func (n ColorName) String() string {
	if s, ok := colorNameStrings[n]; ok {
		return s
	}
	return "Turbo"
}

var colorNameStrings = map[ColorName]string{
	ColorBlue:        "Blue",
	ColorBlueViolet:  "BlueViolet",
	ColorCadetBlue:   "CadetBlue",
	ColorChocolate:   "Chocolate",
	ColorCoral:       "Coral",
	ColorDodgerBlue:  "DodgerBlue",
	ColorFirebrick:   "Firebrick",
	ColorGoldenRod:   "GoldenRod",
	ColorGreen:       "Green",
	ColorHotPink:     "HotPink",
	ColorOrangeRed:   "OrangeRed",
	ColorRed:         "Red",
	ColorSeaGreen:    "SeaGreen",
	ColorSpringGreen: "SpringGreen",
	ColorYellowGreen: "YellowGreen",
}

// presetColors is the documented Twitch name-to-RGB table.
var presetColors = []struct {
	name ColorName
	rgb  RGB
}{
	{ColorBlue, RGB{0x00, 0x00, 0xFF}},
	{ColorBlueViolet, RGB{0x8A, 0x2B, 0xE2}},
	{ColorCadetBlue, RGB{0x5F, 0x9E, 0xA0}},
	{ColorChocolate, RGB{0xD2, 0x69, 0x1E}},
	{ColorCoral, RGB{0xFF, 0x7F, 0x50}},
	{ColorDodgerBlue, RGB{0x1E, 0x90, 0xFF}},
	{ColorFirebrick, RGB{0xB2, 0x22, 0x22}},
	{ColorGoldenRod, RGB{0xDA, 0xA5, 0x20}},
	{ColorGreen, RGB{0x00, 0x80, 0x00}},
	{ColorHotPink, RGB{0xFF, 0x69, 0xB4}},
	{ColorOrangeRed, RGB{0xFF, 0x45, 0x00}},
	{ColorRed, RGB{0xFF, 0x00, 0x00}},
	{ColorSeaGreen, RGB{0x2E, 0x8B, 0x57}},
	{ColorSpringGreen, RGB{0x00, 0xFF, 0x7F}},
	{ColorYellowGreen, RGB{0xAD, 0xFF, 0x2F}},
}

// colorAliases maps every accepted CamelCase/snake_case/space-separated/
// lowercase spelling to its preset, per spec §6's color table.
var colorAliases = map[string]ColorName{
	"blue": ColorBlue,

	"blueviolet":  ColorBlueViolet,
	"blue_violet": ColorBlueViolet,
	"blue violet": ColorBlueViolet,

	"cadetblue":  ColorCadetBlue,
	"cadet_blue": ColorCadetBlue,
	"cadet blue": ColorCadetBlue,

	"chocolate": ColorChocolate,
	"coral":     ColorCoral,

	"dodgerblue":  ColorDodgerBlue,
	"dodger_blue": ColorDodgerBlue,
	"dodger blue": ColorDodgerBlue,

	"firebrick": ColorFirebrick,

	"goldenrod":  ColorGoldenRod,
	"golden_rod": ColorGoldenRod,
	"golden rod": ColorGoldenRod,

	"green": ColorGreen,

	"hotpink":  ColorHotPink,
	"hot_pink": ColorHotPink,
	"hot pink": ColorHotPink,

	"orangered":  ColorOrangeRed,
	"orange_red": ColorOrangeRed,
	"orange red": ColorOrangeRed,

	"red": ColorRed,

	"seagreen":  ColorSeaGreen,
	"sea_green": ColorSeaGreen,
	"sea green": ColorSeaGreen,

	"springgreen":  ColorSpringGreen,
	"spring_green": ColorSpringGreen,
	"spring green": ColorSpringGreen,

	"yellowgreen":  ColorYellowGreen,
	"yellow_green": ColorYellowGreen,
	"yellow green": ColorYellowGreen,
}

// Color is a resolved Twitch chat color: one of the 15 documented presets,
// or Turbo with an arbitrary RGB triplet.
type Color struct {
	Name ColorName
	RGB  RGB
}

// String renders the preset name, or the hex form for Turbo.
func (c Color) String() string {
	if c.Name == ColorTurbo {
		return c.RGB.String()
	}
	return c.Name.String()
}

// ParseColor accepts a case-insensitive preset name (CamelCase, snake_case,
// or space-separated) or a "#RRGGBB"/"RRGGBB" hex string. A hex string that
// happens to match a preset's RGB value still resolves to Turbo, since only
// name lookup resolves to a preset per the original's FromStr behavior.
func ParseColor(s string) (Color, error) {
	if name, ok := colorAliases[strings.ToLower(s)]; ok {
		for _, p := range presetColors {
			if p.name == name {
				return Color{Name: name, RGB: p.rgb}, nil
			}
		}
	}
	rgb, err := ParseRGB(s)
	if err != nil {
		return Color{}, fmt.Errorf("twitchchat: unknown color %q", s)
	}
	return Color{Name: ColorTurbo, RGB: rgb}, nil
}
