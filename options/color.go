package options

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an RGB triplet. It has no identity beyond its three channel
// values and is immutable once constructed.
//
// The canonical text form is "#RRGGBB" with uppercase hex digits:
//
//	red := options.Color{R: 255}
//	red.String()                 // "#FF0000"
//	options.ParseColor("#FF0000") // red
type Color struct {
	// R is the red channel.
	R uint8
	// G is the green channel.
	G uint8
	// B is the blue channel.
	B uint8
}

// String returns the canonical "#RRGGBB" form of the color.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ColorParseError is returned when a string cannot be interpreted as a color
// in any of the accepted notations.
type ColorParseError struct {
	Input string
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Input)
}

// ParseColor parses a textual color. It accepts CSS-style color expressions:
// hex notation of 3, 4, 6 or 8 digits with a leading "#", rgb()/rgba()
// functional notation, and CSS color keywords. If the input matches none of
// these, a second attempt is made with a "#" prepended, so bare hex digits
// like "FFCC00" are accepted as well. Any alpha channel is discarded; only
// the R, G and B channels are retained.
func ParseColor(text string) (Color, error) {
	if c, ok := parseCSSColor(text); ok {
		return c, nil
	}
	if c, ok := parseCSSColor("#" + text); ok {
		return c, nil
	}
	return Color{}, &ColorParseError{Input: text}
}

// parseCSSColor parses a single CSS color expression: hex, functional
// rgb()/rgba() notation or a color keyword.
func parseCSSColor(text string) (Color, bool) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "#") {
		return parseHexColor(text[1:])
	}

	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseFunctionalColor(lower)
	}

	if named, ok := colornames.Map[lower]; ok {
		return Color{R: named.R, G: named.G, B: named.B}, true
	}
	return Color{}, false
}

// parseHexColor parses the digits of a hex color without the leading "#".
// Short notations repeat each digit, long notations are chunked into groups
// of exactly two hex digits in document order R, G, B. A trailing alpha
// group is parsed but dropped.
func parseHexColor(digits string) (Color, bool) {
	switch len(digits) {
	case 3, 4:
		channels := make([]uint8, 0, len(digits))
		for i := range len(digits) {
			v, err := strconv.ParseUint(digits[i:i+1], 16, 8)
			if err != nil {
				return Color{}, false
			}
			channels = append(channels, uint8(v*16+v))
		}
		return Color{R: channels[0], G: channels[1], B: channels[2]}, true

	case 6, 8:
		channels := make([]uint8, 0, len(digits)/2)
		for i := 0; i < len(digits); i += 2 {
			v, err := strconv.ParseUint(digits[i:i+2], 16, 8)
			if err != nil {
				return Color{}, false
			}
			channels = append(channels, uint8(v))
		}
		return Color{R: channels[0], G: channels[1], B: channels[2]}, true

	default:
		return Color{}, false
	}
}

// parseFunctionalColor parses "rgb(r, g, b)" and "rgba(r, g, b, a)"
// expressions. Channel values may be integers, floats or percentages and are
// clamped to the 0-255 range. The alpha argument is accepted and ignored.
func parseFunctionalColor(text string) (Color, bool) {
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return Color{}, false
	}
	name := text[:open]
	args := strings.Split(text[open+1:len(text)-1], ",")

	switch {
	case name == "rgb" && len(args) == 3:
	case name == "rgba" && len(args) == 4:
	default:
		return Color{}, false
	}

	channels := make([]uint8, 0, 3)
	for _, arg := range args[:3] {
		v, ok := parseChannel(strings.TrimSpace(arg))
		if !ok {
			return Color{}, false
		}
		channels = append(channels, v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, true
}

func parseChannel(arg string) (uint8, bool) {
	scale := 1.0
	if strings.HasSuffix(arg, "%") {
		arg = arg[:len(arg)-1]
		scale = 255.0 / 100.0
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, false
	}
	v *= scale
	switch {
	case v < 0:
		return 0, true
	case v > 255:
		return 255, true
	default:
		return uint8(v + 0.5), true
	}
}
