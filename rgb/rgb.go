// Package rgb turns the hex color tokens found in theme files into RGB
// triples for rendering swatches.
package rgb

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// hexDigits is the number of digits in a full #rrggbb token.
const hexDigits = 6

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Black is returned for anything that cannot be decoded.
var Black = RGB{}

// Parse decodes a color token such as "#rrggbb", "0xrrggbb" or "rrggbb".
// It never fails: short, empty or non-hex input yields black.
//
// Tokens with fewer than six digits are padded by repeating their first
// digit, so "abc" becomes "abcaaa" rather than the CSS-style "aabbcc".
func Parse(token string) RGB {
	// "#fff" is the shortest token worth decoding
	if len(token) < 3 {
		return Black
	}

	digits := token
	switch {
	case strings.HasPrefix(digits, "#"):
		digits = strings.TrimPrefix(digits, "#")
	case strings.HasPrefix(digits, "0x"):
		digits = strings.TrimPrefix(digits, "0x")
	}

	if len(digits) < hexDigits {
		digits += strings.Repeat(digits[:1], hexDigits-len(digits))
	}

	b, err := hex.DecodeString(digits)
	if err != nil || len(b) < 3 {
		return Black
	}

	return RGB{R: b[0], G: b[1], B: b[2]}
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color returns the lipgloss color for c.
func (c RGB) Color() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Readable returns black or white, whichever stays legible on top of c.
func (c RGB) Readable() RGB {
	l, _, _ := c.colorful().Lab()
	if l > 0.6 {
		return Black
	}
	return RGB{R: 0xff, G: 0xff, B: 0xff}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
