package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// MaxWidth is the widest stroke the width control may ask for.
const MaxWidth = 100

var (
	ErrInvalidWidth = errors.New("invalid stroke width")
	ErrInvalidColor = errors.New("invalid stroke color")
)

// ParseWidth reads a stroke width as sent by a range control.
func ParseWidth(raw string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidth, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > MaxWidth {
		return 0, fmt.Errorf("%w: %q out of range (0, %d]", ErrInvalidWidth, raw, MaxWidth)
	}
	return float32(v), nil
}

// ParseColor accepts "#rgb", "#rrggbb" and CSS color names.
func ParseColor(raw string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if s[0] == '#' {
		if len(s) != 4 && len(s) != 7 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, raw)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, raw, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	nc, ok := colornames.Map[s]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: name not found %q", ErrInvalidColor, raw)
	}
	return color.NRGBA{R: nc.R, G: nc.G, B: nc.B, A: nc.A}, nil
}

// FormatColor renders c the way a color input reports it.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
