package plot

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/vg"
)

// String2Float parses s as a float and restricts it to [low,high].
// A trailing % divides by 100. Unparsable values yield the midpoint.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return (low + high) / 2
	}
	return clip(value/factor, low, high)
}

// SetAlpha sets alpha to a in color c. An alpha already present in c is
// replaced.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(clip(a, 0, 1)*0xff + 0.5)
	return n
}

// Shade darkens c by factor f in [0,1] keeping its alpha.
func Shade(c color.Color, f float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	f = clip(f, 0, 1)
	n.R = uint8(float64(n.R)*f + 0.5)
	n.G = uint8(float64(n.G)*f + 0.5)
	n.B = uint8(float64(n.B)*f + 0.5)
	return n
}

// Hex formats the color part of c as #rrggbb.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}.Hex()
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt for a line of the given width.
func (lt LineType) Dashes(width vg.Length) []vg.Length {
	w := width
	if w < 1 {
		w = 1
	}
	switch lt {
	case DashedLine:
		return []vg.Length{4 * w, 4 * w}
	case DottedLine:
		return []vg.Length{w, 3 * w}
	case DotDashLine:
		return []vg.Length{w, 3 * w, 4 * w, 3 * w}
	case LongdashLine:
		return []vg.Length{8 * w, 4 * w}
	case TwodashLine:
		return []vg.Length{6 * w, 3 * w, 2 * w, 3 * w}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     color.RGBA{0xff, 0x00, 0x00, 0xff},
	"green":   color.RGBA{0x00, 0xff, 0x00, 0xff},
	"blue":    color.RGBA{0x00, 0x00, 0xff, 0xff},
	"cyan":    color.RGBA{0x00, 0xff, 0xff, 0xff},
	"magenta": color.RGBA{0xff, 0x00, 0xff, 0xff},
	"yellow":  color.RGBA{0xff, 0xff, 0x00, 0xff},
	"white":   color.RGBA{0xff, 0xff, 0xff, 0xff},
	"gray20":  color.RGBA{0x33, 0x33, 0x33, 0xff},
	"gray40":  color.RGBA{0x66, 0x66, 0x66, 0xff},
	"gray":    color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  color.RGBA{0x99, 0x99, 0x99, 0xff},
	"gray80":  color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	"gray95":  color.RGBA{0xf2, 0xf2, 0xf2, 0xff},
	"black":   color.RGBA{0x00, 0x00, 0x00, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" and the names in
// BuiltinColors.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		c, err := colorful.Hex(s[:7])
		if err == nil {
			r, g, b := c.RGB255()
			a := uint64(0xff)
			if len(s) == 9 {
				if a, err = strconv.ParseUint(s[7:9], 16, 8); err != nil {
					a = 0xff
				}
			}
			return color.NRGBA{r, g, b, uint8(a)}
		}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
