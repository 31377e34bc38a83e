package plot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// viridisControls are equally spaced samples of the viridis color map.
var viridisControls = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// Viridis is a perceptually uniform sequential color map running from
// dark purple to yellow. Colors between the control points are
// interpolated in CIE L*a*b* space.
type Viridis struct {
	controls []colorful.Color
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*Viridis)(nil)

// NewViridis returns a viridis color map spanning [0,1].
func NewViridis() *Viridis {
	v := &Viridis{max: 1, alpha: 1}
	for _, h := range viridisControls {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		v.controls = append(v.controls, c)
	}
	return v
}

// At implements the palette.ColorMap interface.
func (v *Viridis) At(x float64) (color.Color, error) {
	switch {
	case v.max == v.min:
		return nil, fmt.Errorf("viridis: color map max == min == %g", v.max)
	case v.min > v.max:
		return nil, fmt.Errorf("viridis: color map max (%g) < min (%g)", v.max, v.min)
	case math.IsNaN(x):
		return nil, palette.ErrNaN
	case x < v.min:
		return nil, palette.ErrUnderflow
	case x > v.max:
		return nil, palette.ErrOverflow
	}

	t := (x - v.min) / (v.max - v.min) * float64(len(v.controls)-1)
	i := int(math.Floor(t))
	if i >= len(v.controls)-1 {
		return v.nrgba(v.controls[len(v.controls)-1]), nil
	}
	c := v.controls[i].BlendLab(v.controls[i+1], t-float64(i)).Clamped()
	return v.nrgba(c), nil
}

func (v *Viridis) nrgba(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(v.alpha * 255))}
}

func (v *Viridis) Max() float64     { return v.max }
func (v *Viridis) SetMax(x float64) { v.max = x }
func (v *Viridis) Min() float64     { return v.min }
func (v *Viridis) SetMin(x float64) { v.min = x }
func (v *Viridis) Alpha() float64   { return v.alpha }

// SetAlpha sets the opacity of the returned colors. It panics if alpha
// is outside [0,1].
func (v *Viridis) SetAlpha(alpha float64) {
	if alpha < 0 || alpha > 1 {
		panic(fmt.Errorf("viridis: invalid alpha: %g", alpha))
	}
	v.alpha = alpha
}

// Palette returns n colors evenly spaced over [Min,Max].
func (v *Viridis) Palette(n int) palette.Palette {
	colors := make([]color.Color, n)
	for i := range colors {
		x := v.min
		if n > 1 {
			x = v.min + (v.max-v.min)*float64(i)/float64(n-1)
		}
		c, err := v.At(x)
		if err != nil {
			panic(err)
		}
		colors[i] = c
	}
	return colorList(colors)
}

type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }

// Position returns the place of rank i among n ordered items on a color
// map spanning [0,1]: i/(n-1), or 0 if there is only one item.
func Position(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
