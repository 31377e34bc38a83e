package plot

import (
	"image/color"
	"math"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
)

// Scale provides the position scales x, y and z of the 3D axes box as
// well as the discrete color scale of the partitions.
type Scale struct {
	Discrete bool
	Type     string // x, y, z or color
	Title    string // name of the field mapped to this scale

	// Expand widens the domain of a continous scale by this fraction
	// on both sides.
	Expand float64

	DomainMin    float64
	DomainMax    float64
	DomainLevels FloatSet

	// ColorMap maps [0,1] to colors on color scales.
	ColorMap palette.ColorMap

	// Also set up after training.
	Breaks []float64
	Labels []string

	// Set up after Prepare.
	Color func(x float64) color.Color // discrete scales only
	Pos   func(x float64) float64     // x, y, z and color. In [0,1]

	field Field // for formating labels
}

// NewScale sets up a new scale for the given aesthetic, suitable for
// the given data in field. The color aesthetic always gets a discrete
// scale using the viridis color map.
func NewScale(aesthetic string, field Field) *Scale {
	scale := Scale{}
	scale.Discrete = field.Discrete() || aesthetic == "color"
	scale.Type = aesthetic
	scale.DomainMin = math.Inf(+1)
	scale.DomainMax = math.Inf(-1)
	scale.DomainLevels = NewFloatSet()
	scale.field = Field{Type: field.Type, Pool: field.Pool}
	if aesthetic == "color" {
		scale.ColorMap = NewViridis()
	}
	return &scale
}

// Train updates the domain ranges of s according to the data found in f.
func (s *Scale) Train(f Field) {
	if s.Discrete {
		s.DomainLevels.Join(f.Levels())
	}
	min, max, mini, maxi := f.MinMax()
	if mini != -1 {
		s.TrainByValue(min)
	}
	if maxi != -1 {
		s.TrainByValue(max)
	}
}

// TrainByValue extends the continous domain of s to include xs.
func (s *Scale) TrainByValue(xs ...float64) {
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if x < s.DomainMin {
			s.DomainMin = x
		}
		if x > s.DomainMax {
			s.DomainMax = x
		}
	}
}

// Prepare initialises the remaining fields after training.
func (s *Scale) Prepare() {
	if s.Discrete {
		s.PrepareDiscrete()
	} else {
		s.PrepareContinous()
	}
}

// PrepareDiscrete places the sorted levels evenly on [0,1] and takes
// one color per level from the palette of the color map.
func (s *Scale) PrepareDiscrete() {
	levels := s.DomainLevels.Elements()
	rank := s.DomainLevels.Index()
	n := len(levels)

	s.Breaks = levels
	s.Labels = make([]string, n)
	for i, l := range levels {
		s.Labels[i] = s.field.String(l)
	}

	s.Pos = func(x float64) float64 {
		r, ok := rank[x]
		if !ok {
			return math.NaN()
		}
		return Position(r, n)
	}
	cmap := s.ColorMap
	if cmap == nil {
		cmap = NewViridis()
	}
	colors := cmap.Palette(n).Colors()
	s.Color = func(x float64) color.Color {
		r, ok := rank[x]
		if !ok {
			return BuiltinColors["gray"]
		}
		return colors[r]
	}
}

// PrepareContinous sets up a linear mapping of the (expanded) domain to
// [0,1] with tick breaks inside the domain.
func (s *Scale) PrepareContinous() {
	min, max := s.DomainMin, s.DomainMax
	if min > max { // untrained
		min, max = 0, 1
	}
	if min == max {
		d := math.Abs(min) * 0.1
		if d == 0 {
			d = 0.5
		}
		min, max = min-d, max+d
	}
	expand := (max - min) * s.Expand
	min, max = min-expand, max+expand
	fullRange := max - min

	s.Breaks = s.Breaks[:0]
	s.Labels = s.Labels[:0]
	for _, tick := range (gplot.DefaultTicks{}).Ticks(min, max) {
		if tick.Label == "" || tick.Value < min || tick.Value > max {
			continue
		}
		s.Breaks = append(s.Breaks, tick.Value)
		s.Labels = append(s.Labels, tick.Label)
	}

	s.Pos = func(x float64) float64 {
		return (x - min) / fullRange
	}
}
