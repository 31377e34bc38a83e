package plot

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vdobler/surfplot/geom"
)

type Plot struct {
	// Data is the data to draw.
	Data *DataFrame

	// Mapping describes how fileds in data are mapped to Aesthetics
	Aes AesMapping

	// Layers contains all the layers displayed in the plot.
	Layers []*Layer

	Scales map[string]*Scale

	Theme Theme

	Title string

	// Camera determines the view on the 3D axes box.
	Camera geom.Camera

	// Log receives warnings. A nil Log discards them.
	Log logrus.FieldLogger
}

// Layer represents one layer of data.
type Layer struct {
	Plot *Plot
	Name string

	// A nil Data will use the Data from the plot this Layer belongs to.
	Data        *DataFrame
	DataMapping AesMapping

	// Stat is the statistical transformation used in this layer.
	Stat Stat

	// Geom is the geom to use for this layer
	Geom Geom

	Fundamentals []Fundamental
	Grobs        []Grob
}

// NewPlot sets up a plot of data with the given aesthetic mapping and
// the default theme and camera.
func NewPlot(data *DataFrame, aes AesMapping) *Plot {
	return &Plot{
		Data:   data,
		Aes:    aes,
		Scales: make(map[string]*Scale),
		Theme:  DefaultTheme,
		Camera: geom.DefaultCamera,
	}
}

func (p *Plot) logger() logrus.FieldLogger {
	if p.Log == nil {
		l := logrus.New()
		l.Out = io.Discard
		p.Log = l
	}
	return p.Log
}

func (p *Plot) Warnf(f string, args ...interface{}) {
	p.logger().WithField("plot", p.Title).Warnf(strings.TrimSuffix(f, "\n"), args...)
}

// PrepareData is the first step in generating a plot.
// After preparing the data frame the following holds
//   - Layer has a own data frame (a copy of plots data frame)
//   - This data frame has no unused (aka not mapped to aesthetics)
//     columns
//   - The columns name are the aestectics (e.g. x, y, z, color)
//   - The discrete scales are pre-trained.
func (p *Plot) PrepareData() {
	for _, layer := range p.Layers {
		data := layer.Data
		if data == nil {
			data = p.Data
		}
		aes := MergeAes(layer.DataMapping, p.Aes)

		result := NewDataFrame(data.Name, data.Pool)
		result.N = data.N
		aesthetics := aes.Used()
		for _, a := range aesthetics {
			field := aes[a]
			if !data.Has(field) {
				p.Warnf("Layer %s: no field %s for aesthetic %s", layer.Name, field, a)
				continue
			}
			result.Add(a, data.Columns[field].Copy())
		}
		layer.Data = result

		p.PrepareScales(layer.Data, aes)
	}
}

// PrepareScales makes sure plot contains all scales needed for the
// aesthetics in aes and pre-trains the discrete ones. Continous scales
// are trained on the output of the statistics.
func (p *Plot) PrepareScales(data *DataFrame, aes AesMapping) {
	scaleable := map[string]bool{
		"x":     true,
		"y":     true,
		"z":     true,
		"color": true,
	}

	for a := range aes {
		if !scaleable[a] || !data.Has(a) {
			continue
		}

		scale, ok := p.Scales[a]
		if !ok {
			scale = NewScale(a, data.Columns[a])
			scale.Title = aes[a]
			p.Scales[a] = scale
		}
		if scale.Discrete {
			scale.Train(data.Columns[a])
		}
	}
}

// ComputeStatistics computes the statistical transform. Might be the identity.
func (layer *Layer) ComputeStatistics() {
	if layer.Stat == nil {
		return // The identity statistical transformation.
	}
	info := layer.Stat.Info()

	// Make sure all needed aesthetics (columns) are present in
	// our data frame.
	for _, aes := range info.NeededAes {
		if !layer.Data.Has(aes) {
			layer.Plot.Warnf("Stat %s in Layer %s needs column %s",
				layer.Stat.Name(), layer.Name, aes)
			layer.Geom = nil // Don't draw anything.
			return
		}
	}

	usedByStat := NewStringSetFrom(info.NeededAes)
	for _, a := range info.OptionalAes {
		usedByStat.Add(a)
	}
	fields := NewStringSetFrom(layer.Data.FieldNames())
	fields.Remove(usedByStat)

	if len(fields) == 0 {
		layer.Data = layer.Stat.Apply(layer.Data, layer.Plot)
		return
	}

	// Excess fields must be discrete, the stat is applied per level.
	for _, f := range fields.Elements() {
		discrete := layer.Data.Columns[f].Discrete()
		if s, ok := layer.Plot.Scales[f]; ok {
			discrete = s.Discrete
		}
		if !discrete {
			layer.Plot.Warnf("Stat %s in Layer %s cannot cope with continous excess fields %s",
				layer.Stat.Name(), layer.Name, f)
			layer.Geom = nil
			return
		}
	}
	layer.Data = layer.groupApply(layer.Data, fields.Elements())
}

// groupApply applies the layer's stat to each combination of levels of
// the given fields and stacks the results. The grouping fields are
// added back as constant columns.
func (layer *Layer) groupApply(data *DataFrame, fields []string) *DataFrame {
	if len(fields) == 0 {
		return layer.Stat.Apply(data, layer.Plot)
	}

	ef := fields[0]
	f := data.Columns[ef]
	var result *DataFrame
	for _, level := range Levels(data, ef).Elements() {
		df := Filter(data, ef, level)
		df.Name = fmt.Sprintf("%s=%s", layer.Plot.fieldName(ef), f.String(level))
		df.Delete(ef)
		res := layer.groupApply(df, fields[1:])
		if res == nil || res.N == 0 {
			layer.Plot.Warnf("Stat %s in Layer %s: no data for %s",
				layer.Stat.Name(), layer.Name, df.Name)
			continue
		}
		res.Add(ef, f.Const(level, res.N))
		if result == nil {
			result = res
		} else {
			result.Append(res)
		}
	}
	return result
}

// fieldName returns the name of the data field mapped to aes.
func (p *Plot) fieldName(aes string) string {
	if f, ok := p.Aes[aes]; ok && f != "" {
		return f
	}
	return aes
}

func (p *Plot) ComputeStatistics() {
	for _, layer := range p.Layers {
		layer.ComputeStatistics()
	}
}

// ConstructGeoms sets up the geoms so that they can be rendered: the
// needed slots are checked, the data is split into fundamental geoms and
// the position scales are trained.
func (p *Plot) ConstructGeoms() {
	for _, layer := range p.Layers {
		if layer.Geom == nil {
			p.Warnf("No Geom specified in layer %s.", layer.Name)
			continue
		}
		if layer.Data == nil || layer.Data.N == 0 {
			p.Warnf("No data in layer %s.", layer.Name)
			layer.Geom = nil
			continue
		}

		// Make sure all needed slots are present in the data frame
		slots := NewStringSetFrom(layer.Geom.NeededSlots())
		slots.Remove(NewStringSetFrom(layer.Data.FieldNames()))
		if len(slots) > 0 {
			p.Warnf("Missing slots in geom %s in layer %s: %v",
				layer.Geom.Name(), layer.Name, slots.Elements())
			layer.Geom = nil
			continue
		}

		layer.Fundamentals = layer.Geom.Construct(layer.Data, p)
	}
}

// RetrainScales finishes the scales after all geoms have trained them.
func (p *Plot) RetrainScales() {
	for _, scale := range p.Scales {
		scale.Prepare()
	}
}

func (p *Plot) RenderGeoms() {
	for _, layer := range p.Layers {
		if layer.Geom == nil {
			continue
		}
		aes := layer.Geom.Aes(p)
		layer.Grobs = layer.Grobs[:0]
		for _, f := range layer.Fundamentals {
			layer.Grobs = append(layer.Grobs, f.Geom.Render(p, f.Data, aes)...)
		}
	}
}

// Compute runs all steps of unfacetted plotting.
func (p *Plot) Compute() {
	// Make sure all layers know their parent plot.
	for i := range p.Layers {
		p.Layers[i].Plot = p
	}

	// Prepare data: map aestetics, add scales, clean data frame.
	// Discrete scales are pre-trained.
	p.PrepareData()

	// If a layer has a statistical transform: Apply this transformation
	// to the data frame of this layer.
	p.ComputeStatistics()

	// Construct geoms and train the position scales.
	p.ConstructGeoms()

	// Prepare scales.
	p.RetrainScales()

	// Render Geoms to Grobs using scales.
	p.RenderGeoms()
}

// -------------------------------------------------------------------------
// Building surface plots

// SurfaceRequest describes a surface plot of Value over the grid spanned
// by Axis2 (x axis) and Axis1 (y axis) with one surface per distinct
// value of Partition.
type SurfaceRequest struct {
	Value     string
	Partition string
	Axis1     string
	Axis2     string
	Title     string

	// Alpha is the opacity of the surfaces, zero means 0.5.
	Alpha float64

	// Camera is the view on the axes box, nil means geom.DefaultCamera.
	Camera *geom.Camera

	Log logrus.FieldLogger
}

// Build constructs the surface plot described by req from df.
func Build(df *DataFrame, req SurfaceRequest) (*Figure, error) {
	if df == nil || df.N == 0 {
		name := ""
		if df != nil {
			name = df.Name
		}
		return nil, &EmptyDatasetError{Dataset: name}
	}
	fields := []string{req.Value, req.Partition, req.Axis1, req.Axis2}
	for _, f := range fields {
		if !df.Has(f) {
			return nil, &FieldNotFoundError{Dataset: df.Name, Field: f}
		}
	}
	var nonNumeric []string
	for _, f := range fields {
		if df.Columns[f].Type != Float && !contains(nonNumeric, f) {
			nonNumeric = append(nonNumeric, f)
		}
	}
	if len(nonNumeric) > 0 {
		return nil, &SchemaError{Dataset: df.Name, NonNumeric: nonNumeric}
	}

	alpha := req.Alpha
	if alpha == 0 {
		alpha = 0.5
	}

	p := NewPlot(df, AesMapping{
		"x":     req.Axis2,
		"y":     req.Axis1,
		"z":     req.Value,
		"color": req.Partition,
	})
	p.Title = req.Title
	p.Log = req.Log
	if req.Camera != nil {
		p.Camera = *req.Camera
	}
	p.Layers = []*Layer{{
		Name: "surfaces",
		Stat: StatGrid{},
		Geom: GeomSurface{
			Style: AesMapping{"alpha": strconv.FormatFloat(alpha, 'g', -1, 64)},
		},
	}}
	p.Compute()

	return &Figure{Plot: p}, nil
}

func contains(s []string, t string) bool {
	for _, ss := range s {
		if t == ss {
			return true
		}
	}
	return false
}

// AesMapping controlls the mapping of fields of a data frame to aesthetics:
// the key is the aesthetic, the value the field name.
type AesMapping map[string]string

// Used returns the sorted aesthetics of m.
func (m AesMapping) Used() []string {
	aes := make([]string, 0, len(m))
	for a := range m {
		aes = append(aes, a)
	}
	sort.Strings(aes)
	return aes
}

// Merge merges set values in all the ams into m and returns the merged mapping.
func MergeAes(ams ...AesMapping) AesMapping {
	merged := MergeStyles(ams...)
	for k, v := range merged {
		if v == "" {
			delete(merged, k)
		}
	}
	return merged
}

