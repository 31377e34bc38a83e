package plot

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Chart returns the figure as an interactive WebGL surface chart with
// one series per partition. Absent grid cells are holes.
func (f *Figure) Chart() *charts.Surface3D {
	xl, yl, zl := f.Labels()
	chart := charts.NewSurface3D()

	series := f.Series()
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}

	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: f.Title(),
			Width:     "1200px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{Title: f.Title()}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Data: names, Top: "30"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: xl, Type: "value", Show: opts.Bool(true)}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: yl, Type: "value", Show: opts.Bool(true)}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: zl, Type: "value", Show: opts.Bool(true)}),
		charts.WithGrid3DOpts(opts.Grid3D{Show: opts.Bool(true)}),
	)

	alpha := float32(String2Float(f.surfaceStyle()["alpha"], 0, 1))
	for _, s := range series {
		style := opts.ItemStyle{Opacity: opts.Float(alpha)}
		if s.Color != nil {
			style.Color = Hex(s.Color)
		}
		chart.AddSeries(s.Name, surfaceData(s.Surface),
			charts.WithItemStyleOpts(style),
			// AddSeries of Surface3D registers the series as scatter3D.
			charts.WithSeriesOpts(func(ss *charts.SingleSeries) {
				ss.Type = types.ChartSurface3D
				ss.Shading = "color"
			}),
		)
	}
	return chart
}

// surfaceStyle is the merged style of the surface geoms of the figure.
func (f *Figure) surfaceStyle() AesMapping {
	for _, layer := range f.Plot.Layers {
		if layer.Geom != nil {
			return layer.Geom.Aes(f.Plot)
		}
	}
	return MergeStyles(f.Plot.Theme.SurfaceStyle, DefaultTheme.SurfaceStyle)
}

// surfaceData lists the mesh points of s row by row as [x, y, z]
// triples. Absent cells get "-" as z value.
func surfaceData(s *Surface) []opts.Chart3DData {
	data := make([]opts.Chart3DData, 0, len(s.Rows)*len(s.Cols))
	for r := range s.Z {
		for c := range s.Z[r] {
			var z interface{} = s.Z[r][c]
			if math.IsNaN(s.Z[r][c]) {
				z = "-"
			}
			data = append(data, opts.Chart3DData{
				Value: []interface{}{s.X[r][c], s.Y[r][c], z},
			})
		}
	}
	return data
}

// RenderCharts writes the interactive charts of all figures to w as a
// single HTML page.
func RenderCharts(w io.Writer, title string, figures ...*Figure) error {
	page := components.NewPage()
	page.SetPageTitle(title)
	for _, f := range figures {
		page.AddCharts(f.Chart())
	}
	return page.Render(w)
}
