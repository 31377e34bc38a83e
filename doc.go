// Plot renders 3D surface plots of benchmark grid searches in the style
// of R's ggplot2.
//
// # Data Representation: Data Frames
//
// A DataFrame is a collection of named columns of equal length. Each
// column is a Field whose values are stored as float64:
//
//	Float     continous data, NaN marks a missing value
//	String    discrete data, the value is an index into a StringPool
//
// Data frames are usually read from CSV files with a header row:
//
//	CLIENT_THREADS,PAGE_SIZE,RING_SIZE,AverageRate(it/s),AverageGbps
//	1,4096,8,120331.5,3.94
//
// A column where every non-empty cell parses as a number is a Float
// column, all other columns are String columns.
//
// # Building a Plot
//
// A surface plot is requested with a SurfaceRequest naming four fields:
//
//	Partition   the categorical field; one surface per distinct value
//	Axis1       drawn on the y-axis, the rows of each grid
//	Axis2       drawn on the x-axis, the columns of each grid
//	Value       drawn on the z-axis, averaged per grid cell
//
// Build runs the usual steps: prepare the data, compute the statistics
// (StatGrid), construct the geoms (GeomSurface), train the scales and
// render the geoms to grobs. The result is a Figure which can be written
// in every format gonum/plot supports (PNG, JPEG, TIFF, SVG, PDF, EPS
// and TeX) or turned into an interactive HTML chart.
//
// # Missing Values
//
// Grid cells without any contributing record are absent, not zero.
// Facets touching an absent cell are not drawn which leaves holes in
// the surface.
package plot
