// Package config collects the settings of the surfplot command from
// defaults, an optional YAML file, SURFPLOT_* environment variables and
// command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	plot "github.com/vdobler/surfplot"
)

// EnvPrefix is the prefix of environment variables overriding settings,
// e.g. SURFPLOT_OUTPUT_DIR.
const EnvPrefix = "SURFPLOT"

// Surface describes one surface plot: the field plotted on the z axis
// and the title of the plot.
type Surface struct {
	Value string `mapstructure:"value"`
	Title string `mapstructure:"title"`
}

// Report describes one best configuration table.
type Report struct {
	Group   string   `mapstructure:"group"`
	Value   string   `mapstructure:"value"`
	Columns []string `mapstructure:"columns"`
}

type Config struct {
	Input     string   `mapstructure:"input"`
	OutputDir string   `mapstructure:"output_dir"`
	Formats   []string `mapstructure:"formats"`
	HTML      string   `mapstructure:"html"`

	// Width and Height of the images in inches.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	Partition string `mapstructure:"partition"`
	Axis1     string `mapstructure:"axis1"`
	Axis2     string `mapstructure:"axis2"`

	Alpha     float64 `mapstructure:"alpha"`
	Azimuth   float64 `mapstructure:"azimuth"`
	Elevation float64 `mapstructure:"elevation"`

	Surfaces []Surface `mapstructure:"surfaces"`
	Reports  []Report  `mapstructure:"reports"`

	LogLevel string `mapstructure:"log_level"`
}

var imageFormats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps", "tex"}

// ImageFormats lists the accepted values of formats.
func ImageFormats() []string {
	return append([]string(nil), imageFormats...)
}

func knownFormat(f string) bool {
	for _, known := range imageFormats {
		if f == known {
			return true
		}
	}
	return false
}

// SetDefaults registers the default of every key in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "large_grid_search.csv")
	v.SetDefault("output_dir", ".")
	v.SetDefault("formats", []string{"png"})
	v.SetDefault("html", "surfaces.html")
	v.SetDefault("width", 14.0)
	v.SetDefault("height", 8.0)
	v.SetDefault("partition", "CLIENT_THREADS")
	v.SetDefault("axis1", "PAGE_SIZE")
	v.SetDefault("axis2", "RING_SIZE")
	v.SetDefault("alpha", 0.5)
	v.SetDefault("azimuth", -60.0)
	v.SetDefault("elevation", 30.0)
	v.SetDefault("surfaces", []map[string]interface{}{
		{"value": "AverageRate(it/s)", "title": "Surface Plot for Average Rate"},
		{"value": "AverageGbps", "title": "Surface Plot for Average Gbps"},
	})
	v.SetDefault("reports", []map[string]interface{}{
		{"group": "CLIENT_THREADS", "value": "AverageGbps"},
		{"group": "PAGE_SIZE", "value": "AverageGbps"},
	})
	v.SetDefault("log_level", "info")
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and decodes the result.
// The returned config is validated.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	for i, f := range cfg.Formats {
		cfg.Formats[i] = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(f), "."))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that c describes something which can be plotted.
func (c *Config) Validate() error {
	var errs []error
	for _, kv := range [][2]string{
		{"input", c.Input},
		{"partition", c.Partition},
		{"axis1", c.Axis1},
		{"axis2", c.Axis2},
	} {
		if strings.TrimSpace(kv[1]) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", kv[0]))
		}
	}
	if len(c.Surfaces) == 0 {
		errs = append(errs, errors.New("no surfaces configured"))
	}
	files := make(map[string]string)
	for i, s := range c.Surfaces {
		if strings.TrimSpace(s.Value) == "" {
			errs = append(errs, fmt.Errorf("surfaces[%d]: value must not be empty", i))
			continue
		}
		name := plot.Slug(s.Value)
		if name == "" {
			errs = append(errs, fmt.Errorf("surfaces[%d]: value %q gives no file name", i, s.Value))
			continue
		}
		if prev, ok := files[name]; ok {
			errs = append(errs, fmt.Errorf("surfaces[%d]: %q and %q both write %s", i, prev, s.Value, name))
			continue
		}
		files[name] = s.Value
	}
	for i, r := range c.Reports {
		if strings.TrimSpace(r.Group) == "" || strings.TrimSpace(r.Value) == "" {
			errs = append(errs, fmt.Errorf("reports[%d]: group and value must not be empty", i))
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("image size %gx%g must be positive", c.Width, c.Height))
	}
	if !(c.Alpha > 0 && c.Alpha <= 1) {
		errs = append(errs, fmt.Errorf("alpha %g not in (0,1]", c.Alpha))
	}
	for _, f := range c.Formats {
		if !knownFormat(f) {
			errs = append(errs, fmt.Errorf("unsupported image format %q", f))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Fields returns the data fields the configured plots and reports
// need, without duplicates.
func (c *Config) Fields() []string {
	var fields []string
	seen := map[string]bool{}
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	add(c.Partition)
	add(c.Axis1)
	add(c.Axis2)
	for _, s := range c.Surfaces {
		add(s.Value)
	}
	for _, r := range c.Reports {
		add(r.Group)
		add(r.Value)
	}
	return fields
}
