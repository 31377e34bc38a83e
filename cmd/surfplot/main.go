// Surfplot draws one 3D surface plot per configured value field of a
// benchmark grid search and prints the best configurations.
//
// Usage:
//
//	surfplot [flags] [input.csv]
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vdobler/surfplot/internal/config"
	"github.com/vdobler/surfplot/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command line args and returns the exit status.
func run(args []string, stdout io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("surfplot failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "surfplot [input.csv]",
		Short: "Draw surface plots of a benchmark grid search",
		Long: `Surfplot reads a CSV file of benchmark results, averages each value
field over the grid spanned by two parameter fields and draws one
surface per distinct value of a partition field. The best
configurations per group are printed as tables.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			if err := setupLogging(cfg.LogLevel); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return pipeline.Run(ctx, cfg, cmd.OutOrStdout())
		},
	}
	cmd.SetContext(context.Background())

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String("output-dir", ".", "directory for the written files")
	flags.StringSlice("formats", []string{"png"}, "image formats (png, svg, pdf, eps, jpg, tif)")
	flags.String("html", "surfaces.html", "interactive chart page, empty disables it")
	flags.Float64("width", 14, "image width in inches")
	flags.Float64("height", 8, "image height in inches")
	flags.String("partition", "CLIENT_THREADS", "field with one surface per distinct value")
	flags.String("axis1", "PAGE_SIZE", "field drawn on the y axis")
	flags.String("axis2", "RING_SIZE", "field drawn on the x axis")
	flags.Float64("alpha", 0.5, "opacity of the surfaces")
	flags.Float64("azimuth", -60, "azimuth of the view in degrees")
	flags.Float64("elevation", 30, "elevation of the view in degrees")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	bindFlags(v, cmd)

	return cmd
}

// bindFlags makes every flag override the config key of the same name
// with dashes replaced by underscores.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for _, name := range []string{
		"output-dir", "formats", "html", "width", "height", "partition",
		"axis1", "axis2", "alpha", "azimuth", "elevation", "log-level",
	} {
		if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), cmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
