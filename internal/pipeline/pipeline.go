// Package pipeline turns a benchmark CSV file into surface plot images,
// an interactive HTML page and best configuration reports.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	plot "github.com/vdobler/surfplot"
	"github.com/vdobler/surfplot/geom"
	"github.com/vdobler/surfplot/internal/config"
)

// Run executes the whole pipeline described by cfg. Reports are
// written to stdout, progress is logged to the standard logrus logger.
func Run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	return RunWithLogger(ctx, cfg, stdout, logrus.StandardLogger())
}

// RunWithLogger is Run with an explicit logger.
func RunWithLogger(ctx context.Context, cfg *config.Config, stdout io.Writer, log logrus.FieldLogger) error {
	log = log.WithField("input", cfg.Input)

	df, err := plot.LoadCSV(cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"records": df.N,
		"fields":  len(df.Columns),
	}).Debug("loaded data")

	if df.N == 0 && len(df.Columns) == 0 {
		return &plot.EmptyDatasetError{Dataset: df.Name}
	}
	if err := plot.CheckSchema(df, cfg.Fields()...); err != nil {
		return err
	}
	if df.N == 0 {
		return &plot.EmptyDatasetError{Dataset: df.Name}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	camera := geom.Camera{Azimuth: cfg.Azimuth, Elevation: cfg.Elevation}
	width, height := vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch
	figures := make([]*plot.Figure, 0, len(cfg.Surfaces))
	for _, s := range cfg.Surfaces {
		if err := ctx.Err(); err != nil {
			return err
		}
		fig, err := plot.Build(df, plot.SurfaceRequest{
			Value:     s.Value,
			Partition: cfg.Partition,
			Axis1:     cfg.Axis1,
			Axis2:     cfg.Axis2,
			Title:     s.Title,
			Alpha:     cfg.Alpha,
			Camera:    &camera,
			Log:       log,
		})
		if err != nil {
			return fmt.Errorf("building surface plot of %s: %w", s.Value, err)
		}
		figures = append(figures, fig)

		for _, format := range cfg.Formats {
			file := filepath.Join(cfg.OutputDir, plot.Slug(s.Value)+"."+format)
			if err := fig.Save(width, height, file); err != nil {
				return fmt.Errorf("saving %s: %w", file, err)
			}
			log.WithFields(logrus.Fields{
				"value":  s.Value,
				"file":   file,
				"series": len(fig.Series()),
			}).Info("wrote surface plot")
		}
	}

	if cfg.HTML != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		file := filepath.Join(cfg.OutputDir, cfg.HTML)
		if err := writeCharts(file, figures); err != nil {
			return fmt.Errorf("writing %s: %w", file, err)
		}
		log.WithField("file", file).Info("wrote interactive charts")
	}

	for _, r := range cfg.Reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		report, err := plot.BestReport(df, r.Group, r.Value)
		if err != nil {
			return fmt.Errorf("best %s per %s: %w", r.Value, r.Group, err)
		}
		if err := plot.WriteReport(stdout, report, r.Columns); err != nil {
			return err
		}
	}
	return nil
}

func writeCharts(file string, figures []*plot.Figure) (err error) {
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); err == nil {
			err = e
		}
	}()
	return plot.RenderCharts(out, "Surface plots", figures...)
}
