package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	plot "github.com/vdobler/surfplot"
	"github.com/vdobler/surfplot/internal/config"
)

const gridSearch = `CLIENT_THREADS,PAGE_SIZE,RING_SIZE,AverageRate(it/s),AverageGbps
1,4096,8,100,1.0
1,4096,16,120,2.0
1,8192,8,110,1.5
1,8192,16,130,2.5
2,4096,8,200,3.0
2,4096,16,240,4.0
2,8192,8,210,3.5
2,8192,16,250,3.8
`

func quiet() logrus.FieldLogger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func setup(t *testing.T, content string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "grid.csv")
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	cfg.Input = input
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.Width, cfg.Height = 4, 3
	return cfg
}

func TestRun(t *testing.T) {
	cfg := setup(t, gridSearch)
	var stdout bytes.Buffer
	require.NoError(t, RunWithLogger(context.Background(), cfg, &stdout, quiet()))

	for _, name := range []string{"averagerate_it_s.png", "averagegbps.png"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err, name)
		require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), name)
	}

	html, err := os.ReadFile(filepath.Join(cfg.OutputDir, "surfaces.html"))
	require.NoError(t, err)
	require.Contains(t, string(html), "surface")
	require.Contains(t, string(html), "Surface Plot for Average Gbps")

	out := stdout.String()
	require.Contains(t, out, "Best AverageGbps per CLIENT_THREADS")
	require.Contains(t, out, "Best AverageGbps per PAGE_SIZE")
	require.Contains(t, out, "3.8")
}

func TestRunNoHTML(t *testing.T) {
	cfg := setup(t, gridSearch)
	cfg.HTML = ""
	cfg.Formats = []string{"svg"}
	cfg.Reports = nil
	var stdout bytes.Buffer
	require.NoError(t, RunWithLogger(context.Background(), cfg, &stdout, quiet()))

	_, err := os.Stat(filepath.Join(cfg.OutputDir, "surfaces.html"))
	require.True(t, errors.Is(err, os.ErrNotExist))
	svg, err := os.ReadFile(filepath.Join(cfg.OutputDir, "averagegbps.svg"))
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")
	require.Empty(t, stdout.String())
}

func TestRunMissingFile(t *testing.T) {
	cfg := setup(t, gridSearch)
	cfg.Input = filepath.Join(t.TempDir(), "missing.csv")

	err := RunWithLogger(context.Background(), cfg, io.Discard, quiet())
	var notFound *plot.FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, cfg.Input, notFound.Path)
}

func TestRunMissingColumn(t *testing.T) {
	content := strings.Replace(gridSearch, "RING_SIZE", "RINGS", 1)
	cfg := setup(t, content)

	err := RunWithLogger(context.Background(), cfg, io.Discard, quiet())
	var schema *plot.SchemaError
	require.ErrorAs(t, err, &schema)
	require.Equal(t, []string{"RING_SIZE"}, schema.Missing)
	require.Contains(t, err.Error(), "RING_SIZE")

	_, statErr := os.Stat(cfg.OutputDir)
	require.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRunEmpty(t *testing.T) {
	header := strings.SplitN(gridSearch, "\n", 2)[0] + "\n"
	cfg := setup(t, header)

	err := RunWithLogger(context.Background(), cfg, io.Discard, quiet())
	var empty *plot.EmptyDatasetError
	require.ErrorAs(t, err, &empty)
}

func TestRunZeroByteFile(t *testing.T) {
	cfg := setup(t, "")

	err := RunWithLogger(context.Background(), cfg, io.Discard, quiet())
	var empty *plot.EmptyDatasetError
	require.ErrorAs(t, err, &empty)
	var schema *plot.SchemaError
	require.False(t, errors.As(err, &schema))
}

func TestRunAllFormats(t *testing.T) {
	cfg := setup(t, gridSearch)
	cfg.Formats = config.ImageFormats()
	cfg.Surfaces = cfg.Surfaces[1:]
	cfg.HTML = ""
	cfg.Reports = nil
	require.NoError(t, RunWithLogger(context.Background(), cfg, io.Discard, quiet()))

	for _, format := range cfg.Formats {
		info, err := os.Stat(filepath.Join(cfg.OutputDir, "averagegbps."+format))
		require.NoError(t, err, format)
		require.NotZero(t, info.Size(), format)
	}
}

func TestRunCanceled(t *testing.T) {
	cfg := setup(t, gridSearch)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunWithLogger(ctx, cfg, io.Discard, quiet())
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(filepath.Join(cfg.OutputDir, "averagegbps.png"))
	require.True(t, errors.Is(statErr, os.ErrNotExist))
}
