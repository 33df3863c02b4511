package chart

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"kastelo.dev/ina219"
)

// Figure size.
const (
	width  = 10 * vg.Inch
	height = 6 * vg.Inch
)

// A Viewer presents a finished chart.
type Viewer interface {
	Show(p *plot.Plot) error
}

// SystemViewer opens the chart in the platform image viewer and waits for
// the viewer to exit.
type SystemViewer struct{}

func (SystemViewer) Show(p *plot.Plot) error {
	return showImage(p, func(path string) (*exec.Cmd, bool) {
		return openCommand(runtime.GOOS, path, exec.LookPath)
	})
}

// showImage writes p to a temporary PNG and runs the viewer command for
// it. The file is removed afterwards if the command blocks until the
// viewer is closed.
func showImage(p *plot.Plot, command func(path string) (*exec.Cmd, bool)) error {
	fd, err := os.CreateTemp("", "ina219-chart-*.png")
	if err != nil {
		return err
	}
	if err := writeImage(fd, p, "png"); err != nil {
		fd.Close()
		os.Remove(fd.Name())
		return err
	}
	if err := fd.Close(); err != nil {
		os.Remove(fd.Name())
		return err
	}

	cmd, blocks := command(fd.Name())
	if blocks {
		defer os.Remove(fd.Name())
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("opening viewer for %s: %w", fd.Name(), err)
	}
	return nil
}

// Image viewers that stay in the foreground until their window is closed,
// in order of preference.
var blockingViewers = [][]string{
	{"feh"},
	{"display"},
	{"eog", "--new-instance"},
}

// openCommand returns the command that shows the image at path on goos,
// and whether that command waits for the viewer to be closed.
func openCommand(goos, path string, lookPath func(string) (string, error)) (*exec.Cmd, bool) {
	switch goos {
	case "darwin":
		return exec.Command("open", "-W", path), true
	case "windows":
		return exec.Command("cmd", "/c", "start", "/wait", "", path), true
	}

	for _, v := range blockingViewers {
		if bin, err := lookPath(v[0]); err == nil {
			args := append(slices.Clone(v[1:]), path)
			return exec.Command(bin, args...), true
		}
	}
	// xdg-open returns once the viewer is launched
	return exec.Command("xdg-open", path), false
}

// FileViewer saves the chart to Path instead of displaying it. The image
// format follows the file extension (png, svg, pdf, ...).
type FileViewer struct {
	Path string
}

func (v FileViewer) Show(p *plot.Plot) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(v.Path)), ".")
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}

	fd, err := os.Create(v.Path)
	if err != nil {
		return &ina219.FileAccessError{Op: "create", Path: v.Path, Err: err}
	}
	if _, err := wt.WriteTo(fd); err != nil {
		fd.Close()
		return &ina219.FileAccessError{Op: "write", Path: v.Path, Err: err}
	}
	if err := fd.Close(); err != nil {
		return &ina219.FileAccessError{Op: "write", Path: v.Path, Err: err}
	}
	return nil
}

func writeImage(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
