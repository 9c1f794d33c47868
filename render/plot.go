package render

import (
	"fmt"
	"path/filepath"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gosmoke/fluid"
)

// PlotFiles returns the names of the figures written by PlotHistory for
// fname: fname itself and a second figure with "_div" inserted before the
// extension.
func PlotFiles(fname string) (density, divergence string) {
	ext := filepath.Ext(fname)
	return fname, strings.TrimSuffix(fname, ext) + "_div" + ext
}

// PlotHistory adds figures of a run's diagnostics to the pending pyplot
// script: the total density against frame, and the largest divergence and
// speed on a log axis. Nothing is drawn until plt.Execute is called.
func PlotHistory(hist []fluid.Diagnostics, fname string) error {
	if len(hist) == 0 {
		return fmt.Errorf("No diagnostics to plot.")
	}

	frames := make([]float64, len(hist))
	mass := make([]float64, len(hist))
	divs := make([]float64, len(hist))
	speeds := make([]float64, len(hist))
	for i := range hist {
		frames[i] = float64(hist[i].Frame)
		mass[i] = hist[i].TotalDensity
		divs[i] = hist[i].MaxDivergence
		speeds[i] = hist[i].MaxSpeed
	}

	densityFile, divFile := PlotFiles(fname)

	plt.Figure()
	plt.Plot(frames, mass, "k", plt.LW(2))
	plt.Title("Total Density")
	plt.XLabel("Frame", plt.FontSize(16))
	plt.YLabel(`$\sum \rho$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(densityFile)

	plt.Figure()
	plt.Plot(frames, divs, plt.LW(2), plt.C("r"))
	plt.Plot(frames, speeds, plt.LW(2), plt.C("b"))
	plt.Title(`Divergence (red) and Speed (blue)`)
	plt.XLabel("Frame", plt.FontSize(16))
	plt.YLabel(`$\max|\nabla\cdot u|$, $\max|u|$`, plt.FontSize(16))
	plt.YScale("log")
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(divFile)

	return nil
}

// PlotHistogram adds a figure of a density histogram to the pending pyplot
// script.
func PlotHistogram(info *HistInfo, counts []int, fname string) error {
	if err := info.Check(); err != nil {
		return err
	} else if len(counts) != info.Bins {
		return fmt.Errorf(
			"Histogram has %d bins, but %d counts were given.",
			info.Bins, len(counts),
		)
	}

	centers := info.Centers()
	fCounts := make([]float64, len(counts))
	for i := range counts {
		fCounts[i] = float64(counts[i])
	}

	plt.Figure()
	plt.Plot(centers, fCounts, "k", plt.LW(2))
	plt.Title("Density Histogram")
	plt.XLabel(`$\rho$`, plt.FontSize(16))
	plt.YLabel("Cells", plt.FontSize(16))
	if info.isLog() {
		plt.XScale("log")
	}
	plt.SaveFig(fname)

	return nil
}
