package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/phil-mansfield/gosmoke/geom"
)

// HistInfo describes the binning of a density histogram. Scale is either
// "linear" or "log".
type HistInfo struct {
	Min, Max float64
	Bins     int
	Scale    string
}

func (info *HistInfo) isLog() bool {
	return strings.ToLower(info.Scale) == "log"
}

// Check returns an error if the binning cannot be used.
func (info *HistInfo) Check() error {
	if info.Bins < 1 {
		return fmt.Errorf("Bins must be positive, but is %d.", info.Bins)
	} else if !(info.Max > info.Min) {
		return fmt.Errorf(
			"Max must be larger than Min, but they are %g and %g.",
			info.Max, info.Min,
		)
	}

	switch strings.ToLower(info.Scale) {
	case "linear":
	case "log":
		if info.Min <= 0 {
			return fmt.Errorf(
				"Log histograms need a positive Min, but it is %g.", info.Min,
			)
		}
	default:
		return fmt.Errorf("Scale '%s' not recognized.", info.Scale)
	}
	return nil
}

// Centers returns the center of every bin.
func (info *HistInfo) Centers() []float64 {
	min, max := info.Min, info.Max

	isLog := info.isLog()
	if isLog {
		min, max = math.Log10(min), math.Log10(max)
	}

	dx := (max - min) / float64(info.Bins)

	centers := make([]float64, info.Bins)
	for i := range centers {
		centers[i] = min + dx*(float64(i)+0.5)
		if isLog {
			centers[i] = math.Pow(10, centers[i])
		}
	}

	return centers
}

// Histogram counts the interior cells of d falling into each bin. Cells
// outside [Min, Max) are skipped.
func Histogram(info *HistInfo, g *geom.Grid, d []float32) []int {
	min, max := info.Min, info.Max
	fBins := float64(info.Bins)

	isLog := info.isLog()
	if isLog {
		min, max = math.Log10(min), math.Log10(max)
	}
	dx := (max - min) / fBins

	counts := make([]int, info.Bins)
	for j := 1; j <= g.N; j++ {
		for i := 1; i <= g.N; i++ {
			x := float64(d[g.Idx(i, j)])
			if isLog {
				if x <= 0 {
					continue
				}
				x = math.Log10(x)
			}

			idx := (x - min) / dx
			if idx < 0 || idx >= fBins {
				continue
			}
			counts[int(idx)]++
		}
	}
	return counts
}
