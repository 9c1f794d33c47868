package render

import (
	"testing"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gosmoke/fluid"
)

func TestPlotFiles(t *testing.T) {
	a, b := PlotFiles("out/diag.png")
	assert.Equal(t, "out/diag.png", a)
	assert.Equal(t, "out/diag_div.png", b)

	a, b = PlotFiles("diag")
	assert.Equal(t, "diag", a)
	assert.Equal(t, "diag_div", b)
}

func TestPlotErrors(t *testing.T) {
	defer plt.Reset()

	assert.Error(t, PlotHistory(nil, "diag.png"))
	assert.NoError(t, PlotHistory([]fluid.Diagnostics{
		{Frame: 0, TotalDensity: 1, MaxDivergence: 1e-4, MaxSpeed: 1},
		{Frame: 1, TotalDensity: 0.9, MaxDivergence: 1e-5, MaxSpeed: 0.5},
	}, "diag.png"))

	info := &HistInfo{0, 1, 2, "linear"}
	assert.Error(t, PlotHistogram(info, []int{1}, "hist.png"))
	assert.Error(t, PlotHistogram(&HistInfo{0, 1, 0, "linear"}, nil, "hist.png"))
	assert.NoError(t, PlotHistogram(info, []int{1, 3}, "hist.png"))
}
