/*package render turns density fields into images, animations and plots.*/
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/mazznoer/colorgrad"

	"github.com/phil-mansfield/gosmoke/geom"
)

var gradients = map[string]func() colorgrad.Gradient{
	"viridis": colorgrad.Viridis,
	"inferno": colorgrad.Inferno,
	"magma":   colorgrad.Magma,
	"plasma":  colorgrad.Plasma,
	"turbo":   colorgrad.Turbo,
	"greys":   colorgrad.Greys,
}

// PaletteNames returns the names accepted by NewPalette in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(gradients))
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette maps densities onto a fixed number of colours. Index 0 is the
// colour of empty space.
type Palette struct {
	Name   string
	Colors color.Palette
	rgba   []color.RGBA
}

// NewPalette creates a Palette with the given number of levels, which must
// be in [2, 256] so that indices fit in a paletted image.
func NewPalette(name string, levels int) (*Palette, error) {
	grad, ok := gradients[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf(
			"Palette '%s' not recognized. Options are %s.",
			name, strings.Join(PaletteNames(), ", "),
		)
	} else if levels < 2 || levels > 256 {
		return nil, fmt.Errorf(
			"Palette needs between 2 and 256 levels, but got %d.", levels,
		)
	}

	pal := &Palette{Name: strings.ToLower(name)}
	for _, c := range grad().Colors(uint(levels)) {
		pal.Colors = append(pal.Colors, c)
		pal.rgba = append(pal.rgba, color.RGBAModel.Convert(c).(color.RGBA))
	}
	return pal, nil
}

// Levels returns the number of colours in the palette.
func (pal *Palette) Levels() int { return len(pal.Colors) }

// Index returns the palette index of a density value. Densities at or above
// scale map to the last level and non-positive or NaN densities map to 0.
func (pal *Palette) Index(value, scale float32) uint8 {
	t := float64(value) / float64(scale)
	if !(t > 0) {
		return 0
	}
	top := len(pal.Colors) - 1
	if t >= 1 {
		return uint8(top)
	}
	return uint8(math.Floor(t * float64(len(pal.Colors))))
}

// FillRGBA writes the interior of d into dst as N x N row-major pixels.
// The top row of the image is j = N.
func (pal *Palette) FillRGBA(dst []color.RGBA, g *geom.Grid, d []float32, scale float32) {
	if len(dst) != g.N*g.N {
		panic(fmt.Sprintf("RGBA buffer has length %d, but %d needed.",
			len(dst), g.N*g.N))
	}

	for row := 0; row < g.N; row++ {
		j := g.N - row
		out := dst[row*g.N : (row+1)*g.N]
		for i := 1; i <= g.N; i++ {
			out[i-1] = pal.rgba[pal.Index(d[g.Idx(i, j)], scale)]
		}
	}
}

// Paletted returns the interior of d as an image with the same orientation
// as FillRGBA.
func (pal *Palette) Paletted(g *geom.Grid, d []float32, scale float32) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.N, g.N), pal.Colors)
	for row := 0; row < g.N; row++ {
		j := g.N - row
		for i := 1; i <= g.N; i++ {
			img.SetColorIndex(i-1, row, pal.Index(d[g.Idx(i, j)], scale))
		}
	}
	return img
}
