package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gosmoke/geom"
)

func TestNewPalette(t *testing.T) {
	for _, name := range PaletteNames() {
		pal, err := NewPalette(name, 256)
		require.NoError(t, err, name)
		assert.Equal(t, 256, pal.Levels())
		assert.Equal(t, name, pal.Name)
	}

	pal, err := NewPalette("Viridis", 16)
	require.NoError(t, err)
	assert.Equal(t, "viridis", pal.Name)
	assert.Len(t, pal.Colors, 16)

	_, err = NewPalette("rainbow", 256)
	assert.Error(t, err)
	_, err = NewPalette("viridis", 1)
	assert.Error(t, err)
	_, err = NewPalette("viridis", 257)
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	pal, err := NewPalette("greys", 10)
	require.NoError(t, err)

	nan := float32(math.NaN())
	inf := float32(math.Inf(+1))
	table := []struct {
		value, scale float32
		idx          uint8
	}{
		{0, 1, 0},
		{-3, 1, 0},
		{nan, 1, 0},
		{0.05, 1, 0},
		{0.1, 1, 1},
		{0.55, 1, 5},
		{0.999, 1, 9},
		{1, 1, 9},
		{40, 1, 9},
		{inf, 1, 9},
		{5, 10, 5},
	}

	for i, test := range table {
		idx := pal.Index(test.value, test.scale)
		if idx != test.idx {
			t.Errorf("%d) Expected Index(%g, %g) = %d, got %d",
				i, test.value, test.scale, test.idx, idx)
		}
	}
}

func TestFillRGBA(t *testing.T) {
	pal, err := NewPalette("greys", 2)
	require.NoError(t, err)

	g := geom.NewGrid(3)
	d := g.New()
	d[g.Idx(1, 3)] = 1 // top left
	d[g.Idx(3, 1)] = 1 // bottom right
	d[g.Idx(0, 0)] = 1 // ghost cells are never drawn

	dst := make([]color.RGBA, 3*3)
	pal.FillRGBA(dst, g, d, 1)

	lit := map[int]bool{0: true, 8: true}
	for px := 0; px < 9; px++ {
		expected := pal.rgba[0]
		if lit[px] {
			expected = pal.rgba[1]
		}
		assert.Equal(t, expected, dst[px], "pixel %d", px)
	}
	assert.NotEqual(t, pal.rgba[0], pal.rgba[1])

	img := pal.Paletted(g, d, 1)
	assert.Equal(t, uint8(1), img.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), img.ColorIndexAt(2, 2))
	assert.Equal(t, uint8(0), img.ColorIndexAt(2, 0))
	assert.Equal(t, uint8(0), img.ColorIndexAt(0, 2))

	assert.Panics(t, func() { pal.FillRGBA(make([]color.RGBA, 4), g, d, 1) })
}
