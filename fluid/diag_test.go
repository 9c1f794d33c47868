package fluid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gosmoke/geom"
)

func TestTotalDensityIgnoresGhosts(t *testing.T) {
	g := geom.NewGrid(3)
	d := uniform(g, 2)
	assert.InDelta(t, 18.0, TotalDensity(g, d), 1e-9)
}

func TestDivergenceOfLinearField(t *testing.T) {
	g := geom.NewGrid(10)
	u, v, out := g.New(), g.New(), g.New()
	for j := 0; j < g.Stride; j++ {
		for i := 0; i < g.Stride; i++ {
			u[g.Idx(i, j)] = float32(i)
			v[g.Idx(i, j)] = -2 * float32(j)
		}
	}

	Divergence(g, u, v, out)
	h := 1 / float64(g.N)
	for j := 1; j <= g.N; j++ {
		for i := 1; i <= g.N; i++ {
			// 0.5*h*(2 - 4)
			assert.InDelta(t, -h, out[g.Idx(i, j)], 1e-6)
		}
	}
	assert.InDelta(t, h, MaxAbsDivergence(g, u, v), 1e-6)
}

func TestSpeedAndEnergy(t *testing.T) {
	g := geom.NewGrid(4)
	u, v := g.New(), g.New()
	u[g.Idx(2, 3)], v[g.Idx(2, 3)] = 3, 4
	u[g.Idx(1, 1)] = -1
	// Ghost cells do not count.
	u[g.Idx(0, 0)] = 100

	assert.InDelta(t, 5.0, MaxSpeed(g, u, v), 1e-9)
	assert.InDelta(t, 0.5*26/16.0, KineticEnergy(g, u, v), 1e-9)
}

func TestStateDiagnostics(t *testing.T) {
	s := newState(t, 4)
	assert.Equal(t, Diagnostics{}, s.Diagnostics())

	s.d[s.g.Idx(2, 2)] = 3
	s.u[s.g.Idx(3, 3)] = 1
	diag := s.Diagnostics()
	assert.InDelta(t, 3.0, diag.TotalDensity, 1e-9)
	assert.InDelta(t, 1.0, diag.MaxSpeed, 1e-9)
	assert.InDelta(t, 0.125, diag.MaxDivergence, 1e-7)
}

func TestCheckFinite(t *testing.T) {
	s := newState(t, 4)
	assert.NoError(t, s.CheckFinite())

	s.v[s.g.Idx(1, 2)] = float32(math.Inf(-1))
	assert.ErrorIs(t, s.CheckFinite(), ErrNonFinite)

	s.Reset()
	s.d[s.g.Idx(4, 4)] = float32(math.NaN())
	assert.ErrorIs(t, s.CheckFinite(), ErrNonFinite)
}
