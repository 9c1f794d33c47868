package fluid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gosmoke/geom"
)

func randomField(g *geom.Grid, seed int64) []float32 {
	gen := rand.New(rand.NewSource(seed))
	x := g.New()
	for i := range x {
		x[i] = float32(gen.Float64()*2 - 1)
	}
	return x
}

func TestEnforceBoundaryEdges(t *testing.T) {
	g := geom.NewGrid(5)
	n := g.N

	table := []struct {
		k      Kind
		sx, sy float32
	}{
		{Scalar, 1, 1},
		{XVelocity, -1, 1},
		{YVelocity, 1, -1},
	}

	for c, test := range table {
		x := randomField(g, int64(c))
		EnforceBoundary(g, test.k, x)

		for j := 1; j <= n; j++ {
			if x[g.Idx(0, j)] != test.sx*x[g.Idx(1, j)] {
				t.Errorf("%d) %s: left wall at j = %d not mirrored", c, test.k, j)
			}
			if x[g.Idx(n+1, j)] != test.sx*x[g.Idx(n, j)] {
				t.Errorf("%d) %s: right wall at j = %d not mirrored", c, test.k, j)
			}
		}
		for i := 1; i <= n; i++ {
			if x[g.Idx(i, 0)] != test.sy*x[g.Idx(i, 1)] {
				t.Errorf("%d) %s: bottom wall at i = %d not mirrored", c, test.k, i)
			}
			if x[g.Idx(i, n+1)] != test.sy*x[g.Idx(i, n)] {
				t.Errorf("%d) %s: top wall at i = %d not mirrored", c, test.k, i)
			}
		}
	}
}

func TestEnforceBoundaryCorners(t *testing.T) {
	g := geom.NewGrid(5)
	n := g.N

	for k := Scalar; k < EndKind; k++ {
		x := randomField(g, 100+int64(k))
		EnforceBoundary(g, k, x)

		assert.Equal(t, 0.5*(x[g.Idx(1, 0)]+x[g.Idx(0, 1)]), x[g.Idx(0, 0)], k.String())
		assert.Equal(t, 0.5*(x[g.Idx(1, n+1)]+x[g.Idx(0, n)]), x[g.Idx(0, n+1)], k.String())
		assert.Equal(t, 0.5*(x[g.Idx(n, 0)]+x[g.Idx(n+1, 1)]), x[g.Idx(n+1, 0)], k.String())
		assert.Equal(t, 0.5*(x[g.Idx(n, n+1)]+x[g.Idx(n+1, n)]), x[g.Idx(n+1, n+1)], k.String())
	}
}

func TestEnforceBoundaryLeavesInterior(t *testing.T) {
	g := geom.NewGrid(4)
	x := randomField(g, 7)
	before := append([]float32(nil), x...)
	EnforceBoundary(g, XVelocity, x)

	for j := 1; j <= g.N; j++ {
		for i := 1; i <= g.N; i++ {
			assert.Equal(t, before[g.Idx(i, j)], x[g.Idx(i, j)])
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Scalar", Scalar.String())
	assert.Equal(t, "XVelocity", XVelocity.String())
	assert.Equal(t, "YVelocity", YVelocity.String())
	assert.Equal(t, "Unknown", EndKind.String())
}
