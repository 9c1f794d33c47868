package fluid

import (
	"github.com/phil-mansfield/gosmoke/geom"
)

// EnforceBoundary fills the ghost border of x from its interior neighbours.
//
// Velocity components are negated across the walls normal to them, giving
// no-flux walls; everything else is mirrored. Each corner is the mean of
// its two edge neighbours regardless of k.
func EnforceBoundary(g *geom.Grid, k Kind, x []float32) {
	n, w := g.N, g.Stride

	sx, sy := float32(1), float32(1)
	if k == XVelocity {
		sx = -1
	} else if k == YVelocity {
		sy = -1
	}

	for i := 1; i <= n; i++ {
		x[0+w*i] = sx * x[1+w*i]
		x[(n+1)+w*i] = sx * x[n+w*i]
		x[i+w*0] = sy * x[i+w*1]
		x[i+w*(n+1)] = sy * x[i+w*n]
	}

	x[g.Idx(0, 0)] = 0.5 * (x[g.Idx(1, 0)] + x[g.Idx(0, 1)])
	x[g.Idx(0, n+1)] = 0.5 * (x[g.Idx(1, n+1)] + x[g.Idx(0, n)])
	x[g.Idx(n+1, 0)] = 0.5 * (x[g.Idx(n, 0)] + x[g.Idx(n+1, 1)])
	x[g.Idx(n+1, n+1)] = 0.5 * (x[g.Idx(n, n+1)] + x[g.Idx(n+1, n)])
}
