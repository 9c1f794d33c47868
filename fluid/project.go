package fluid

import (
	"github.com/phil-mansfield/gosmoke/geom"
)

// Project removes the divergent part of (u, v) with a discrete Hodge
// decomposition. p and div are scratch buffers which hold the pressure and
// the divergence on return. The pressure Poisson equation is relaxed with
// iters Gauss-Seidel sweeps, so the result is only approximately
// divergence-free.
func Project(g *geom.Grid, u, v, p, div []float32, iters int) {
	project(g, u, v, p, div, iters, 1)
}

func project(g *geom.Grid, u, v, p, div []float32, iters, workers int) {
	n, w := g.N, g.Stride
	h := 1 / float32(n)

	parallelRange(workers, 1, n+1, func(j int) {
		row := w * j
		for i := 1; i <= n; i++ {
			idx := i + row
			div[idx] = -0.5 * h * (u[idx+1] - u[idx-1] + v[idx+w] - v[idx-w])
			p[idx] = 0
		}
	})
	EnforceBoundary(g, Scalar, div)
	EnforceBoundary(g, Scalar, p)

	for it := 0; it < iters; it++ {
		for j := 1; j <= n; j++ {
			row := w * j
			for i := 1; i <= n; i++ {
				idx := i + row
				p[idx] = (div[idx] + p[idx-1] + p[idx+1] + p[idx-w] + p[idx+w]) / 4
			}
		}
		EnforceBoundary(g, Scalar, p)
	}

	parallelRange(workers, 1, n+1, func(j int) {
		row := w * j
		for i := 1; i <= n; i++ {
			idx := i + row
			u[idx] -= 0.5 * (p[idx+1] - p[idx-1]) / h
			v[idx] -= 0.5 * (p[idx+w] - p[idx-w]) / h
		}
	})
	EnforceBoundary(g, XVelocity, u)
	EnforceBoundary(g, YVelocity, v)
}
