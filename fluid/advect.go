package fluid

import (
	"github.com/phil-mansfield/gosmoke/geom"
	"github.com/phil-mansfield/gosmoke/math/interpolate"
)

// Advect transports src through the velocity field (u, v) into dst with a
// semi-Lagrangian backward trace: each interior cell takes the bilinearly
// interpolated value of src at the point it came from dt ago.
//
// Traced points are clamped to [0.5, N + 0.5] on both axes, so arbitrarily
// large (or non-finite) velocities never read outside the buffer.
func Advect(g *geom.Grid, k Kind, dst, src, u, v []float32, dt float32) {
	advect(g, k, dst, src, u, v, dt, 1)
}

func advect(
	g *geom.Grid, k Kind, dst, src, u, v []float32, dt float32, workers int,
) {
	n, w := g.N, g.Stride
	dt0 := dt * float32(n)
	intr := interpolate.NewUniformBiLinear(src, w, 0.5, float32(n)+0.5)

	parallelRange(workers, 1, n+1, func(j int) {
		row := w * j
		for i := 1; i <= n; i++ {
			idx := i + row
			x := float32(i) - dt0*u[idx]
			y := float32(j) - dt0*v[idx]
			dst[idx] = intr.Eval(x, y)
		}
	})

	EnforceBoundary(g, k, dst)
}
