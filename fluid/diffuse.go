package fluid

import (
	"github.com/phil-mansfield/gosmoke/geom"
)

// Diffuse approximately solves the implicit diffusion equation
//
//	dst = src + rate*dt*N^2 * Laplacian(dst)
//
// with iters Gauss-Seidel sweeps, enforcing the boundary after each one.
// dst is used as the initial guess. There is no convergence check.
func Diffuse(g *geom.Grid, k Kind, dst, src []float32, rate, dt float32, iters int) {
	n, w := g.N, g.Stride
	a := dt * rate * float32(n*n)
	c := 1 + 4*a

	for it := 0; it < iters; it++ {
		// Sweeps must stay serial: each cell reads neighbours updated
		// earlier in the same sweep.
		for j := 1; j <= n; j++ {
			row := w * j
			for i := 1; i <= n; i++ {
				idx := i + row
				dst[idx] = (src[idx] + a*(dst[idx-1]+dst[idx+1]+
					dst[idx-w]+dst[idx+w])) / c
			}
		}
		EnforceBoundary(g, k, dst)
	}
}
