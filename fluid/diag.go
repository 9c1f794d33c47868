package fluid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/gosmoke/geom"
)

// Diagnostics summarizes a State after a step. Reductions are accumulated in
// float64.
type Diagnostics struct {
	Frame int
	Dt    float64

	// TotalDensity is the sum of the density over interior cells.
	TotalDensity float64
	// MaxDivergence is the largest magnitude of Divergence over interior
	// cells.
	MaxDivergence float64
	MaxSpeed      float64
	// KineticEnergy is 0.5 * sum(u^2 + v^2) * h^2 over interior cells.
	KineticEnergy float64
}

// Divergence writes the central-difference divergence of (u, v) at every
// interior cell of out, in the lattice units used by the pressure solve:
// 0.5*h*(u[i+1,j] - u[i-1,j] + v[i,j+1] - v[i,j-1]). Ghost cells of out are
// not written.
func Divergence(g *geom.Grid, u, v, out []float32) {
	n, w := g.N, g.Stride
	h := 1 / float32(n)
	for j := 1; j <= n; j++ {
		row := w * j
		for i := 1; i <= n; i++ {
			idx := i + row
			out[idx] = 0.5 * h * (u[idx+1] - u[idx-1] + v[idx+w] - v[idx-w])
		}
	}
}

// interior appends the interior cells of x to buf[:0] as float64.
func interior(g *geom.Grid, x []float32, buf []float64) []float64 {
	buf = buf[:0]
	for j := 1; j <= g.N; j++ {
		row := g.Stride * j
		for i := 1; i <= g.N; i++ {
			buf = append(buf, float64(x[i+row]))
		}
	}
	return buf
}

func maxAbs(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return math.Max(floats.Max(xs), -floats.Min(xs))
}

// TotalDensity returns the sum of d over interior cells.
func TotalDensity(g *geom.Grid, d []float32) float64 {
	return floats.Sum(interior(g, d, nil))
}

// MaxAbsDivergence returns the largest magnitude of Divergence(g, u, v).
func MaxAbsDivergence(g *geom.Grid, u, v []float32) float64 {
	div := g.New()
	Divergence(g, u, v, div)
	return maxAbs(interior(g, div, nil))
}

// MaxSpeed returns the largest |(u, v)| over interior cells.
func MaxSpeed(g *geom.Grid, u, v []float32) float64 {
	us, vs := interior(g, u, nil), interior(g, v, nil)
	floats.Mul(us, us)
	floats.Mul(vs, vs)
	floats.Add(us, vs)
	if len(us) == 0 {
		return 0
	}
	return math.Sqrt(floats.Max(us))
}

// KineticEnergy returns 0.5 * sum(u^2 + v^2) * h^2 over interior cells.
func KineticEnergy(g *geom.Grid, u, v []float32) float64 {
	us, vs := interior(g, u, nil), interior(g, v, nil)
	h := 1 / float64(g.N)
	return 0.5 * (floats.Dot(us, us) + floats.Dot(vs, vs)) * h * h
}

// Diagnostics computes a Diagnostics snapshot of the current fields. Frame
// and Dt are left for the caller to fill.
func (s *State) Diagnostics() Diagnostics {
	g := s.g
	return Diagnostics{
		TotalDensity:  TotalDensity(g, s.d),
		MaxDivergence: MaxAbsDivergence(g, s.u, s.v),
		MaxSpeed:      MaxSpeed(g, s.u, s.v),
		KineticEnergy: KineticEnergy(g, s.u, s.v),
	}
}

// CheckFinite returns an error wrapping ErrNonFinite if the velocity or the
// density holds a NaN or an infinity.
func (s *State) CheckFinite() error {
	fields := []struct {
		name string
		x    []float32
	}{{"u", s.u}, {"v", s.v}, {"density", s.d}}

	for _, f := range fields {
		for idx, x := range f.x {
			if !finite(x) {
				i, j := s.g.Coords(idx)
				return fmt.Errorf(
					"CheckFinite: %s(%d, %d) = %g: %w", f.name, i, j, x, ErrNonFinite,
				)
			}
		}
	}
	return nil
}
