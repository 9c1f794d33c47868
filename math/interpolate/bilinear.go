package interpolate

import (
	"fmt"
)

/////////////////////////////
// BiLinear Implementation //
/////////////////////////////

// BiLinear is a bi-linear interpolator over a square lattice with unit
// spacing. Lattice point (i, j) is stored at vals[i + stride*j].
//
// Points are clamped to [lo, hi] on both axes before lookup, so Eval never
// reads outside the lattice as long as 0 <= lo and hi <= stride - 1.
type BiLinear struct {
	vals   []float32
	stride int
	lo, hi float32
}

// NewUniformBiLinear creates a bi-linear interpolator over vals, which must
// have length stride*stride. Sample points will be clamped to [lo, hi].
func NewUniformBiLinear(vals []float32, stride int, lo, hi float32) *BiLinear {
	if stride*stride != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but stride = %d", len(vals), stride,
		))
	} else if lo < 0 || hi > float32(stride-1) || lo > hi {
		panic(fmt.Sprintf(
			"clamp range [%g, %g] does not fit in a lattice of width %d",
			lo, hi, stride,
		))
	}

	return &BiLinear{vals: vals, stride: stride, lo: lo, hi: hi}
}

// Clamp returns x restricted to the interpolator's clamp range. NaN maps to
// the lower bound.
func (bi *BiLinear) Clamp(x float32) float32 {
	if !(x >= bi.lo) {
		return bi.lo
	} else if x > bi.hi {
		return bi.hi
	}
	return x
}

// Eval returns the interpolated value at (x, y).
func (bi *BiLinear) Eval(x, y float32) float32 {
	x, y = bi.Clamp(x), bi.Clamp(y)

	i0, j0 := int(x), int(y)
	i1, j1 := i0, j0
	// At the very top of the lattice the upper neighbour has zero weight.
	if i0 < bi.stride-1 {
		i1++
	}
	if j0 < bi.stride-1 {
		j1++
	}

	s1 := x - float32(i0)
	s0 := 1 - s1
	t1 := y - float32(j0)
	t0 := 1 - t1

	v := bi.vals
	w := bi.stride
	return s0*(t0*v[i0+w*j0]+t1*v[i0+w*j1]) +
		s1*(t0*v[i1+w*j0]+t1*v[i1+w*j1])
}

// EvalAll evaluates the interpolator at all the given points. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (bi *BiLinear) EvalAll(xs, ys []float32, out ...[]float32) []float32 {
	if len(out) == 0 {
		out = [][]float32{make([]float32, len(xs))}
	}
	for i := range xs {
		out[0][i] = bi.Eval(xs[i], ys[i])
	}
	return out[0]
}
