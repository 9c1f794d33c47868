package interpolate

// BiInterpolator evaluates a 2D field at arbitrary points.
type BiInterpolator interface {
	Eval(x, y float32) float32
	EvalAll(xs, ys []float32, out ...[]float32) []float32
}

var (
	_ BiInterpolator = &BiLinear{}
)
