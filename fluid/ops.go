package fluid

// AddSource adds dt*src to dst over the whole buffer, ghost cells included.
// Sources are expected to be zero on the ghost cells.
func AddSource(dst, src []float32, dt float32) {
	for i := range dst {
		dst[i] += dt * src[i]
	}
}

// Dissipate multiplies every value of x by rate.
func Dissipate(x []float32, rate float32) {
	for i := range x {
		x[i] *= rate
	}
}

func fill(x []float32, val float32) {
	for i := range x {
		x[i] = val
	}
}

// addSource and dissipate split the buffer into row bands of width stride.
func addSource(dst, src []float32, dt float32, stride, workers int) {
	if workers <= 1 {
		AddSource(dst, src, dt)
		return
	}
	parallelRange(workers, 0, len(dst)/stride, func(j int) {
		lo, hi := j*stride, (j+1)*stride
		AddSource(dst[lo:hi], src[lo:hi], dt)
	})
}

func dissipate(x []float32, rate float32, stride, workers int) {
	if workers <= 1 {
		Dissipate(x, rate)
		return
	}
	parallelRange(workers, 0, len(x)/stride, func(j int) {
		Dissipate(x[j*stride:(j+1)*stride], rate)
	})
}
