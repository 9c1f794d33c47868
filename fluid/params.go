package fluid

import (
	"fmt"
	"math"
)

const (
	// MaxCells is the largest interior width New will allocate.
	MaxCells = 1 << 13

	DefaultIterations          = 20
	DefaultDensityDissipation  = 0.982
	DefaultVelocityDissipation = 0.999
	DefaultMaxTimestep         = 0.03
)

// Params holds the tuning constants of a State. None of them are physically
// derived; they trade accuracy for speed (Iterations) or damp the flow
// (the dissipation rates).
type Params struct {
	// Iterations is the number of Gauss-Seidel sweeps used by both the
	// diffusion and the pressure solves.
	Iterations int
	// DensityDissipation and VelocityDissipation are the per-step
	// multiplicative decay rates.
	DensityDissipation, VelocityDissipation float32
	// MaxTimestep is the largest dt accepted by a step. Step clamps to it.
	MaxTimestep float32
	// Workers is the number of goroutines used by the order-independent
	// stages. Relaxation sweeps always run serially.
	Workers int
}

// DefaultParams returns the parameters of the reference solver.
func DefaultParams() Params {
	return Params{
		Iterations:          DefaultIterations,
		DensityDissipation:  DefaultDensityDissipation,
		VelocityDissipation: DefaultVelocityDissipation,
		MaxTimestep:         DefaultMaxTimestep,
		Workers:             1,
	}
}

// Validate returns an error wrapping ErrInvalidCoefficient if any parameter
// is unusable.
func (p Params) Validate() error {
	if p.Iterations < 1 {
		return fmt.Errorf(
			"Params: Iterations = %d, must be positive: %w",
			p.Iterations, ErrInvalidCoefficient,
		)
	} else if p.Workers < 1 {
		return fmt.Errorf(
			"Params: Workers = %d, must be positive: %w",
			p.Workers, ErrInvalidCoefficient,
		)
	}

	if err := checkRate("Params", "DensityDissipation", p.DensityDissipation); err != nil {
		return err
	} else if err := checkRate("Params", "VelocityDissipation", p.VelocityDissipation); err != nil {
		return err
	}

	if !finite(p.MaxTimestep) || p.MaxTimestep <= 0 {
		return fmt.Errorf(
			"Params: MaxTimestep = %g, must be positive: %w",
			p.MaxTimestep, ErrInvalidCoefficient,
		)
	}

	return nil
}

func checkRate(op, name string, rate float32) error {
	if !finite(rate) || rate < 0 || rate > 1 {
		return fmt.Errorf(
			"%s: %s = %g, must be in [0, 1]: %w",
			op, name, rate, ErrInvalidCoefficient,
		)
	}
	return nil
}

func checkCoefficient(op, name string, x float32) error {
	if !finite(x) || x < 0 {
		return fmt.Errorf(
			"%s: %s = %g, must be finite and non-negative: %w",
			op, name, x, ErrInvalidCoefficient,
		)
	}
	return nil
}

func checkTimestep(op string, dt, max float32) error {
	if !finite(dt) || dt <= 0 || dt > max {
		return fmt.Errorf(
			"%s: dt = %g, must be in (0, %g]: %w",
			op, dt, max, ErrInvalidCoefficient,
		)
	}
	return nil
}

func finite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}
