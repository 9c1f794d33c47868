package fluid

import (
	"errors"
)

var (
	// ErrInvalidSize is returned by New when the requested grid cannot be
	// allocated.
	ErrInvalidSize = errors.New("fluid: invalid grid size")
	// ErrOutOfRange is returned by injections outside the interior cells.
	ErrOutOfRange = errors.New("fluid: cell index out of range")
	// ErrInvalidCoefficient is returned for negative or non-finite
	// coefficients and timesteps.
	ErrInvalidCoefficient = errors.New("fluid: invalid coefficient")
	// ErrNonFinite is returned by CheckFinite when a field holds NaN or Inf.
	ErrNonFinite = errors.New("fluid: non-finite value in field")
)
