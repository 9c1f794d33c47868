package fluid

import (
	"fmt"

	"github.com/phil-mansfield/gosmoke/geom"
)

// State is the complete state of a simulation. It is not safe for
// concurrent use: injections and steps must be serialized by the caller.
type State struct {
	g      *geom.Grid
	params Params

	u, v   []float32
	u0, v0 []float32 // forces, then projection scratch
	d, d0  []float32
	src    []float32
}

// New allocates a zeroed State with n x n interior cells.
func New(n int, params Params) (*State, error) {
	if n < 1 || n > MaxCells {
		return nil, fmt.Errorf(
			"New: n = %d, must be in [1, %d]: %w", n, MaxCells, ErrInvalidSize,
		)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	g := geom.NewGrid(n)
	s := &State{
		g:      g,
		params: params,
		u:      g.New(),
		v:      g.New(),
		u0:     g.New(),
		v0:     g.New(),
		d:      g.New(),
		d0:     g.New(),
		src:    g.New(),
	}
	return s, nil
}

// Grid returns the lattice the State's fields are laid out on.
func (s *State) Grid() *geom.Grid { return s.g }

// Params returns the State's parameters.
func (s *State) Params() Params { return s.params }

// N returns the number of interior cells per side.
func (s *State) N() int { return s.g.N }

// DensityField returns the density buffer. The slice is owned by the State:
// it must not be modified and is only valid until the next step.
func (s *State) DensityField() []float32 { return s.d }

// VelocityField returns the velocity buffers under the same terms as
// DensityField.
func (s *State) VelocityField() (u, v []float32) { return s.u, s.v }

// InjectSource adds amount to the density source of interior cell (i, j).
// The source is consumed by the next DensityStep.
func (s *State) InjectSource(i, j int, amount float32) error {
	if !s.g.Interior(i, j) {
		return fmt.Errorf(
			"InjectSource: cell (%d, %d) outside [1, %d]: %w",
			i, j, s.g.N, ErrOutOfRange,
		)
	}
	s.src[s.g.Idx(i, j)] += amount
	return nil
}

// InjectForce adds (fx, fy) to the force on interior cell (i, j). The force
// is consumed by the next VelocityStep.
func (s *State) InjectForce(i, j int, fx, fy float32) error {
	if !s.g.Interior(i, j) {
		return fmt.Errorf(
			"InjectForce: cell (%d, %d) outside [1, %d]: %w",
			i, j, s.g.N, ErrOutOfRange,
		)
	}
	idx := s.g.Idx(i, j)
	s.u0[idx] += fx
	s.v0[idx] += fy
	return nil
}

// ClearSources discards any pending sources and forces.
func (s *State) ClearSources() {
	fill(s.u0, 0)
	fill(s.v0, 0)
	fill(s.src, 0)
}

// Reset returns every field to zero.
func (s *State) Reset() {
	for _, x := range [][]float32{s.u, s.v, s.u0, s.v0, s.d, s.d0, s.src} {
		fill(x, 0)
	}
}
