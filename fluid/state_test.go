package fluid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t testing.TB, n int) *State {
	s, err := New(n, DefaultParams())
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := newState(t, 4)
	assert.Equal(t, 4, s.N())
	assert.Equal(t, 36, s.Grid().Size)
	assert.Equal(t, DefaultParams(), s.Params())

	u, v := s.VelocityField()
	for _, x := range [][]float32{u, v, s.DensityField()} {
		require.Len(t, x, 36)
		for _, val := range x {
			assert.Zero(t, val)
		}
	}
}

func TestNewInvalid(t *testing.T) {
	table := []struct {
		n      int
		params Params
		err    error
	}{
		{0, DefaultParams(), ErrInvalidSize},
		{-3, DefaultParams(), ErrInvalidSize},
		{MaxCells + 1, DefaultParams(), ErrInvalidSize},
		{4, Params{}, ErrInvalidCoefficient},
	}

	for i, test := range table {
		s, err := New(test.n, test.params)
		if !errors.Is(err, test.err) {
			t.Errorf("%d) Expected %v, got %v", i, test.err, err)
		}
		assert.Nil(t, s)
	}
}

func TestParamsValidate(t *testing.T) {
	nan := float32(math.NaN())
	table := []struct {
		mod func(p *Params)
		ok  bool
	}{
		{func(p *Params) {}, true},
		{func(p *Params) { p.Workers = 8 }, true},
		{func(p *Params) { p.DensityDissipation = 1 }, true},
		{func(p *Params) { p.Iterations = 0 }, false},
		{func(p *Params) { p.Workers = 0 }, false},
		{func(p *Params) { p.DensityDissipation = 1.5 }, false},
		{func(p *Params) { p.VelocityDissipation = -0.1 }, false},
		{func(p *Params) { p.VelocityDissipation = nan }, false},
		{func(p *Params) { p.MaxTimestep = 0 }, false},
		{func(p *Params) { p.MaxTimestep = float32(math.Inf(1)) }, false},
	}

	for i, test := range table {
		p := DefaultParams()
		test.mod(&p)
		err := p.Validate()
		if test.ok && err != nil {
			t.Errorf("%d) Expected valid params, got %v", i, err)
		} else if !test.ok && !errors.Is(err, ErrInvalidCoefficient) {
			t.Errorf("%d) Expected ErrInvalidCoefficient, got %v", i, err)
		}
	}
}

func TestInjectOutOfRange(t *testing.T) {
	s := newState(t, 4)
	cells := [][2]int{{0, 2}, {2, 0}, {5, 2}, {2, 5}, {-1, -1}}

	for _, c := range cells {
		err := s.InjectSource(c[0], c[1], 1)
		assert.ErrorIs(t, err, ErrOutOfRange)
		err = s.InjectForce(c[0], c[1], 1, 1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}

	for i := range s.src {
		assert.Zero(t, s.src[i])
		assert.Zero(t, s.u0[i])
		assert.Zero(t, s.v0[i])
	}
}

func TestInjectAccumulates(t *testing.T) {
	s := newState(t, 4)
	require.NoError(t, s.InjectSource(1, 4, 2))
	require.NoError(t, s.InjectSource(1, 4, 3))
	require.NoError(t, s.InjectForce(4, 1, 1, -1))
	require.NoError(t, s.InjectForce(4, 1, 2, -2))

	g := s.Grid()
	assert.Equal(t, float32(5), s.src[g.Idx(1, 4)])
	assert.Equal(t, float32(3), s.u0[g.Idx(4, 1)])
	assert.Equal(t, float32(-3), s.v0[g.Idx(4, 1)])

	s.ClearSources()
	assert.Zero(t, s.src[g.Idx(1, 4)])
	assert.Zero(t, s.u0[g.Idx(4, 1)])
}

func TestReset(t *testing.T) {
	s := newState(t, 6)
	require.NoError(t, s.InjectSource(3, 3, 100))
	require.NoError(t, s.InjectForce(3, 3, 50, 20))
	require.NoError(t, s.Step(0, 0, 0.02))

	s.Reset()
	u, v := s.VelocityField()
	for i, d := range s.DensityField() {
		assert.Zero(t, d)
		assert.Zero(t, u[i])
		assert.Zero(t, v[i])
	}
}
