package geom

// Grid provides an interface for reasoning over a 1D slice as if it were a
// square 2D lattice of N x N interior cells surrounded by a one cell ghost
// border.
type Grid struct {
	N int
	// Stride is the width of a row in the backing slice, N + 2.
	Stride int
	// Size is the length of any slice laid out on this Grid, (N + 2)^2.
	Size int
}

// NewGrid returns a new Grid instance with n interior cells per side.
func NewGrid(n int) *Grid {
	g := &Grid{}
	g.Init(n)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(n int) {
	g.N = n
	g.Stride = n + 2
	g.Size = g.Stride * g.Stride
}

// Idx returns the slice index corresponding to a set of coordinates. No
// bounds checking is done.
func (g *Grid) Idx(i, j int) int {
	return i + g.Stride*j
}

// IdxCheck returns an index and true if the given coordinates lie anywhere
// on the lattice (ghost cells included) and false otherwise.
func (g *Grid) IdxCheck(i, j int) (idx int, ok bool) {
	if !g.BoundsCheck(i, j) {
		return -1, false
	}

	return g.Idx(i, j), true
}

// BoundsCheck returns true if the given coordinates are on the lattice,
// including ghost cells.
func (g *Grid) BoundsCheck(i, j int) bool {
	return i >= 0 && j >= 0 && i < g.Stride && j < g.Stride
}

// Interior returns true if the given coordinates are an interior cell, i.e.
// both lie in [1, N].
func (g *Grid) Interior(i, j int) bool {
	return i >= 1 && j >= 1 && i <= g.N && j <= g.N
}

// Coords returns the i, j coordinates of a cell from its slice index.
func (g *Grid) Coords(idx int) (i, j int) {
	return idx % g.Stride, idx / g.Stride
}

// New returns a zeroed slice laid out on the Grid.
func (g *Grid) New() []float32 {
	return make([]float32, g.Size)
}
