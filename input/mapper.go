/*package input turns cursor positions and motion into density sources and
forces on a simulation grid.*/
package input

import (
	"math"

	"github.com/phil-mansfield/gosmoke/io"
)

// Cursor is a single sample of a pointing device. X and Y are measured in
// pixels from the top left corner of the window, DX and DY are the motion
// since the previous sample.
type Cursor struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
	Down bool    `json:"down"`
}

// Mapper converts Cursors into injections.
type Mapper struct {
	Cells         int
	Width, Height float64

	SourceStrength, LiftVelocity, ForceScale float32
}

// NewMapper creates a Mapper for a grid with the given number of interior
// cells per side.
func NewMapper(cells int, con *io.InputConfig) *Mapper {
	return &Mapper{
		Cells:          cells,
		Width:          float64(con.Width),
		Height:         float64(con.Height),
		SourceStrength: float32(con.SourceStrength),
		LiftVelocity:   float32(con.LiftVelocity),
		ForceScale:     float32(con.ForceScale),
	}
}

// Cell returns the grid cell under the pixel (x, y). The y axis is flipped
// so that j = N is the top of the window. ok is false if the cell is not an
// interior cell.
func (m *Mapper) Cell(x, y float64) (i, j int, ok bool) {
	n := float64(m.Cells)
	i = int(math.Floor(x / m.Width * n))
	j = int(math.Floor((m.Height - y) / m.Height * n))
	ok = i >= 1 && j >= 1 && i <= m.Cells && j <= m.Cells
	return i, j, ok
}

// Apply injects the force from the cursor's motion into inj and, if the
// button is held, a density source carried upwards. Cursors outside the
// grid are ignored and Apply returns false.
func (m *Mapper) Apply(inj io.Injector, c Cursor) (bool, error) {
	i, j, ok := m.Cell(c.X, c.Y)
	if !ok {
		return false, nil
	}

	fx := float32(c.DX) * m.ForceScale
	fy := -float32(c.DY) * m.ForceScale
	if c.Down {
		fy += m.LiftVelocity
		if err := inj.InjectSource(i, j, m.SourceStrength); err != nil {
			return false, err
		}
	}

	if fx != 0 || fy != 0 {
		if err := inj.InjectForce(i, j, fx, fy); err != nil {
			return false, err
		}
	}
	return true, nil
}
