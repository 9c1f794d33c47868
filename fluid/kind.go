package fluid

// Kind determines the sign convention the boundary enforcer uses for a
// field's ghost cells.
type Kind int

const (
	// Scalar fields are mirrored across every wall.
	Scalar Kind = iota
	// XVelocity fields are negated across the walls normal to x.
	XVelocity
	// YVelocity fields are negated across the walls normal to y.
	YVelocity
	EndKind
)

var kindNames = [...]string{"Scalar", "XVelocity", "YVelocity"}

func (k Kind) String() string {
	if k < 0 || k >= EndKind {
		return "Unknown"
	}
	return kindNames[k]
}
