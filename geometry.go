package boxtree

// Box is an axis-aligned rectangle with an integer origin and extent.
// The coordinate system has its origin at the top-left, with Y increasing
// downward. W and H must be non-negative.
type Box struct {
	X, Y, W, H int
}

// IsInside reports whether b lies entirely within other.
// Boxes that touch other's edges are considered inside.
func (b Box) IsInside(other Box) bool {
	return b.X >= other.X && b.X+b.W <= other.X+other.W &&
		b.Y >= other.Y && b.Y+b.H <= other.Y+other.H
}

// Translate moves the box origin by (dx, dy). The extent is unchanged.
func (b *Box) Translate(dx, dy int) {
	b.X += dx
	b.Y += dy
}

// Quadrant identifies one of the four partitions of a zone.
type Quadrant uint8

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// Quadrants lists all four quadrants in routing order.
// Insert tests them in this order and takes the first match.
var Quadrants = [4]Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}

// String returns the quadrant name.
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Quadrant(?)"
	}
}

// QuadrantBox computes the sub-box of parent covered by quadrant q.
//
// The split is asymmetric: the top/left halves receive the extra unit of an
// odd extent (⌈w/2⌉), while the bottom/right halves receive ⌊w/2⌋ and start
// one unit past the midpoint. For even extents this leaves a one-unit seam
// between the two halves that no quadrant covers; elements falling on the
// seam are retained by the parent node. This matches the historical
// partition formula and is kept for parity rather than corrected.
func QuadrantBox(parent Box, q Quadrant) Box {
	halfW, halfH := parent.W/2, parent.H/2
	nearW, nearH := halfW+parent.W%2, halfH+parent.H%2
	switch q {
	case TopLeft:
		return Box{parent.X, parent.Y, nearW, nearH}
	case TopRight:
		return Box{parent.X + halfW + 1, parent.Y, halfW, nearH}
	case BottomLeft:
		return Box{parent.X, parent.Y + halfH + 1, nearW, halfH}
	case BottomRight:
		return Box{parent.X + halfW + 1, parent.Y + halfH + 1, halfW, halfH}
	default:
		panic("boxtree: invalid quadrant")
	}
}
