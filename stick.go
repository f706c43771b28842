package main

const (
	stickRadius  = 20.0 // a press closer than this grabs the stick
	dragMargin   = 5.0  // extra reach for move events while dragging
	commitRadius = 10.0 // a release closer than this to an anchor selects it
	symbolRadius = 20.0
)

// Stick is the draggable control point. Pos is always a point returned by
// Network.Project.
type Stick struct {
	Pos      Point
	Dragging bool
}

func (s *Stick) Grabs(p Point) bool {
	return s.Pos.Dist(p) < stickRadius
}

func (s *Stick) Reaches(p Point) bool {
	return s.Pos.Dist(p) < stickRadius+dragMargin
}

// MoveTo snaps the stick to the network point closest to (x, y) and reports
// whether the position changed.
func (s *Stick) MoveTo(n *Network, x, y float64) bool {
	p, _ := n.Project(x, y)
	if p == s.Pos {
		return false
	}
	s.Pos = p
	return true
}
