package main

// handleNavigation nudges the stick one step in the direction of key by
// running a short drag through the session, so keyboard input obeys the
// same tracks as the mouse.
func (m *model) handleNavigation(key string) {
	speed := float64(m.getMoveSpeed(key))
	var dx, dy float64
	switch key {
	case "h", "left", "H", "shift+left":
		dx = -speed * m.config.CellWidth
	case "l", "right", "L", "shift+right":
		dx = speed * m.config.CellWidth
	case "k", "up", "K", "shift+up":
		dy = -speed * m.config.CellHeight
	case "j", "down", "J", "shift+down":
		dy = speed * m.config.CellHeight
	default:
		return
	}
	m.nudgeStick(dx, dy)
}

func (m *model) nudgeStick(dx, dy float64) {
	// Steps longer than the drag reach would be ignored by the session.
	reach := stickRadius + dragMargin - 1
	dx = clamp(dx, -reach, reach)
	dy = clamp(dy, -reach, reach)

	p := m.session.Stick()
	if !m.session.Press(p.X, p.Y) {
		return
	}
	m.session.Move(p.X+dx, p.Y+dy)
	m.session.Release(p.X+dx, p.Y+dy)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
