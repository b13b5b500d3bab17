package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// DragTracker turns left-button mouse drags into vertical deltas,
// the terminal stand-in for a touch swipe.
type DragTracker struct {
	active bool
	lastY  int
}

// Handle consumes a mouse message and returns the vertical movement since
// the previous event in rows, positive when the pointer moved up.
func (d *DragTracker) Handle(msg tea.MouseMsg) float64 {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return 0
		}
		d.active = true
		d.lastY = msg.Y
		return 0

	case tea.MouseActionMotion:
		if !d.active {
			return 0
		}
		delta := d.lastY - msg.Y
		d.lastY = msg.Y
		return float64(delta)

	case tea.MouseActionRelease:
		d.active = false
	}
	return 0
}

// Active reports whether a drag is in progress.
func (d *DragTracker) Active() bool {
	return d.active
}
