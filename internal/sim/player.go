package sim

import (
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Direction is a normalized movement command.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}

// Player is the avatar. Offset is measured from the bottom edge of the world
// to the bottom edge of the avatar.
type Player struct {
	X      float64 // Left edge
	Offset float64
	Width  float64
	Height float64
	Lane   int // Lane index in the lane variant
}

// Top returns the y coordinate of the avatar's top edge in a world of the given height.
func (p Player) Top(worldHeight float64) float64 {
	return worldHeight - p.Offset - p.Height
}

// PlayerBox returns the avatar's collision box.
func (w *World) PlayerBox() core.Box {
	return core.NewBox(w.player.X, w.player.Top(w.height), w.player.Width, w.player.Height)
}

// MinOffset returns the lowest allowed player offset.
func (w *World) MinOffset() float64 {
	return float64(w.rules.Player.MinOffset)
}

// MaxOffset returns the highest allowed player offset. It never drops below MinOffset.
func (w *World) MaxOffset() float64 {
	lo := w.MinOffset()
	return max(lo, w.height-w.player.Height-lo)
}

// MovePlayer applies one movement command. Up and Down step the offset,
// Left and Right switch lanes in the lane variant.
func (w *World) MovePlayer(dir Direction) {
	if w.over {
		return
	}
	step := float64(w.rules.Player.Step)
	if w.powerups[PowerupSpeed].Active {
		step = float64(w.rules.Player.BoostedStep)
	}

	switch dir {
	case DirUp:
		w.setOffset(w.player.Offset + step)
	case DirDown:
		w.setOffset(w.player.Offset - step)
	case DirLeft:
		if w.cfg.Variant == VariantLanes && w.player.Lane > 0 {
			w.player.Lane--
			w.placePlayer()
		}
	case DirRight:
		if w.cfg.Variant == VariantLanes && w.player.Lane < LaneCount-1 {
			w.player.Lane++
			w.placePlayer()
		}
	}
}

// SetPlayerOffset moves the avatar to an absolute offset, clamped to the allowed range.
func (w *World) SetPlayerOffset(offset float64) {
	if w.over {
		return
	}
	w.setOffset(offset)
}

func (w *World) setOffset(offset float64) {
	w.player.Offset = core.ClampF(offset, w.MinOffset(), w.MaxOffset())
}

// placePlayer derives the avatar's x from the variant and lane.
func (w *World) placePlayer() {
	if w.cfg.Variant == VariantLanes {
		w.player.X = w.LaneCenter(w.player.Lane) - w.player.Width/2
		return
	}
	w.player.X = (w.width - w.player.Width) / 2
}
