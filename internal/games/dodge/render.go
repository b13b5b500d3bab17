package dodge

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerTop    = '▲'
	ObstacleChar = '▓'
	CarBody      = '█'
	CarFront     = '▀'
	CarRear      = '▄'
	RoadEdge     = '┃'
	LaneMark     = '╎'
	BarFull      = '▰'
	BarEmpty     = '▱'
)

// powerupBarCells is the width of one powerup timer bar in the HUD.
const powerupBarCells = 8

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.world.Snapshot()

	if g.variant == sim.VariantLanes {
		g.renderRoad(dst, snap)
	}
	for _, e := range snap.Entities {
		g.renderEntity(dst, e)
	}
	g.renderPlayer(dst, snap)
	g.effects.Render(dst, g.layout)
	g.renderHUD(dst, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, best score and powerup timers on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorHUD)
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorHUD)
	dst.DrawTextColored(14, 0, fmt.Sprintf("Best: %d", max(snap.PreviousHigh, snap.Score)), core.ColorDim)

	// Timer bars, right aligned, one per active powerup
	x := dst.Width() - 1
	for p := sim.PowerupCount - 1; p >= 0; p-- {
		st := snap.Powerups[p]
		if !st.Active {
			continue
		}
		bar := powerupIcon(p) + " " + timerBar(st.Fraction(snap.Now))
		x -= len([]rune(bar)) + 1
		dst.DrawTextColored(x, 0, bar, powerupColor(p))
	}
}

// renderRoad draws road edges and the dashed lane divider.
func (g *Game) renderRoad(dst *core.Screen, snap sim.Snapshot) {
	l := g.layout
	left := l.originX - 1
	right := l.originX + l.cols
	mid := l.originX + l.cols/2

	// Lane marks scroll with the clock so the road appears to move
	shift := int(snap.Now/100) % 2
	for row := l.originY; row < l.originY+l.rows; row++ {
		dst.SetColored(left, row, RoadEdge, core.ColorRoad)
		dst.SetColored(right, row, RoadEdge, core.ColorRoad)
		if (row+shift)%2 == 0 {
			dst.SetColored(mid, row, LaneMark, core.ColorRoad)
		}
	}
}

// renderEntity draws one falling entity clipped to the playfield.
func (g *Game) renderEntity(dst *core.Screen, e sim.Entity) {
	x0, y0, x1, y1 := g.layout.cellSpan(e.X, e.Y, e.Width, e.Height)

	switch {
	case e.Kind.IsCollectible():
		g.renderBubble(dst, e, x0, y0, x1, y1)
	case e.Kind.IsCar():
		for y := y0; y <= y1; y++ {
			if !g.layout.inField(y) {
				continue
			}
			glyph := CarBody
			if y == y0 && y1 > y0 {
				glyph = CarRear
			} else if y == y1 && y1 > y0 {
				glyph = CarFront
			}
			dst.DrawHLine(x0, y, x1-x0+1, glyph, e.Color)
		}
	default:
		for y := y0; y <= y1; y++ {
			if g.layout.inField(y) {
				dst.DrawHLine(x0, y, x1-x0+1, ObstacleChar, e.Color)
			}
		}
	}
}

// renderBubble draws a rounded outline; powerups carry their icon inside.
func (g *Game) renderBubble(dst *core.Screen, e sim.Entity, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		if !g.layout.inField(y) {
			continue
		}
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, bubbleGlyph(x, y, x0, y0, x1, y1), e.Color)
		}
	}

	if p, ok := e.Kind.Powerup(); ok {
		cy := (y0 + y1) / 2
		if g.layout.inField(cy) {
			icon := powerupIcon(p)
			dst.DrawTextColored((x0+x1)/2, cy, icon, e.Color)
		}
	}
}

// bubbleGlyph picks the outline rune for a cell of a bubble's bounding box.
func bubbleGlyph(x, y, x0, y0, x1, y1 int) rune {
	if y0 == y1 {
		switch x {
		case x0:
			return '('
		case x1:
			return ')'
		default:
			return '○'
		}
	}
	switch {
	case y == y0 && x == x0:
		return '╭'
	case y == y0 && x == x1:
		return '╮'
	case y == y1 && x == x0:
		return '╰'
	case y == y1 && x == x1:
		return '╯'
	case y == y0 || y == y1:
		return '─'
	case x == x0 || x == x1:
		return '│'
	default:
		return ' '
	}
}

// renderPlayer draws the avatar, highlighted while invincible.
func (g *Game) renderPlayer(dst *core.Screen, snap sim.Snapshot) {
	p := snap.Player
	x0, y0, x1, y1 := g.layout.cellSpan(p.X, p.Top(snap.Height), p.Width, p.Height)

	color := core.ColorPlayer
	if snap.Powerups[sim.PowerupInvincible].Active {
		color = core.ColorPlayerShielded
	}
	for y := y0; y <= y1; y++ {
		if !g.layout.inField(y) {
			continue
		}
		glyph := PlayerChar
		if y == y0 && y1 > y0 {
			glyph = PlayerTop
		}
		dst.DrawHLine(x0, y, x1-x0+1, glyph, color)
	}
}

// renderOverlay draws pause and game over boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch {
	case snap.Over:
		lines := []string{
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Best: %d", max(snap.PreviousHigh, snap.Score)),
		}
		if g.newHigh {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "R restart  Q quit")
		drawCenteredBox(dst, "GAME OVER", lines)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", []string{"Press P to resume"})
	}
}

// drawCenteredBox draws a centered message box with a title and body lines.
func drawCenteredBox(dst *core.Screen, title string, lines []string) {
	width := len([]rune(title))
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAccent)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorAccent)
	for i, line := range lines {
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawText(x, boxY+3+i, line)
	}
}

// timerBar renders a fraction as a fixed-width bar.
func timerBar(fraction float64) string {
	filled := int(fraction*powerupBarCells + 0.5)
	filled = core.Clamp(filled, 0, powerupBarCells)
	return strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), powerupBarCells-filled)
}

func powerupIcon(p sim.Powerup) string {
	switch p {
	case sim.PowerupSpeed:
		return "»"
	case sim.PowerupMultiplier:
		return "×"
	case sim.PowerupInvincible:
		return "◆"
	default:
		return "?"
	}
}

func powerupColor(p sim.Powerup) core.Color {
	switch p {
	case sim.PowerupSpeed:
		return core.ColorPowerupSpeed
	case sim.PowerupMultiplier:
		return core.ColorPowerupMultiplier
	case sim.PowerupInvincible:
		return core.ColorPowerupInvincible
	default:
		return core.ColorHUD
	}
}
