package core

// Color is a display role for a screen cell.
// Games pick roles; the platform theme decides the actual terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorHUD
	ColorDim
	ColorAccent
	ColorPlayer
	ColorPlayerShielded // Player while invincible
	ColorBubbleRed
	ColorBubbleBlue
	ColorBubbleGreen
	ColorBubbleYellow
	ColorBubblePurple
	ColorPowerupSpeed
	ColorPowerupMultiplier
	ColorPowerupInvincible
	ColorHazard
	ColorRoad
	ColorCount // Sentinel for counting roles
)

// BubblePalette lists the colors a normal bubble may take.
var BubblePalette = []Color{
	ColorBubbleRed,
	ColorBubbleBlue,
	ColorBubbleGreen,
	ColorBubbleYellow,
	ColorBubblePurple,
}
