package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Theme maps display roles to terminal styles.
type Theme struct {
	Name   string
	styles [core.ColorCount]lipgloss.Style

	// Menu styles
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuHelp       lipgloss.Style
}

// Style returns the style for a role, falling back to ColorDefault.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if c >= core.ColorCount {
		return t.styles[core.ColorDefault]
	}
	return t.styles[c]
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// DefaultTheme returns the warm palette the bubble game launched with.
func DefaultTheme() Theme {
	t := Theme{Name: "default"}
	t.styles = [core.ColorCount]lipgloss.Style{
		core.ColorDefault:           lipgloss.NewStyle(),
		core.ColorHUD:               fg("255").Bold(true),
		core.ColorDim:               fg("245"),
		core.ColorAccent:            fg("226").Bold(true),
		core.ColorPlayer:            fg("255"),
		core.ColorPlayerShielded:    fg("51").Bold(true),
		core.ColorBubbleRed:         fg("#ff6b6b"),
		core.ColorBubbleBlue:        fg("#4a6bff"),
		core.ColorBubbleGreen:       fg("#6bff6b"),
		core.ColorBubbleYellow:      fg("#ffd56b"),
		core.ColorBubblePurple:      fg("#d56bff"),
		core.ColorPowerupSpeed:      fg("51").Bold(true),  // Cyan
		core.ColorPowerupMultiplier: fg("226").Bold(true), // Gold
		core.ColorPowerupInvincible: fg("205").Bold(true), // Pink
		core.ColorHazard:            fg("196").Bold(true),
		core.ColorRoad:              fg("240"),
	}
	t.MenuTitle = fg("51").Bold(true)
	t.MenuItemNormal = fg("252")
	t.MenuItemActive = fg("226").Bold(true)
	t.MenuHelp = fg("245")
	return t
}

// OceanTheme returns a blue and teal palette.
func OceanTheme() Theme {
	t := DefaultTheme()
	t.Name = "ocean"
	t.styles[core.ColorHUD] = fg("153").Bold(true)
	t.styles[core.ColorAccent] = fg("122").Bold(true)
	t.styles[core.ColorPlayer] = fg("195")
	t.styles[core.ColorBubbleRed] = fg("44")
	t.styles[core.ColorBubbleBlue] = fg("27")
	t.styles[core.ColorBubbleGreen] = fg("37")
	t.styles[core.ColorBubbleYellow] = fg("117")
	t.styles[core.ColorBubblePurple] = fg("69")
	t.styles[core.ColorRoad] = fg("24")
	t.MenuTitle = fg("117").Bold(true)
	t.MenuItemActive = fg("122").Bold(true)
	return t
}

// NeonTheme returns a saturated high-contrast palette.
func NeonTheme() Theme {
	t := DefaultTheme()
	t.Name = "neon"
	t.styles[core.ColorHUD] = fg("201").Bold(true)
	t.styles[core.ColorAccent] = fg("118").Bold(true)
	t.styles[core.ColorPlayer] = fg("87").Bold(true)
	t.styles[core.ColorBubbleRed] = fg("199")
	t.styles[core.ColorBubbleBlue] = fg("87")
	t.styles[core.ColorBubbleGreen] = fg("118")
	t.styles[core.ColorBubbleYellow] = fg("227")
	t.styles[core.ColorBubblePurple] = fg("171")
	t.styles[core.ColorRoad] = fg("93")
	t.MenuTitle = fg("201").Bold(true)
	t.MenuItemActive = fg("118").Bold(true)
	return t
}

// Themes lists every built-in theme in picker order.
func Themes() []Theme {
	return []Theme{DefaultTheme(), OceanTheme(), NeonTheme()}
}

// ThemeByName looks up a built-in theme. Names are case-insensitive.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	for _, t := range Themes() {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return DefaultTheme(), fmt.Errorf("tui: unknown theme %q", name)
}
