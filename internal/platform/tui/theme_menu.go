package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// ThemeModel lets users pick a color theme before playing.
type ThemeModel struct {
	themes     []Theme
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	selected   *Theme
	standalone bool
	quitting   bool
	back       bool
}

// NewThemeModel creates a theme picker with the cursor on the current theme.
func NewThemeModel(current Theme, width, height int) ThemeModel {
	themes := Themes()
	cursor := 0
	for i, t := range themes {
		if t.Name == current.Name {
			cursor = i
		}
	}
	return ThemeModel{
		themes:    themes,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m ThemeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ThemeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ThemeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.themes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		selected := m.themes[m.cursor]
		m.selected = &selected
		return m, m.done()
	case MenuActionBack:
		m.back = true
		return m, m.done()
	}
	return m, nil
}

// done ends a standalone program; an embedded picker is polled instead.
func (m ThemeModel) done() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the theme list with a colored preview of the highlighted theme.
func (m ThemeModel) View() string {
	if m.quitting {
		return ""
	}

	theme := m.themes[m.cursor]
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(center(theme.MenuTitle.Render("T H E M E")))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}
		b.WriteString(center(style.Render(fmt.Sprintf("%s%-8s", cursor, t.Name))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(themePreview(theme)))
	b.WriteString("\n\n")
	b.WriteString(center(theme.MenuHelp.Render("Enter: Select  |  Esc: Back  |  Q: Quit")))

	return b.String()
}

// themePreview renders one bubble per palette color, the powerup icons
// and the player in the theme's styles.
func themePreview(t Theme) string {
	var parts []string
	for _, c := range core.BubblePalette {
		parts = append(parts, t.Style(c).Render("( )"))
	}
	icons := []string{
		t.Style(core.ColorPowerupSpeed).Render("»"),
		t.Style(core.ColorPowerupMultiplier).Render("×"),
		t.Style(core.ColorPowerupInvincible).Render("◆"),
	}
	return strings.Join(parts, " ") + "  " + strings.Join(icons, " ") + "  " + t.Style(core.ColorPlayer).Render("█")
}

// Selected returns the chosen theme, or nil if still choosing.
func (m ThemeModel) Selected() *Theme {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m ThemeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ThemeModel) WantsBack() bool {
	return m.back
}

// RunThemePicker shows the theme picker and returns the chosen theme,
// or nil when the user backed out or quit.
func RunThemePicker(current Theme, cfg core.RuntimeConfig) (*Theme, core.RuntimeConfig, error) {
	model := NewThemeModel(current, cfg.ScreenW, cfg.ScreenH)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(ThemeModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW = m.width
	cfg.ScreenH = m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}
	return m.Selected(), cfg, nil
}
