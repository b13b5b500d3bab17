package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
	"github.com/vovakirdan/dodge-arcade/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	resets    []core.RuntimeConfig
	steps     int
	lastInput core.InputFrame
	state     core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastInput = in.Clone()
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "Score: 1", core.ColorHUD)
}

func (g *stubGame) State() core.GameState { return g.state }

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 50, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelLoadsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordGame("stub", 30); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	g := &stubGame{}
	m := NewModel(g, store, testRuntime(), Options{})
	m.Init()

	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times, expected 1", len(g.resets))
	}
	if g.resets[0].HighScore != 30 {
		t.Errorf("HighScore passed to game = %d, expected 30", g.resets[0].HighScore)
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), Options{})
	m.Init()
	g.state = core.GameState{Score: 5, GameOver: true}

	m = update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Error("model did not pick up game over")
	}
	if g.resets[0].HighScore != 0 {
		t.Errorf("HighScore = %d without a store, expected 0", g.resets[0].HighScore)
	}
}

func TestModelRecordsFinishedGameOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := NewModel(g, store, testRuntime(), Options{})
	m.Init()

	g.state = core.GameState{Score: 12, GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("recorded %d games, expected 1", len(scores))
	}
	if high, _ := store.HighScore("stub"); high != 12 {
		t.Errorf("HighScore = %d, expected 12", high)
	}

	// Restart reloads the stored best into the next game
	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	if len(g.resets) != 2 {
		t.Fatalf("Reset called %d times, expected 2", len(g.resets))
	}
	if g.resets[1].HighScore != 12 {
		t.Errorf("HighScore after restart = %d, expected 12", g.resets[1].HighScore)
	}
	if g.resets[1].Seed == g.resets[0].Seed {
		t.Error("restart reused the previous seed")
	}
	if m.State().GameOver {
		t.Error("state still game over after restart")
	}

	// A zero-score game is still part of the history
	g.state = core.GameState{GameOver: true}
	update(t, m, TickMsg{})
	if scores, _ := store.TopScores("stub", 10); len(scores) != 2 {
		t.Errorf("history has %d games, expected 2", len(scores))
	}
}

func TestModelKeysAndDragReachGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), Options{})
	m.Init()

	m = update(t, m, runeKey("w"))
	m = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 8))
	m = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 6))
	m = update(t, m, TickMsg{})

	if !g.lastInput.Has(core.ActionUp) {
		t.Error("Up not delivered to the game")
	}
	if g.lastInput.PointerDelta != 2 {
		t.Errorf("PointerDelta = %v, expected 2", g.lastInput.PointerDelta)
	}

	// Input is cleared between ticks
	update(t, m, TickMsg{})
	if g.lastInput.Has(core.ActionUp) || g.lastInput.PointerDelta != 0 {
		t.Errorf("input leaked into the next tick: %+v", g.lastInput)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), Options{})
	m.Init()

	// Esc during play is ignored
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back to menu while playing")
	}

	g.state = core.GameState{Paused: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime(), Options{})
	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).IsQuitting() {
		t.Error("q did not quit")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeRestartsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), Options{})
	m.Init()

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	last := g.resets[len(g.resets)-1]
	if last.ScreenW != 100 || last.ScreenH != 30 {
		t.Errorf("Reset after resize got %dx%d, expected 100x30", last.ScreenW, last.ScreenH)
	}
}

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(20, 3)
	screen.DrawTextColored(0, 0, "Score: 1", core.ColorHUD)
	screen.DrawText(0, 2, "plain")

	for _, theme := range Themes() {
		out := RenderScreen(screen, theme)
		if strings.Count(out, "\n") != 2 {
			t.Errorf("%s: expected 3 lines, got %q", theme.Name, out)
		}
		if !strings.Contains(out, "Score: 1") || !strings.Contains(out, "plain") {
			t.Errorf("%s: text missing from %q", theme.Name, out)
		}
	}
}
