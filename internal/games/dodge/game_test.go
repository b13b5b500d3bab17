package dodge

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
	"github.com/vovakirdan/dodge-arcade/internal/sim"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     12345,
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"bubbles", "lanes"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}

	g, err := registry.Create("lanes")
	if err != nil {
		t.Fatalf("Create(lanes) failed: %v", err)
	}
	if g.Title() != "Lane Dodge" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Lane Dodge")
	}
}

func TestResetLayout(t *testing.T) {
	tests := []struct {
		name    string
		game    *Game
		width   float64
		originX int
	}{
		{"bubbles use the full screen", NewBubbles(), 640, 0},
		{"lanes keep a centered road", NewLanes(), 320, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.game.Reset(testConfig())
			snap := tc.game.Snapshot()

			if snap.Width != tc.width {
				t.Errorf("world width = %v, expected %v", snap.Width, tc.width)
			}
			if snap.Height != 23*16 {
				t.Errorf("world height = %v, expected %v", snap.Height, 23*16)
			}
			if tc.game.layout.originX != tc.originX {
				t.Errorf("originX = %d, expected %d", tc.game.layout.originX, tc.originX)
			}
		})
	}
}

func TestStepMovesPlayer(t *testing.T) {
	g := NewBubbles()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)

	if got := g.Snapshot().Player.Offset; got != 50 {
		t.Errorf("offset after Up = %v, expected 50", got)
	}

	in.Clear()
	in.Set(core.ActionDown)
	g.Step(in)
	g.Step(in)
	if got := g.Snapshot().Player.Offset; got != 20 {
		t.Errorf("offset after two Down = %v, expected 20 (clamped)", got)
	}
}

func TestLaneInput(t *testing.T) {
	g := NewLanes()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)

	if got := g.Snapshot().Player.Lane; got != 1 {
		t.Errorf("lane after Right = %d, expected 1", got)
	}
}

func TestDragMovesPlayer(t *testing.T) {
	g := NewBubbles()
	g.Reset(testConfig())

	// One row is 16 px, above the threshold
	in := core.NewInputFrame()
	in.Drag(1)
	g.Step(in)
	if got := g.Snapshot().Player.Offset; math.Abs(got-24.8) > 1e-9 {
		t.Errorf("offset after one-row drag = %v, expected 24.8", got)
	}

	// Half a row stays below the threshold until it accumulates
	in.Clear()
	in.Drag(0.5)
	g.Step(in)
	if got := g.Snapshot().Player.Offset; math.Abs(got-24.8) > 1e-9 {
		t.Errorf("small drag moved the player to %v", got)
	}
	g.Step(in)
	if got := g.Snapshot().Player.Offset; math.Abs(got-29.6) > 1e-9 {
		t.Errorf("offset after accumulated drag = %v, expected 29.6", got)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := NewBubbles()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	ticks := g.Snapshot().Tick
	in.Clear()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if g.Snapshot().Tick != ticks {
		t.Error("world advanced while paused")
	}

	in.Set(core.ActionPause)
	g.Step(in)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := NewBubbles()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 50, Seed: 1})

	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Error("world advanced on a screen that is too small")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestRenderHUD(t *testing.T) {
	cfg := testConfig()
	cfg.HighScore = 7
	g := NewBubbles()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD missing score: %q", hud)
	}
	if !strings.Contains(hud, "Best: 7") {
		t.Errorf("HUD missing best score: %q", hud)
	}

	// Player sits on the bottom rows
	if !strings.ContainsRune(screen.Row(cfg.ScreenH-2), PlayerChar) {
		t.Errorf("player not drawn near the bottom:\n%s", screen.String())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := NewLanes()
	g.Reset(testConfig())

	// The player never leaves the left lane, so a car eventually hits it
	in := core.NewInputFrame()
	for i := 0; i < 50000 && !g.State().GameOver; i++ {
		g.Step(in)
	}
	st := g.State()
	if !st.GameOver {
		t.Fatal("lane game never ended")
	}
	if st.NewHighScore != (st.Score > 0) {
		t.Errorf("NewHighScore = %v with score %d and no previous high", st.NewHighScore, st.Score)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("game over box not drawn:\n%s", screen.String())
	}

	// Movement is ignored once over
	offset := g.Snapshot().Player.Offset
	in.Set(core.ActionUp)
	g.Step(in)
	if g.Snapshot().Player.Offset != offset {
		t.Error("player moved after game over")
	}

	in.Clear()
	in.Set(core.ActionRestart)
	g.Step(in)
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("restart did not reset the game: %+v", g.State())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		g := NewBubbles()
		g.Reset(testConfig())
		in := core.NewInputFrame()
		for i := 0; i < 2000; i++ {
			in.Clear()
			if i%13 == 0 {
				in.Set(core.ActionUp)
			}
			if i%29 == 0 {
				in.Set(core.ActionDown)
			}
			g.Step(in)
		}
		return g.Snapshot().Hash()
	}

	if run() != run() {
		t.Error("same seed and inputs produced different snapshots")
	}
}

func TestEffectsLifecycle(t *testing.T) {
	fx := NewEffects(1)
	l := newLayout(sim.VariantBubbles, config.DefaultBubblesConfig().World, 80, 24)

	fx.Handle([]sim.Event{
		{Type: sim.EventCollect, Points: 2, X: 100, Y: 100, Color: core.ColorBubbleRed},
		{Type: sim.EventPowerupCollected, Powerup: sim.PowerupSpeed, X: 200, Y: 100},
	}, l)

	if got := len(fx.Particles); got != BurstNormal+BurstPowerup {
		t.Errorf("particles = %d, expected %d", got, BurstNormal+BurstPowerup)
	}
	if len(fx.Pops) != 2 || fx.Pops[0].Text != "+2" {
		t.Errorf("pops = %+v, expected +2 and a powerup label", fx.Pops)
	}

	for i := 0; i < PopLife; i++ {
		fx.Step()
	}
	if fx.Active() {
		t.Errorf("effects still active after %d ticks", PopLife)
	}
}

func TestTimerBar(t *testing.T) {
	tests := []struct {
		fraction float64
		expected string
	}{
		{1, "▰▰▰▰▰▰▰▰"},
		{0.5, "▰▰▰▰▱▱▱▱"},
		{0, "▱▱▱▱▱▱▱▱"},
		{1.5, "▰▰▰▰▰▰▰▰"},
	}

	for _, tc := range tests {
		if got := timerBar(tc.fraction); got != tc.expected {
			t.Errorf("timerBar(%v) = %q, expected %q", tc.fraction, got, tc.expected)
		}
	}
}
