// Package dodge implements Bubble Dodge and Lane Dodge on top of the sim
// package. It adapts the pixel world to terminal cells, drives spawn timers
// and turns simulation events into on-screen effects.
package dodge

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
	"github.com/vovakirdan/dodge-arcade/internal/sim"
)

// Touch-style drag handling: movement below the threshold (world pixels)
// is accumulated, larger movement is applied damped.
const (
	DragThreshold = 10.0
	DragDamping   = 0.3
)

// Minimum terminal size the playfield fits in.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives config fallbacks; discarded until SetLogger is called
var logger = log.New(io.Discard)

// SetLogger sets the logger used by both variants.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is one dodge variant wired to the platform.
type Game struct {
	variant sim.Variant

	runtime    core.RuntimeConfig
	cfg        config.DodgeConfig
	difficulty *config.DifficultyManager
	world      *sim.World
	layout     layout
	effects    *Effects

	primary   sim.Cadence // Bubble or car spawns
	obstacles sim.Cadence

	dragCarry float64 // Drag distance not yet applied, world pixels
	paused    bool
	newHigh   bool
	tooSmall  bool
}

// NewBubbles creates a Bubble Dodge game.
func NewBubbles() *Game {
	return &Game{variant: sim.VariantBubbles}
}

// NewLanes creates a Lane Dodge game.
func NewLanes() *Game {
	return &Game{variant: sim.VariantLanes}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.String()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == sim.VariantLanes {
		return "Lane Dodge"
	}
	return "Bubble Dodge"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.variant == sim.VariantLanes {
		return "Switch lanes to dodge oncoming cars"
	}
	return "Pop bubbles, grab powerups, dodge hazards"
}

// Reset starts a new world sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.ID(), configPath)
	if err != nil {
		logger.Warn("using default config", "game", g.ID(), "error", err)
		cfg, _ = config.DefaultConfig(g.ID())
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.layout = newLayout(g.variant, cfg.World, runtime.ScreenW, runtime.ScreenH)

	g.world = sim.Start(sim.Config{
		Variant:   g.variant,
		Width:     g.layout.worldWidth(),
		Height:    g.layout.worldHeight(),
		Seed:      runtime.Seed,
		HighScore: runtime.HighScore,
		Rules:     cfg,
		Speed:     g.difficulty,
	})
	g.effects = NewEffects(runtime.Seed)
	g.primary.Reset()
	g.obstacles.Reset()
	g.dragCarry = 0
	g.paused = false
	g.newHigh = false
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.world.IsOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.world.IsOver() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if g.world.IsOver() {
		// Let the last bursts play out behind the game over box
		g.effects.Step()
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	dt := g.runtime.TickMillis()
	for range g.primary.Advance(dt, g.world.SpawnRate()) {
		g.world.SpawnNext()
	}
	if interval := g.cfg.Spawn.ObstacleIntervalMs; interval > 0 {
		for range g.obstacles.Advance(dt, float64(interval)) {
			g.world.SpawnEntity(sim.KindObstacle)
		}
	}

	g.world.Tick(dt)

	g.effects.Handle(g.world.DrainEvents(), g.layout)
	g.effects.Step()

	if g.world.IsOver() {
		g.newHigh = g.world.End()
	}

	return core.StepResult{State: g.State()}
}

// handleInput maps platform actions onto simulation commands.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.world.MovePlayer(sim.DirUp)
	}
	if in.Has(core.ActionDown) {
		g.world.MovePlayer(sim.DirDown)
	}
	if in.Has(core.ActionLeft) {
		g.world.MovePlayer(sim.DirLeft)
	}
	if in.Has(core.ActionRight) {
		g.world.MovePlayer(sim.DirRight)
	}

	if in.PointerDelta != 0 {
		g.dragCarry += in.PointerDelta * g.layout.cellH
		if math.Abs(g.dragCarry) > DragThreshold {
			g.world.SetPlayerOffset(g.world.Player().Offset + g.dragCarry*DragDamping)
			g.dragCarry = 0
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:        g.world.Score(),
		GameOver:     g.world.IsOver(),
		Paused:       g.paused,
		NewHighScore: g.newHigh,
	}
}

// Snapshot returns the simulation snapshot for determinism verification.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Register both variants with the registry
func init() {
	registry.Register(config.GameBubbles, func() registry.Game {
		return NewBubbles()
	})
	registry.Register(config.GameLanes, func() registry.Game {
		return NewLanes()
	})
}
