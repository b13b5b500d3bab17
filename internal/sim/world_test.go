package sim

import (
	"math"
	"testing"
)

// fixedScale is a SpeedScaler that ignores progress.
type fixedScale float64

func (f fixedScale) SpeedScale(int, float64) float64 { return float64(f) }

func newTestWorld(variant Variant) *World {
	cfg := DefaultConfig(variant, 300, 600)
	cfg.Seed = 42
	cfg.Speed = fixedScale(1)
	return Start(cfg)
}

// addEntity inserts an entity directly, bypassing the random spawner.
func addEntity(w *World, e Entity) {
	w.nextID++
	e.ID = w.nextID
	w.entities = append(w.entities, e)
}

// overPlayer returns an entity of the given kind sitting on the player.
func overPlayer(w *World, kind Kind) Entity {
	pb := w.PlayerBox()
	return Entity{Kind: kind, X: pb.X, Y: pb.Y, Width: 20, Height: 20}
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestStartFreshWorld(t *testing.T) {
	w := newTestWorld(VariantBubbles)

	if w.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", w.Score())
	}
	if w.IsOver() {
		t.Error("new world should not be over")
	}
	if len(w.Entities()) != 0 {
		t.Errorf("Entities() len = %d, expected 0", len(w.Entities()))
	}
	if w.SpawnRate() != 1000 {
		t.Errorf("SpawnRate() = %v, expected 1000", w.SpawnRate())
	}
	if w.Player().Offset != 20 {
		t.Errorf("player offset = %v, expected 20", w.Player().Offset)
	}
	if len(w.ActivePowerups()) != 0 {
		t.Errorf("ActivePowerups() = %v, expected none", w.ActivePowerups())
	}
	// Player is centered horizontally in the bubble variant
	if got := w.Player().X; got != 130 {
		t.Errorf("player X = %v, expected 130", got)
	}
}

func TestOverWorldIgnoresMutations(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	w.SpawnEntity(KindNormal)
	w.Tick(20)
	w.End()

	before := w.Snapshot().Hash()

	w.Tick(20)
	if w.SpawnEntity(KindNormal) {
		t.Error("SpawnEntity on an over world should be rejected")
	}
	w.MovePlayer(DirUp)
	w.MovePlayer(DirRight)
	w.SetPlayerOffset(300)

	if after := w.Snapshot().Hash(); after != before {
		t.Errorf("state changed after game over: hash %x -> %x", before, after)
	}
}

func TestFallingBubbleScenario(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	// Left edge, clear of the centered player
	addEntity(w, Entity{Kind: KindNormal, X: 0, Y: -30, VY: 5, Width: 30, Height: 30})

	for i := 0; i < 100; i++ {
		w.Tick(20)
	}
	ents := w.Entities()
	if len(ents) != 1 {
		t.Fatalf("entity removed early: %d live after 100 ticks", len(ents))
	}
	if ents[0].Y != 470 {
		t.Errorf("entity Y = %v after 100 ticks, expected 470", ents[0].Y)
	}

	removedAt := 0
	for i := 101; i <= 200; i++ {
		w.Tick(20)
		if len(w.Entities()) == 0 {
			removedAt = i
			break
		}
	}
	// Top reaches 600 at tick 126 and passes it at tick 127
	if removedAt != 127 {
		t.Errorf("entity removed at tick %d, expected 127", removedAt)
	}
	if w.IsOver() {
		t.Error("world should not be over")
	}
	if w.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 (bubbles score only on collision)", w.Score())
	}
}

func TestExitedEntityRemovedWithinOneTick(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	addEntity(w, Entity{Kind: KindObstacle, X: 0, Y: 598, VY: 5, Width: 50, Height: 10})

	w.Tick(20)
	if n := len(w.Entities()); n != 0 {
		t.Errorf("entity past the bottom still live: %d entities", n)
	}
	if w.Score() != 0 {
		t.Errorf("obstacle exit changed score to %d", w.Score())
	}
}

func TestCarExitScoresOne(t *testing.T) {
	w := newTestWorld(VariantLanes)
	car := w.newCar(KindCarRight) // Player starts in the left lane
	car.VY = 5
	addEntity(w, car)

	for i := 0; i < 200 && len(w.Entities()) > 0; i++ {
		w.Tick(20)
	}

	if len(w.Entities()) != 0 {
		t.Fatal("car never left the road")
	}
	if w.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", w.Score())
	}
	if w.IsOver() {
		t.Error("world should not be over")
	}
	if n := countEvents(w.DrainEvents(), EventCarPassed); n != 1 {
		t.Errorf("car-passed events = %d, expected 1", n)
	}
}

func TestCollisionPredicateSymmetric(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	pb := w.PlayerBox()

	tests := []struct {
		name     string
		entity   Entity
		expected bool
	}{
		{"inside", Entity{Kind: KindNormal, X: pb.X + 10, Y: pb.Y + 10, Width: 10, Height: 10}, true},
		{"touching top edge", Entity{Kind: KindObstacle, X: pb.X, Y: pb.Y - 30, Width: 30, Height: 30}, true},
		{"touching right edge", Entity{Kind: KindNormal, X: pb.Right(), Y: pb.Y, Width: 10, Height: 10}, true},
		{"one pixel above", Entity{Kind: KindObstacle, X: pb.X, Y: pb.Y - 31, Width: 30, Height: 30}, false},
		{"far left", Entity{Kind: KindNormal, X: 0, Y: pb.Y, Width: 30, Height: 30}, false},
		{"covering", Entity{Kind: KindPowerupSpeed, X: pb.X - 30, Y: pb.Y - 40, Width: 200, Height: 200}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab := w.Collides(tc.entity)
			ba := tc.entity.Box().Overlaps(w.PlayerBox())
			if ab != ba {
				t.Errorf("asymmetric collision: player->e=%v e->player=%v", ab, ba)
			}
			if ab != tc.expected {
				t.Errorf("Collides() = %v, expected %v", ab, tc.expected)
			}
		})
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	cfg := DefaultConfig(VariantBubbles, 300, 600)
	cfg.Seed = 7
	w := Start(cfg)

	var primary, obstacles Cadence
	dirs := []Direction{DirUp, DirDown, DirUp, DirUp, DirDown}
	prev := 0
	for i := 0; i < 5000 && !w.IsOver(); i++ {
		for range primary.Advance(20, w.SpawnRate()) {
			w.SpawnNext()
		}
		for range obstacles.Advance(20, 5000) {
			w.SpawnEntity(KindObstacle)
		}
		if i%7 == 0 {
			w.MovePlayer(dirs[i%len(dirs)])
		}
		w.Tick(20)

		if w.Score() < prev {
			t.Fatalf("score decreased at tick %d: %d -> %d", i, prev, w.Score())
		}
		prev = w.Score()
	}
}

func TestMultiplierDoublesCollectScore(t *testing.T) {
	w := newTestWorld(VariantBubbles)

	addEntity(w, overPlayer(w, KindNormal))
	w.Tick(20)
	if w.Score() != 1 {
		t.Fatalf("Score() = %d after one bubble, expected 1", w.Score())
	}

	w.activatePowerup(PowerupMultiplier)
	addEntity(w, overPlayer(w, KindNormal))
	w.Tick(20)
	if w.Score() != 3 {
		t.Errorf("Score() = %d with multiplier, expected 3", w.Score())
	}

	events := w.DrainEvents()
	if n := countEvents(events, EventCollect); n != 2 {
		t.Errorf("collect events = %d, expected 2", n)
	}
	if last := events[len(events)-1]; last.Points != 2 {
		t.Errorf("last collect Points = %d, expected 2", last.Points)
	}
}

func TestPowerupCollection(t *testing.T) {
	w := newTestWorld(VariantBubbles)

	addEntity(w, overPlayer(w, KindPowerupSpeed))
	w.Tick(20)

	st := w.PowerupState(PowerupSpeed)
	if !st.Active {
		t.Fatal("speed powerup should be active")
	}
	if st.ExpiresAt != 20+10000 {
		t.Errorf("ExpiresAt = %v, expected %v", st.ExpiresAt, 20+10000)
	}
	if len(w.Entities()) != 0 {
		t.Error("powerup entity should be removed")
	}
	if w.Score() != 0 {
		t.Errorf("powerup changed score to %d", w.Score())
	}
	if n := countEvents(w.DrainEvents(), EventPowerupCollected); n != 1 {
		t.Errorf("powerup-collected events = %d, expected 1", n)
	}

	// Speed boost widens the step
	w.MovePlayer(DirUp)
	if got := w.Player().Offset; got != 65 {
		t.Errorf("boosted offset = %v, expected 65", got)
	}

	// Re-collecting refreshes the timer
	w.Tick(1000)
	addEntity(w, overPlayer(w, KindPowerupSpeed))
	w.Tick(20)
	if got := w.PowerupState(PowerupSpeed).ExpiresAt; got != w.Now()+10000 {
		t.Errorf("refreshed ExpiresAt = %v, expected %v", got, w.Now()+10000)
	}
}

func TestPowerupExpiry(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	w.activatePowerup(PowerupMultiplier)

	for i := 0; i < 499; i++ {
		w.Tick(20)
	}
	if !w.PowerupActive(PowerupMultiplier) {
		t.Fatal("multiplier expired early")
	}
	w.Tick(20)
	if w.PowerupActive(PowerupMultiplier) {
		t.Error("multiplier should expire once now >= expiresAt")
	}
	if n := countEvents(w.DrainEvents(), EventPowerupExpired); n != 1 {
		t.Errorf("powerup-expired events = %d, expected 1", n)
	}
}

func TestInvincibilityIgnoresHazards(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	w.activatePowerup(PowerupInvincible)
	addEntity(w, overPlayer(w, KindObstacle))

	w.Tick(20)
	if w.IsOver() {
		t.Fatal("invincible player should survive a hazard")
	}
	if len(w.Entities()) != 1 {
		t.Error("hazard should stay in the world while ignored")
	}

	// Once the shield runs out the same hazard ends the game
	for i := 0; i < 400 && !w.IsOver(); i++ {
		w.Tick(20)
	}
	if !w.IsOver() {
		t.Error("hazard should end the game after invincibility expires")
	}
}

func TestTickIgnoresInvalidDuration(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	w.activatePowerup(PowerupInvincible)

	for _, dt := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, -20} {
		w.Tick(dt)
		if w.Now() != 0 {
			t.Fatalf("Tick(%v) moved the clock to %v", dt, w.Now())
		}
	}

	for i := 0; i < 400; i++ {
		w.Tick(20)
	}
	if w.PowerupActive(PowerupInvincible) {
		t.Errorf("invincibility still active at now=%v", w.Now())
	}
}

func TestEventsCarryCurrentScore(t *testing.T) {
	w := newTestWorld(VariantBubbles)

	w.emit(Event{Type: EventPowerupExpired, Score: 99})
	if ev := w.DrainEvents(); len(ev) != 1 || ev[0].Score != 0 {
		t.Fatalf("events = %+v, expected one event with score 0", ev)
	}

	addEntity(w, overPlayer(w, KindNormal))
	w.Tick(20)
	w.End()
	events := w.DrainEvents()
	if len(events) != 2 {
		t.Fatalf("got %d events, expected collect and game-over", len(events))
	}
	for _, ev := range events {
		if ev.Score != 1 {
			t.Errorf("%s event score = %d, expected 1", ev.Type, ev.Score)
		}
	}
}

func TestHazardEndsGameAndFreezesPlayer(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	addEntity(w, overPlayer(w, KindObstacle))

	w.Tick(20)
	if !w.IsOver() {
		t.Fatal("hazard overlap should end the game")
	}

	offset := w.Player().Offset
	w.MovePlayer(DirUp)
	if w.Player().Offset != offset {
		t.Errorf("MovePlayer after game over moved player: %v -> %v", offset, w.Player().Offset)
	}

	w.End()
	if n := countEvents(w.DrainEvents(), EventGameOver); n != 1 {
		t.Errorf("game-over events = %d, expected 1", n)
	}
}

func TestAllCollisionsProcessed(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	addEntity(w, overPlayer(w, KindNormal))
	addEntity(w, overPlayer(w, KindObstacle))
	addEntity(w, overPlayer(w, KindNormal))

	w.Tick(20)

	if w.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", w.Score())
	}
	if !w.IsOver() {
		t.Error("hazard should end the game even when collectibles resolve in the same tick")
	}
	ents := w.Entities()
	if len(ents) != 1 || ents[0].Kind != KindObstacle {
		t.Errorf("expected only the obstacle to remain, got %v", ents)
	}
}

func TestMovePlayerClamp(t *testing.T) {
	w := newTestWorld(VariantBubbles)

	w.MovePlayer(DirDown)
	if got := w.Player().Offset; got != 20 {
		t.Errorf("offset after Down at minimum = %v, expected 20", got)
	}

	for i := 0; i < 100; i++ {
		w.MovePlayer(DirUp)
	}
	if got := w.Player().Offset; got != 540 {
		t.Errorf("offset after many Up = %v, expected 540", got)
	}

	w.SetPlayerOffset(-50)
	if got := w.Player().Offset; got != 20 {
		t.Errorf("SetPlayerOffset(-50) = %v, expected 20", got)
	}
	w.SetPlayerOffset(333)
	if got := w.Player().Offset; got != 333 {
		t.Errorf("SetPlayerOffset(333) = %v, expected 333", got)
	}
}

func TestLaneSwitching(t *testing.T) {
	w := newTestWorld(VariantLanes)

	if got := w.Player().Lane; got != 0 {
		t.Fatalf("starting lane = %d, expected 0", got)
	}
	if got := w.Player().X; got != 75-20 {
		t.Errorf("player X = %v, expected %v", got, 75-20)
	}

	w.MovePlayer(DirRight)
	w.MovePlayer(DirRight)
	if got := w.Player().Lane; got != 1 {
		t.Errorf("lane after Right = %d, expected 1", got)
	}
	if got := w.Player().X; got != 225-20 {
		t.Errorf("player X = %v, expected %v", got, 225-20)
	}

	w.MovePlayer(DirLeft)
	if got := w.Player().Lane; got != 0 {
		t.Errorf("lane after Left = %d, expected 0", got)
	}

	b := newTestWorld(VariantBubbles)
	x := b.Player().X
	b.MovePlayer(DirLeft)
	if b.Player().X != x {
		t.Error("Left should be ignored in the bubble variant")
	}
}

func TestCarInPlayerLaneEndsGame(t *testing.T) {
	w := newTestWorld(VariantLanes)
	car := w.newCar(KindCarLeft)
	car.Y = w.PlayerBox().Y
	addEntity(w, car)

	w.Tick(20)
	if !w.IsOver() {
		t.Error("car overlapping the player should end the game")
	}
}

func TestObstacleReflectsAtEdges(t *testing.T) {
	w := newTestWorld(VariantBubbles)
	addEntity(w, Entity{Kind: KindObstacle, X: 248, Y: 0, VX: 3, Width: 50, Height: 10})
	addEntity(w, Entity{Kind: KindObstacle, X: 1, Y: 100, VX: -3, Width: 50, Height: 10})

	w.Tick(20)
	ents := w.Entities()

	if ents[0].X != 250 || ents[0].VX >= 0 {
		t.Errorf("right edge: X=%v VX=%v, expected X=250 and VX<0", ents[0].X, ents[0].VX)
	}
	if ents[1].X != 0 || ents[1].VX <= 0 {
		t.Errorf("left edge: X=%v VX=%v, expected X=0 and VX>0", ents[1].X, ents[1].VX)
	}

	w.Tick(20)
	ents = w.Entities()
	if ents[0].X != 247 {
		t.Errorf("reflected X = %v, expected 247", ents[0].X)
	}
}

func TestSpeedScaleAppliesToMovement(t *testing.T) {
	cfg := DefaultConfig(VariantBubbles, 300, 600)
	cfg.Speed = fixedScale(2)
	w := Start(cfg)
	addEntity(w, Entity{Kind: KindNormal, X: 0, Y: 0, VY: 5, Width: 30, Height: 30})

	w.Tick(20)
	if got := w.Entities()[0].Y; got != 10 {
		t.Errorf("Y after one scaled tick = %v, expected 10", got)
	}

	// Half a base tick moves half as far
	w.Tick(10)
	if got := w.Entities()[0].Y; got != 15 {
		t.Errorf("Y after half tick = %v, expected 15", got)
	}
}

func TestDefaultSpeedScaleGrowsWithScore(t *testing.T) {
	w := Start(DefaultConfig(VariantBubbles, 300, 600))
	if got := w.SpeedScale(); got != 1 {
		t.Errorf("SpeedScale() at 0 = %v, expected 1", got)
	}
	w.score = 500
	if got := w.SpeedScale(); got != 2 {
		t.Errorf("SpeedScale() at 500 = %v, expected 2", got)
	}
}

func TestEndReportsNewHighScore(t *testing.T) {
	tests := []struct {
		name     string
		high     int
		score    int
		expected bool
	}{
		{"beats previous", 5, 6, true},
		{"ties previous", 5, 5, false},
		{"below previous", 5, 2, false},
		{"first game", 0, 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig(VariantBubbles, 300, 600)
			cfg.HighScore = tc.high
			w := Start(cfg)
			w.score = tc.score

			if got := w.End(); got != tc.expected {
				t.Errorf("End() = %v, expected %v", got, tc.expected)
			}
			if got := w.End(); got != tc.expected {
				t.Errorf("second End() = %v, expected %v", got, tc.expected)
			}
			if got := w.HighScore(); got != max(tc.high, tc.score) {
				t.Errorf("HighScore() = %d, expected %d", got, max(tc.high, tc.score))
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		cfg := DefaultConfig(VariantBubbles, 300, 600)
		cfg.Seed = seed
		w := Start(cfg)
		var primary, obstacles Cadence
		for i := 0; i < 1500; i++ {
			for range primary.Advance(20, w.SpawnRate()) {
				w.SpawnNext()
			}
			for range obstacles.Advance(20, 5000) {
				w.SpawnEntity(KindObstacle)
			}
			if i%11 == 0 {
				w.MovePlayer(DirUp)
			}
			if i%17 == 0 {
				w.MovePlayer(DirDown)
			}
			w.Tick(20)
		}
		return w.Snapshot().Hash()
	}

	if run(12345) != run(12345) {
		t.Error("same seed and inputs produced different snapshots")
	}
	if run(12345) == run(54321) {
		t.Error("different seeds produced identical snapshots")
	}
}

func TestCadence(t *testing.T) {
	var c Cadence
	for i := 0; i < 4; i++ {
		if n := c.Advance(20, 100); n != 0 {
			t.Fatalf("Advance fired early at step %d", i)
		}
	}
	if n := c.Advance(20, 100); n != 1 {
		t.Errorf("Advance() = %d, expected 1", n)
	}
	if n := c.Advance(250, 100); n != 2 {
		t.Errorf("Advance(250) = %d, expected 2", n)
	}
	if n := c.Advance(1000, 0); n != 0 {
		t.Errorf("zero interval fired %d times", n)
	}

	c.Reset()
	if n := c.Advance(60, 100); n != 0 {
		t.Errorf("Advance after Reset() = %d, expected 0", n)
	}
}
