package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameReset(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	state := g.State()
	if state.Score != 0 {
		t.Errorf("fresh game score = %d, want 0", state.Score)
	}
	if state.Cleared || state.Paused {
		t.Errorf("fresh game state = %+v, want playing", state)
	}

	snap := g.Snapshot()
	if snap.BricksRemaining == 0 {
		t.Error("fresh game has no bricks")
	}
	if snap.Tick != 0 {
		t.Errorf("fresh game tick = %d, want 0", snap.Tick)
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "breakout" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() != "Breakout" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	result := g.Step(frame(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("pause action did not pause the game")
	}

	// Paused game does not advance.
	before := g.Snapshot()
	g.Step(frame())
	g.Step(frame(core.ActionLeft))
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("game state advanced while paused")
	}

	result = g.Step(frame(core.ActionPause))
	if result.State.Paused {
		t.Fatal("pause action did not resume the game")
	}

	// And it advances again after resuming.
	g.Step(frame())
	if g.Snapshot().Tick == after.Tick {
		t.Error("game did not advance after resume")
	}
}

func TestStepAdvancesSimulation(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	before := g.Snapshot()
	g.Step(frame())
	after := g.Snapshot()

	if after.Tick != before.Tick+1 {
		t.Errorf("tick = %d after one step, want %d", after.Tick, before.Tick+1)
	}
	if before.BallX == after.BallX && before.BallY == after.BallY {
		t.Error("ball did not move")
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same input sequence must produce an identical snapshot hash.
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%9 < 4 {
			inputSequence[i].Set(core.ActionRight)
		} else if i%9 < 8 {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		if err := g.Reset(testRuntime()); err != nil {
			t.Fatalf("Reset: %v", err)
		}
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.PaddleX != snap2.PaddleX {
		t.Errorf("determinism failed: paddle positions differ. Run1=%g, Run2=%g", snap1.PaddleX, snap2.PaddleX)
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	h1 := g.Snapshot().Hash()
	g.Step(frame())
	snap := g.Snapshot()
	h2 := snap.Hash()

	if h1 == h2 {
		t.Error("hash unchanged after a simulation step")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("rendered screen missing score HUD")
	}
	if !strings.Contains(out, "Bricks:") {
		t.Error("rendered screen missing brick counter")
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("rendered screen missing the ball")
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("rendered screen missing the paddle")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	g.Step(frame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game missing overlay")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	cfg := testRuntime()
	cfg.ScreenW = 20
	cfg.ScreenH = 10
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	// Stepping is a no-op on a too-small screen.
	before := g.Snapshot()
	g.Step(frame())
	if g.Snapshot().Hash() != before.Hash() {
		t.Error("game advanced despite too-small screen")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("missing too-small message")
	}
}

func TestResizeUpdatesScreenGuard(t *testing.T) {
	g := New()
	cfg := testRuntime()
	cfg.ScreenW = 20
	cfg.ScreenH = 10
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	g.Step(frame())
	if g.Snapshot().Tick != 0 {
		t.Fatal("game advanced on a too-small screen")
	}

	// Enlarging the terminal mid-session unfreezes the game.
	g.SetScreenSize(80, 24)
	g.Step(frame())
	if g.Snapshot().Tick != 1 {
		t.Error("game still frozen after growing past the minimum size")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if strings.Contains(screen.String(), "too small") {
		t.Error("too-small message still rendered after resize")
	}

	// Shrinking raises the guard again.
	g.SetScreenSize(20, 10)
	g.Step(frame())
	if g.Snapshot().Tick != 1 {
		t.Error("game advanced after shrinking below the minimum size")
	}
}

func TestDifficultyPresetChangesSetup(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("hard")
	hard := New()
	if err := hard.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	SetDifficultyPreset("easy")
	easy := New()
	if err := easy.Reset(testRuntime()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if hard.cfg.Paddle.Width >= easy.cfg.Paddle.Width {
		t.Errorf("hard paddle (%g) not narrower than easy (%g)",
			hard.cfg.Paddle.Width, easy.cfg.Paddle.Width)
	}
	if hard.cfg.Ball.Speed <= easy.cfg.Ball.Speed {
		t.Errorf("hard ball (%g) not faster than easy (%g)",
			hard.cfg.Ball.Speed, easy.cfg.Ball.Speed)
	}
}
