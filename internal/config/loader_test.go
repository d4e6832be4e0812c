package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBreakoutEmbeddedDefault(t *testing.T) {
	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}

	want := DefaultBreakoutConfig()
	if cfg.Arena != want.Arena {
		t.Errorf("embedded arena = %+v, want %+v", cfg.Arena, want.Arena)
	}
	if cfg.Paddle != want.Paddle {
		t.Errorf("embedded paddle = %+v, want %+v", cfg.Paddle, want.Paddle)
	}
	if cfg.Ball != want.Ball {
		t.Errorf("embedded ball = %+v, want %+v", cfg.Ball, want.Ball)
	}
	if cfg.Bricks != want.Bricks {
		t.Errorf("embedded bricks = %+v, want %+v", cfg.Bricks, want.Bricks)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	custom := `
arena:
  left: -100
  right: 100
  bottom: -50
  top: 50
  wall_thickness: 2
paddle:
  width: 30
  height: 4
  speed: 80
  padding: 2
  floor_gap: 10
ball:
  radius: 3
  speed: 60
  start_x: 0
  start_y: -10
  dir_x: 1
  dir_y: -1
bricks:
  width: 20
  height: 4
  gap: 5
  paddle_gap: 40
  ceiling_gap: 5
  side_gap: 5
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}

	if cfg.Arena.Left != -100 || cfg.Arena.Right != 100 {
		t.Errorf("custom arena bounds not loaded: %+v", cfg.Arena)
	}
	if cfg.Paddle.Width != 30 {
		t.Errorf("custom paddle width = %g, want 30", cfg.Paddle.Width)
	}
	if cfg.Ball.Speed != 60 {
		t.Errorf("custom ball speed = %g, want 60", cfg.Ball.Speed)
	}
}

func TestLoadBreakoutMissingCustomPath(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadBreakoutMalformedCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena: [not a map"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadBreakout(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	base := DefaultBreakoutConfig()

	easy := base
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Paddle.Width <= base.Paddle.Width {
		t.Error("easy preset should widen the paddle")
	}
	if easy.Ball.Speed >= base.Ball.Speed {
		t.Error("easy preset should slow the ball")
	}

	hard := base
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Paddle.Width >= base.Paddle.Width {
		t.Error("hard preset should narrow the paddle")
	}
	if hard.Ball.Speed <= base.Ball.Speed {
		t.Error("hard preset should speed up the ball")
	}

	normal := base
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should leave the config unchanged")
	}

	unknown := base
	ApplyBreakoutPreset(&unknown, "nightmare")
	if unknown != base {
		t.Error("unknown preset should leave the config unchanged")
	}
}
