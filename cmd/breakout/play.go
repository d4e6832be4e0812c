package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
	"github.com/vovakirdan/tui-breakout/internal/platform/audio"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  A/Left/H   - Move paddle left
  D/Right/L  - Move paddle right
  P/Esc      - Pause
  R          - Restart (after clearing the board)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider paddle, slower ball
  normal - Default arena settings
  hard   - Narrow paddle, faster ball

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml
  breakout play --mute`,
	Run: runPlay,
}

func init() {
	registerPlayFlags(playCmd)
}

// registerPlayFlags wires the play flags onto a command. The root command
// shares them so plain 'breakout' starts a game directly.
func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable collision sounds")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g := game.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Set up sound unless muted; a missing audio device is not fatal
	var cue *audio.Cue
	if !flagMute {
		cue = audio.NewCue()
		if audioErr := cue.Initialize(); audioErr != nil {
			cue = nil
		}
	}

	runErr := tui.Run(g, store, cue, cfg)

	if cue != nil {
		cue.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
