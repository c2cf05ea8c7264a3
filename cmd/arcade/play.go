package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akulagin/mini-arcade/internal/core"
	"github.com/akulagin/mini-arcade/internal/games/circuit"
	"github.com/akulagin/mini-arcade/internal/games/dodge"
	"github.com/akulagin/mini-arcade/internal/platform/tui"
	"github.com/akulagin/mini-arcade/internal/registry"
	"github.com/akulagin/mini-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right - Move (dodge)
  Mouse click     - Toggle wires and switch (circuit)
  P               - Pause
  R               - Restart (after game over) or reset the board
  Q/Ctrl+C        - Quit

Difficulty options (dodge only):
  easy   - Slow speed ramp, lower cap
  normal - Default speed ramp
  hard   - Fast speed ramp, higher cap
  fixed  - No progression, constant speed

Examples:
  arcade play circuit
  arcade play dodge --difficulty easy
  arcade play dodge --config ./my-dodge.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		log.Errorf("unknown game %q", gameID)
		log.Print("Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "circuit":
		circuit.SetConfigPath(flagConfig)
	case "dodge":
		dodge.SetConfigPath(flagConfig)
		dodge.SetDifficultyPreset(flagDifficulty)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		log.Fatalf("creating game: %v", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warnf("could not open scores database: %v", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		log.Fatalf("running game: %v", runErr)
	}
}
