package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/breakout"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/connect4"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/invaders"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/memory"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/mole"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/simon"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/snake"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/t2048"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/platform/tui"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Move
  Space       - Fire / flip / whack
  1-9         - Pick a pad, hole or column
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back (from game over or pause)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower pace, gentler progression
  normal - Default pace
  hard   - Faster pace from the start

Examples:
  arcade play snake
  arcade play mole --difficulty hard
  arcade play 2048 --seed 42
  arcade play simon --config ./my-arcade.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags pushes the config path and difficulty preset into the
// selected game's package before the instance is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "2048":
		t2048.SetConfigPath(flagConfig)
	case "breakout":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
	case "connect4":
		connect4.SetConfigPath(flagConfig)
	case "invaders":
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(flagDifficulty)
	case "memory":
		memory.SetConfigPath(flagConfig)
		memory.SetDifficultyPreset(flagDifficulty)
	case "mole":
		mole.SetConfigPath(flagConfig)
		mole.SetDifficultyPreset(flagDifficulty)
	case "simon":
		simon.SetConfigPath(flagConfig)
		simon.SetDifficultyPreset(flagDifficulty)
	case "snake":
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	applyGameFlags(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial screen
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStoreOrWarn()
	client := openWallet()

	// Run the game
	runErr := tui.Run(game, store, client, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
