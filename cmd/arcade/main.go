// arcade is the Pocket Bounty arcade: a terminal platform for retro-style
// mini games that pay out Pocket Bounty points based on the final score.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade balance           - Show the wallet balance
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pocketbounty/arcade.db)
//	--config <path> - Path to a custom arcade config YAML
//	--demo          - Force the offline demo wallet
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/storage"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/wallet"

	// Import games to register them
	_ "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/breakout"
	_ "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/connect4"
	_ "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/invaders"
	_ "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/memory"
	_ "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/mole"
	_ "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/simon"
	_ "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/snake"
	_ "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/games/t2048"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDemo   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pocket Bounty Arcade - Play for points in your terminal",
	Long: `Pocket Bounty Arcade is a terminal gaming platform where every game
pays out Pocket Bounty points based on your final score.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  balance  - Show the wallet balance

Examples:
  arcade list
  arcade play snake
  arcade menu
  arcade serve --ssh :2222 --http :8080
  arcade scores snake
  arcade balance`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pocketbounty/arcade.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arcade config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "Use the offline demo wallet even if an API is configured")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(balanceCmd)
}

// openStoreOrWarn opens the scores database, returning nil if it fails.
// Games still run without persistence.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openWallet builds a wallet client from the resolved config. A broken
// config falls back to the offline demo wallet so games stay playable.
func openWallet() wallet.Client {
	cfg, err := config.LoadWallet(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: wallet config: %v\n", err)
		cfg.Demo = true
	}
	if flagDemo {
		cfg.Demo = true
	}
	return wallet.New(cfg)
}
