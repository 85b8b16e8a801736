// brickfall is a terminal Breakout with special bricks, plus Tetris,
// playable locally or over SSH.
//
// Usage:
//
//	brickfall list              - List available games
//	brickfall play <game>       - Play a game
//	brickfall menu              - Start menu to pick games interactively
//	brickfall serve             - Start SSH server for remote play
//	brickfall scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60, env BRICKFALL_FPS)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.brickfall/scores.db, env BRICKFALL_DB)
//	--log-level <level>  - debug, info, warn or error (env BRICKFALL_LOG_LEVEL)
//	--log-file <path>    - Write logs to a file while a game owns the terminal
//
// A .env file in the working directory is loaded before flags are parsed.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/brickfall/internal/games/breakout"
	_ "github.com/vovakirdan/brickfall/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	// A missing .env is normal
	_ = godotenv.Load()
	registerGlobalFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickfall",
	Short: "Brickfall - Breakout with special bricks, in your terminal",
	Long: `Brickfall is a terminal Breakout with special bricks (speed-up,
shrink, extend, split, area clear) and a combo score, plus Tetris.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  brickfall list
  brickfall play breakout
  brickfall play tetris --difficulty hard
  brickfall menu
  brickfall serve --ssh :2222
  brickfall scores breakout`,
	SilenceUsage: true,
}

// registerGlobalFlags binds persistent flags, with defaults taken from the
// environment after .env has been loaded.
func registerGlobalFlags() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envInt("BRICKFALL_FPS", 60), "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envString("BRICKFALL_DB", "~/.brickfall/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envString("BRICKFALL_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envString("BRICKFALL_LOG_FILE", ""), "Log file for interactive play (default: discard)")
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
