// klondike is a TUI Klondike Solitaire for the terminal.
//
// Usage:
//
//	klondike play            - Deal and play a game
//	klondike stats           - Browse recorded results
//	klondike serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Deal seed for reproducible games
//	--db <path>     - Results database path (default: ~/.klondike/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "klondike",
	Short: "Klondike Solitaire in your terminal",
	Long: `Klondike Solitaire played entirely with the keyboard.

Available commands:
  play     - Deal and play a game
  stats    - Browse recorded results
  serve    - Start SSH server for remote play

Examples:
  klondike play
  klondike play --draw 3
  klondike play --seed 42
  klondike play --load ~/.klondike/saves/game.yaml
  klondike stats
  klondike serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Deal seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.klondike/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// expandHome resolves a leading ~ in a path.
func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
