package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/klondike"
	"github.com/vovakirdan/tui-klondike/internal/platform/tui"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

var (
	flagConfig   string
	flagDraw     int
	flagLoad     string
	flagSavePath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Deal and play a game",
	Long: `Deal a game and play it with the keyboard.

Controls:
  Left/Right  - Move the cursor across the piles
  Enter/Space - Pick up a card, drop it on the cursor pile
  Up/Down     - Grow/shrink a picked-up tableau run
  d           - Draw from the stock
  f           - Send the cursor pile's top card to a foundation
  u           - Undo
  h           - Hint
  n           - New deal
  Ctrl+S      - Save the game
  Q/Ctrl+C    - Quit

Examples:
  klondike play
  klondike play --draw 3
  klondike play --seed 42
  klondike play --config ./my-rules.yaml
  klondike play --load ~/.klondike/saves/game.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
	playCmd.Flags().IntVar(&flagDraw, "draw", 0, "Cards per stock draw: 1 or 3 (overrides config)")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Resume a saved game from this file")
	playCmd.Flags().StringVar(&flagSavePath, "save", "~/.klondike/saves/game.yaml", "Where Ctrl+S writes the game")
}

func runPlay(cmd *cobra.Command, args []string) {
	game, err := setUpGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	savePath := expandHome(flagSavePath)
	if savePath != "" {
		//nolint:errcheck // Best-effort; Ctrl+S reports the real failure
		os.MkdirAll(filepath.Dir(savePath), 0o755)
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game, store, savePath)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// setUpGame resumes a save or deals a fresh game from the configured
// rules and flags.
func setUpGame() (*klondike.Game, error) {
	if flagLoad != "" {
		return klondike.LoadFile(expandHome(flagLoad))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	rules, err := cfg.ToRules()
	if err != nil {
		return nil, err
	}
	if flagDraw != 0 {
		rules.DrawCount = flagDraw
		if err := rules.Validate(); err != nil {
			return nil, err
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return klondike.NewGame(rules, seed)
}

// termSize returns the terminal dimensions, with sane fallbacks.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
