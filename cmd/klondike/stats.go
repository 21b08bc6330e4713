package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klondike/internal/platform/tui"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

var flagClear bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Browse recorded results",
	Long: `Show recorded game results: win rates, best games and the
recent history, split by draw count.

Examples:
  klondike stats
  klondike stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results and exit")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results cleared.")
		return
	}

	width, height := termSize()
	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}
