package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockarena/internal/platform/tui"
	"github.com/vovakirdan/blockarena/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board [id]",
	Short: "Fastest completions per level",
	Long: `Show the fastest recorded completions of a level across all
profiles. Use ←/→ to switch levels.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, args []string) {
	id := 1
	if len(args) == 1 {
		id = parseLevelID(args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Debug("opening leaderboard", "level", id, "db", flagDBPath)
	if err := tui.RunScoreboard(store, id, width, height); err != nil {
		fail("%v", err)
	}
}
