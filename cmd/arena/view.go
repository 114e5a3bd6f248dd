package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/platform/tui"
	"github.com/vovakirdan/blockarena/internal/storage"
)

var flagStart int

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Interactive level browser",
	Long: `Browse generated levels in a full-screen viewer. Without --start the
viewer opens at the current level of --profile.

Controls:
  ←/→ h/l   Previous / next level
  g         First level
  s         Save a text screenshot
  ?         Toggle help
  q         Quit`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	viewCmd.Flags().IntVar(&flagStart, "start", 0, "Level to open first (0 = saved progress)")
}

func runView(_ *cobra.Command, _ []string) {
	synth := newSynthesizer()
	levels := newLevelCache(synth)

	start := flagStart
	if start < 1 {
		start = savedLevel()
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	if err := tui.Run(levels, synth.Config().World, cfg, start); err != nil {
		fail("%v", err)
	}
}

// savedLevel returns the current level of --profile, or 1.
func savedLevel() int {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database", "error", err)
		return 1
	}
	defer store.Close()

	p, err := store.LoadProgress(flagProfile)
	if err != nil {
		logger.Debug("no saved progress", "profile", flagProfile, "error", err)
		return 1
	}
	return p.CurrentLevel
}
