package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarena/internal/progress"
	"github.com/vovakirdan/blockarena/internal/storage"
)

var (
	flagRunLevel   int
	flagRunApples  int
	flagRunElapsed time.Duration
	flagRunFailed  bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or update saved progress",
	Long: `Show the saved progress of --profile. Use the subcommands to record
an attempt or start over.

Examples:
  arena progress
  arena progress complete --level 3 --apples 2 --elapsed 41s
  arena progress reset --profile guest`,
	Args: cobra.NoArgs,
	Run:  runProgressShow,
}

var progressCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Record an attempt at a level",
	Args:  cobra.NoArgs,
	Run:   runProgressComplete,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress of a profile",
	Args:  cobra.NoArgs,
	Run:   runProgressReset,
}

func init() {
	progressCompleteCmd.Flags().IntVar(&flagRunLevel, "level", 0, "Level id (0 = current level)")
	progressCompleteCmd.Flags().IntVar(&flagRunApples, "apples", 0, "Golden apples collected")
	progressCompleteCmd.Flags().DurationVar(&flagRunElapsed, "elapsed", 0, "Time spent on the level")
	progressCompleteCmd.Flags().BoolVar(&flagRunFailed, "failed", false, "Record a failed attempt")

	progressCmd.AddCommand(progressCompleteCmd)
	progressCmd.AddCommand(progressResetCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	return store
}

// loadOrNew returns the saved progress of --profile, or a fresh one.
func loadOrNew(store *storage.Store) *progress.Progress {
	p, err := store.LoadProgress(flagProfile)
	if errors.Is(err, storage.ErrNoProgress) {
		return progress.New()
	}
	if err != nil {
		fail("%v", err)
	}
	return p
}

func runProgressShow(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	p := loadOrNew(store)
	stats, err := store.ProfileStats(flagProfile)
	if err != nil {
		fail("%v", err)
	}

	label := lipgloss.NewStyle().Bold(true).Width(16)
	fmt.Println(lipgloss.NewStyle().Bold(true).Render("Profile " + flagProfile))
	fmt.Println()
	fmt.Printf("%s%d\n", label.Render("Current level"), p.CurrentLevel)
	fmt.Printf("%s%d\n", label.Render("Levels cleared"), p.CompletedCount())
	fmt.Printf("%s%d\n", label.Render("Golden apples"), p.GoldenApples)
	fmt.Printf("%s%d (%d completed)\n", label.Render("Runs"), stats.Runs, stats.Completed)
	fmt.Printf("%s%s\n", label.Render("Time played"), stats.TotalElapsed.Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("%s%s\n", label.Render("Last played"), stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

func runProgressComplete(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	p := loadOrNew(store)
	run := progress.Run{
		LevelID:   flagRunLevel,
		Apples:    flagRunApples,
		Elapsed:   flagRunElapsed,
		Completed: !flagRunFailed,
	}
	if run.LevelID == 0 {
		run.LevelID = p.CurrentLevel
	}
	if run.LevelID < 1 || run.Apples < 0 || run.Elapsed < 0 {
		fail("invalid run: level %d, apples %d, elapsed %s", run.LevelID, run.Apples, run.Elapsed)
	}

	id, err := store.RecordRun(flagProfile, run)
	if err != nil {
		fail("%v", err)
	}
	p.Apply(run)
	if err := store.SaveProgress(flagProfile, p); err != nil {
		fail("%v", err)
	}

	logger.Debug("run recorded", "id", id, "profile", flagProfile, "level", run.LevelID)
	if run.Completed {
		fmt.Printf("Level %d completed in %s. Next level: %d\n", run.LevelID, run.Elapsed, p.CurrentLevel)
		return
	}
	fmt.Printf("Attempt at level %d recorded\n", run.LevelID)
}

func runProgressReset(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if err := store.ResetProfile(flagProfile); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Progress of %s reset\n", flagProfile)
}
