// arena generates and inspects procedurally built block arenas.
//
// Usage:
//
//	arena gen <id>           - Print a level summary
//	arena preview <id>       - Draw a level in the terminal
//	arena check              - Verify generated levels over many seeds
//	arena export <id>        - Dump a level as YAML
//	arena view               - Browse levels interactively
//	arena progress           - Show or update saved progress
//	arena board [id]         - Fastest completions per level
//	arena serve              - Start SSH server for remote browsing
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible levels
//	--config <path>       - Custom arena config YAML
//	--difficulty <preset> - easy, normal or hard
//	--db <path>           - Set database path (default: ~/.arena/progress.db)
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarena/internal/cache"
	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/level"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagProfile    string
	flagVerbose    bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Block Arena - procedural arena generator",
	Long: `Block Arena builds symmetric arenas of destructible blocks for every
level id and lets you inspect, verify and browse them from the terminal.

Available commands:
  gen       - Print a level summary
  preview   - Draw a level in the terminal
  check     - Verify generated levels over many seeds
  export    - Dump a level as YAML
  view      - Interactive level browser
  progress  - Show or update saved progress
  board     - Fastest completions per level
  serve     - Start SSH server for remote browsing

Examples:
  arena gen 12 --seed 42
  arena preview 20 --difficulty hard
  arena check --from 1 --to 50 --seeds 20
  arena view
  arena serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arena",
		})
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", defaultProfile(), "Progress profile name")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

func defaultProfile() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadArenaConfig loads the config named by --config and applies --difficulty.
func loadArenaConfig() config.ArenaConfig {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyArenaPreset(&cfg, preset)
	logger.Debug("arena config loaded", "path", flagConfig, "difficulty", preset, "tiers", len(cfg.Tiers))
	return cfg
}

// newSynthesizer builds a synthesizer from the global flags.
func newSynthesizer() *level.Synthesizer {
	synth, err := level.NewSynthesizer(loadArenaConfig())
	if err != nil {
		fail("%v", err)
	}
	return synth
}

// resolveSeed returns --seed, or a clock seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	seed := time.Now().UnixNano()
	logger.Debug("using clock seed", "seed", seed)
	return seed
}

// newLevelCache returns a cache over synth seeded from the global flags.
func newLevelCache(synth *level.Synthesizer) *cache.LevelCache {
	return cache.New(synth, rand.New(rand.NewSource(resolveSeed())), logger)
}

// parseLevelID parses a positional level id.
func parseLevelID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		fail("invalid level id %q (expected a positive integer)", arg)
	}
	return id
}
