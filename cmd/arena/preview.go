package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
	flagPlain  bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <id>",
	Short: "Draw a level in the terminal",
	Long: `Rasterize a level to colored text. The preview fills the terminal
unless --width and --height are given.

Legend:
  █  wall
  ▓  movable block
  @  spawn point

Examples:
  arena preview 5
  arena preview 30 --width 120 --height 40
  arena preview 12 --plain > level12.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagWidth, "width", 0, "Preview width in cells (0 = terminal width)")
	previewCmd.Flags().IntVar(&flagHeight, "height", 0, "Preview height in cells (0 = terminal height)")
	previewCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
}

func runPreview(_ *cobra.Command, args []string) {
	id := parseLevelID(args[0])
	synth := newSynthesizer()
	levels := newLevelCache(synth)

	lvl, err := levels.Get(id)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h - 2 // Leave room for the prompt
	}
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	screen := core.NewScreen(width, max(height, 1))
	tui.Raster(lvl, synth.Config().World, screen)

	if flagPlain {
		fmt.Println(screen.String())
		return
	}
	fmt.Println(tui.RenderScreen(screen))
}
