package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/level"
)

var flagShowBlocks bool

var genCmd = &cobra.Command{
	Use:   "gen <id>",
	Short: "Print a level summary",
	Long: `Generate a level and print its block counts, completion threshold,
time budget and colors.

Examples:
  arena gen 1
  arena gen 25 --seed 42 --blocks`,
	Args: cobra.ExactArgs(1),
	Run:  runGen,
}

func init() {
	genCmd.Flags().BoolVar(&flagShowBlocks, "blocks", false, "Also list every block")
}

func runGen(_ *cobra.Command, args []string) {
	id := parseLevelID(args[0])
	levels := newLevelCache(newSynthesizer())

	lvl, err := levels.Get(id)
	if err != nil {
		fail("%v", err)
	}

	fmt.Print(formatSummary(lvl))
	if flagShowBlocks {
		fmt.Println()
		fmt.Println(formatBlocks(lvl))
	}
}

// swatch renders a color sample followed by its hex code.
func swatch(c core.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██") + " " + c.Hex()
}

func formatSummary(lvl *level.Level) string {
	movable, walls := lvl.Counts()
	label := lipgloss.NewStyle().Bold(true).Width(12)

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(lvl.AccentColor.Hex()))
	fmt.Fprintf(&b, "%s\n\n", title.Render(fmt.Sprintf("Level %d", lvl.ID)))
	fmt.Fprintf(&b, "%s%d (%d movable, %d walls)\n", label.Render("Blocks"), len(lvl.Blocks), movable, walls)
	fmt.Fprintf(&b, "%s%.2f\n", label.Render("Threshold"), lvl.PointThreshold)
	fmt.Fprintf(&b, "%s%s\n", label.Render("Time"), lvl.Duration)
	fmt.Fprintf(&b, "%s%s\n", label.Render("Accent"), swatch(lvl.AccentColor))
	fmt.Fprintf(&b, "%s%s\n", label.Render("Background"), swatch(lvl.BackColor))
	return b.String()
}

func formatBlocks(lvl *level.Level) string {
	rows := make([][]string, len(lvl.Blocks))
	for i, blk := range lvl.Blocks {
		kind := "movable"
		if blk.IsWall() {
			kind = "wall"
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			kind,
			fmt.Sprintf("%.1f, %.1f", blk.Center.X, blk.Center.Y),
			fmt.Sprintf("%gx%g", blk.Size.X, blk.Size.Y),
			swatch(blk.Color),
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Kind", "Center", "Size", "Color").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
