package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Dump a level as YAML",
	Long: `Generate a level and write it as YAML to stdout or --output.

Examples:
  arena export 7 --seed 1
  arena export 40 -o level40.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to file instead of stdout")
}

func runExport(_ *cobra.Command, args []string) {
	id := parseLevelID(args[0])
	levels := newLevelCache(newSynthesizer())

	lvl, err := levels.Get(id)
	if err != nil {
		fail("%v", err)
	}

	data, err := yaml.Marshal(lvl)
	if err != nil {
		fail("cannot encode level: %v", err)
	}

	if flagOutput == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
		fail("cannot write %s: %v", flagOutput, err)
	}
	fmt.Printf("Level %d written to %s\n", id, flagOutput)
}
