package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-racer/internal/platform/tui"
)

var flagWaveCount int

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Show the wave progression table",
	Long: `Prints enemy count, spawn interval, health, speed and score for the
first waves.

Examples:
  spaceracer waves
  spaceracer waves --count 20`,
	RunE: runWaves,
}

func init() {
	wavesCmd.Flags().IntVar(&flagWaveCount, "count", 10, "Number of waves to show")
}

func runWaves(_ *cobra.Command, _ []string) error {
	if flagWaveCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", flagWaveCount)
	}
	fmt.Println(tui.WaveTable(flagWaveCount))
	return nil
}
