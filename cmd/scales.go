package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(chordsCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Lists the scale table",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range scaleInfos() {
			fmt.Printf("%2d  %-17s %v\n", s.Id, s.Name, s.Degrees)
		}
	},
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Lists the chord table with every inversion",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range chordInfos() {
			fmt.Printf("%2d  %-6s %v\n", c.Id, c.Name, c.Formula)
			for i, inv := range c.Inversions {
				fmt.Printf("      inv %d  %v\n", i, inv)
			}
		}
	},
}
