package cmd

import (
	"fmt"
	"os"

	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/constants"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "cvtheory",
	Short: "Scale quantizer, chord voicings and modal harmony for CV sequencers",
	Long: `cvtheory quantizes control voltages to scales, voices chords with
inversions and repeat notes, and resolves scale degrees of the seven modes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return InitLogger(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if issue := fmsg.GetIssue(err); issue != "" {
			fmt.Fprintln(os.Stderr, issue)
		}
	}
	cobra.CheckErr(err)
}
