package cmd

import (
	"fmt"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/chord"
	"github.com/jsphweid/cvtheory/mode"
	"github.com/jsphweid/cvtheory/model"
	"github.com/spf13/cobra"
)

var (
	voicingRoot      int
	voicingInversion int
	voicingRepeat    string
)

func init() {
	rootCmd.AddCommand(voicingCmd)
	voicingCmd.Flags().IntVar(&voicingRoot, "root", 0, "root pitch class, 0-11")
	voicingCmd.Flags().IntVar(&voicingInversion, "inversion", 0, "inversion index")
	voicingCmd.Flags().StringVar(&voicingRepeat, "repeat", "repeat", "repeat notes: lower, repeat, upper or random")
}

var voicingCmd = &cobra.Command{
	Use:   "voicing <chord>",
	Short: "Prints the six output voltages of a chord inversion",
	Long: `Prints the six output voltages of a chord inversion. The chord is
given by name (M, m7, 6/9, ...) or by its row in the chord table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := chords.ByName(args[0])
		if !ok {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fault.Wrap(ErrUnknownChord, fmsg.WithDesc(args[0], fmt.Sprintf("No chord named %q, see `cvtheory chords`", args[0])))
			}
			id = chord.ID(n)
		}

		res, err := doVoicing(model.VoicingRequestBody{
			Chord:     int(id),
			Root:      voicingRoot,
			Inversion: voicingInversion,
			Repeat:    voicingRepeat,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s%s inversion %d\n", mode.NoteName(res.Root), res.Chord, res.Inversion)
		for i := range res.Volts {
			fmt.Printf("  out %d  %+4d  %8.4fV\n", i+1, res.Offsets[i], res.Volts[i])
		}
		return nil
	},
}
