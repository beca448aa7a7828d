package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/google/uuid"
	"github.com/jsphweid/cvtheory/arp"
	"github.com/jsphweid/cvtheory/constants"
	"github.com/jsphweid/cvtheory/midi"
	"github.com/jsphweid/cvtheory/mode"
	"github.com/jsphweid/cvtheory/model"
	"github.com/jsphweid/cvtheory/util"
	"github.com/spf13/cobra"
)

var (
	progressionMode      int
	progressionTonic     int
	progressionDegrees   []int
	progressionInversion int
	progressionRepeat    string
	progressionArp       string
	progressionTempo     float64
	progressionOut       string
)

func init() {
	rootCmd.AddCommand(progressionCmd)
	progressionCmd.Flags().IntVar(&progressionMode, "mode", mode.Ionian, "mode, 0 Ionian - 6 Locrian")
	progressionCmd.Flags().IntVar(&progressionTonic, "tonic", 0, "tonic pitch class, 0-11")
	progressionCmd.Flags().IntSliceVar(&progressionDegrees, "degrees", []int{0, 3, 4, 0}, "scale degrees to step through, 0-6")
	progressionCmd.Flags().IntVar(&progressionInversion, "inversion", 0, "inversion of every triad, 0-2")
	progressionCmd.Flags().StringVar(&progressionRepeat, "repeat", "repeat", "repeat notes: lower, repeat, upper or random")
	progressionCmd.Flags().StringVar(&progressionArp, "arp", "", "arpeggiate: up, down, updown or random (default: block chords)")
	progressionCmd.Flags().Float64Var(&progressionTempo, "tempo", 120, "tempo of the rendered file in bpm")
	progressionCmd.Flags().StringVar(&progressionOut, "out", "", "midi file to write (default: a new file in $CVTHEORY_OUT_DIR)")
}

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Steps through scale degrees of a mode and renders the chords to a midi file",
	RunE: func(cmd *cobra.Command, args []string) error {
		chordList, err := doProgression(model.ProgressionRequestBody{
			Mode:      progressionMode,
			Tonic:     progressionTonic,
			Degrees:   progressionDegrees,
			Inversion: progressionInversion,
			Repeat:    progressionRepeat,
		})
		if err != nil {
			return err
		}

		opts := midi.DefaultRenderOptions()
		opts.Tempo = progressionTempo
		if progressionArp != "" {
			kind, err := arp.ParseKind(progressionArp)
			if err != nil {
				return fault.Wrap(err, fmsg.WithDesc("parse arpeggio", err.Error()))
			}
			opts.Arpeggio = true
			opts.Kind = kind
		}

		out := progressionOut
		if out == "" {
			dir := constants.GetOutDir()
			if err := util.EnsureOutputDir(dir); err != nil {
				return fault.Wrap(err, fmsg.WithDesc("create out dir", "Could not create "+dir))
			}
			out = filepath.Join(dir, uuid.New().String()+".mid")
		}

		for i, c := range chordList {
			fmt.Printf("%-5s %s%-4s inv %d  keys %v\n",
				mode.DegreeName(progressionMode, progressionDegrees[i]), mode.NoteName(c.Root), c.Name, c.Inversion, c.Keys())
		}

		if err := midi.WriteProgression(out, chordList, opts); err != nil {
			return err
		}
		logger.Info("wrote progression", "path", out, "chords", len(chordList))
		return nil
	},
}
