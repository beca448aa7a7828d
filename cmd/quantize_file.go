package cmd

import (
	"github.com/jsphweid/cvtheory/midi"
	"github.com/jsphweid/cvtheory/scale"
	"github.com/spf13/cobra"
)

var (
	quantizeFileRoot  int
	quantizeFileScale int
)

func init() {
	rootCmd.AddCommand(quantizeFileCmd)
	quantizeFileCmd.Flags().IntVar(&quantizeFileRoot, "root", 0, "root pitch class, 0-11")
	quantizeFileCmd.Flags().IntVar(&quantizeFileScale, "scale", 1, "scale id (see `cvtheory scales`)")
}

var quantizeFileCmd = &cobra.Command{
	Use:   "quantize-file <in.mid> <out.mid>",
	Short: "Snaps every note of a midi file into a scale",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if quantizeFileRoot < 0 || quantizeFileRoot > 11 {
			return outOfRange("root", quantizeFileRoot, 11)
		}
		id := scale.ID(quantizeFileScale)
		moved, err := midi.QuantizeFile(args[0], args[1], quantizer, quantizeFileRoot, id)
		if err != nil {
			return err
		}
		logger.Info("quantized midi file", "in", args[0], "out", args[1], "scale", scales.Name(id), "moved", moved)
		return nil
	},
}
