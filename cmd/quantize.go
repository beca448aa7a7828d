package cmd

import (
	"fmt"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/codec"
	"github.com/jsphweid/cvtheory/mode"
	"github.com/jsphweid/cvtheory/model"
	"github.com/jsphweid/cvtheory/scale"
	"github.com/spf13/cobra"
)

var (
	quantizeRoot    int
	quantizeScale   int
	quantizeRootCV  float64
	quantizeScaleCV float64
)

func init() {
	rootCmd.AddCommand(quantizeCmd)
	quantizeCmd.Flags().IntVar(&quantizeRoot, "root", 0, "root pitch class, 0-11")
	quantizeCmd.Flags().IntVar(&quantizeScale, "scale", 1, "scale id (see `cvtheory scales`)")
	quantizeCmd.Flags().Float64Var(&quantizeRootCV, "root-cv", 0, "root as a 0-10V control voltage, overrides --root")
	quantizeCmd.Flags().Float64Var(&quantizeScaleCV, "scale-cv", 0, "scale as a 0-10V control voltage, overrides --scale")
}

var quantizeCmd = &cobra.Command{
	Use:   "quantize <volts>...",
	Short: "Snaps 1V/oct voltages to the nearest tone of a scale",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			volts, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fault.Wrap(err, fmsg.WithDesc("parse volts", fmt.Sprintf("%q is not a voltage", arg)))
			}

			var res model.QuantizeResponse
			if cmd.Flags().Changed("root-cv") || cmd.Flags().Changed("scale-cv") {
				rootCV, scaleCV := quantizeRootCV, quantizeScaleCV
				if !cmd.Flags().Changed("root-cv") {
					rootCV = codec.VoltsFromKey(quantizeRoot)
				}
				if !cmd.Flags().Changed("scale-cv") {
					scaleCV = codec.VoltsFromScale(scale.ID(quantizeScale))
				}
				res = quantizeResponse(quantizer.QuantizeVolts(volts, rootCV, scaleCV))
			} else {
				res, err = doQuantize(model.QuantizeRequestBody{Volts: volts, Root: quantizeRoot, Scale: quantizeScale})
				if err != nil {
					return err
				}
			}

			fmt.Printf("%8.4f -> %8.4f  %-2s degree %d  (%s on %s)\n",
				volts, res.Volts, res.NoteName, res.Degree, res.ScaleName, mode.NoteName(res.Root))
		}
		return nil
	},
}
