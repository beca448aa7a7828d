package cmd

import (
	"fmt"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/codec"
	"github.com/jsphweid/cvtheory/mode"
	"github.com/jsphweid/cvtheory/model"
	"github.com/spf13/cobra"
)

var resolveModeCV float64

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Float64Var(&resolveModeCV, "mode-cv", 0, "mode as a 0-10V control voltage, overrides the mode argument")
}

func atoiArg(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fault.Wrap(err, fmsg.WithDesc("parse "+name, fmt.Sprintf("%s must be a number, got %q", name, arg)))
	}
	return n, nil
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <mode> <tonic> [degree]",
	Short: "Resolves scale degrees of a mode to root and triad quality",
	Long: `Resolves scale degrees of a mode to root and triad quality. Modes are
0 Ionian through 6 Locrian, tonic is a pitch class 0-11 and degree is 0-6.
Without a degree all seven are listed.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := atoiArg("mode", args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("mode-cv") {
			m = codec.ModeFromVolts(resolveModeCV)
		}
		tonic, err := atoiArg("tonic", args[1])
		if err != nil {
			return err
		}

		degrees := []int{0, 1, 2, 3, 4, 5, 6}
		if len(args) == 3 {
			d, err := atoiArg("degree", args[2])
			if err != nil {
				return err
			}
			degrees = []int{d}
		}

		fmt.Printf("%s %s\n", mode.NoteName(tonic), mode.Name(m))
		for _, d := range degrees {
			res, err := doResolve(model.ResolveRequestBody{Mode: m, Tonic: tonic, Degree: d})
			if err != nil {
				return err
			}
			fmt.Printf("  %-5s %-2s %s\n", res.DegreeName, res.RootName, res.Quality)
		}
		return nil
	},
}
