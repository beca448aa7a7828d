package midi

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/constants"
	"github.com/jsphweid/cvtheory/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// smf can panic on truncated files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fault.Wrap(fmt.Errorf("%v", r), fmsg.WithDesc("parse midi file", "The file is not a valid MIDI file."))
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fault.Wrap(err, fmsg.WithDesc("read midi file", "Could not read "+filepath))
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fault.Wrap(err, fmsg.WithDesc("parse midi file", "The file is not a valid MIDI file."))
	}

	return res, nil
}

// KeyToVolts maps a MIDI key to 1V/oct with middle C at 0V.
func KeyToVolts(key uint8) float64 {
	return float64(int(key)-constants.ReferenceNote) * constants.SemitoneVolts
}

// VoltsToKey is the inverse of KeyToVolts, rounded and clamped to 0-127.
func VoltsToKey(volts float64) uint8 {
	semis := int(math.Round(volts * 12))
	return uint8(util.Clamp(semis+constants.ReferenceNote, 0, 127))
}
