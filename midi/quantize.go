package midi

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/quantize"
	"github.com/jsphweid/cvtheory/scale"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// QuantizeKey snaps a MIDI key to the nearest tone of the scale on root.
func QuantizeKey(q *quantize.Quantizer, key uint8, root int, id scale.ID) uint8 {
	return VoltsToKey(q.Quantize(KeyToVolts(key), root, id).Volts)
}

// QuantizeSMF returns a copy of mf with every note moved into the scale, and
// the number of note messages that changed key.
func QuantizeSMF(mf *smf.SMF, q *quantize.Quantizer, root int, id scale.ID) (*smf.SMF, int) {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	var moved int
	for _, track := range mf.Tracks {
		var newTrack smf.Track
		for _, evt := range track {
			var ch, key, vel uint8
			switch {
			case evt.Message.GetNoteOn(&ch, &key, &vel):
				snapped := QuantizeKey(q, key, root, id)
				if snapped != key {
					moved++
				}
				evt.Message = smf.Message(gomidi.NoteOn(ch, snapped, vel))
			case evt.Message.GetNoteOff(&ch, &key, &vel):
				snapped := QuantizeKey(q, key, root, id)
				if snapped != key {
					moved++
				}
				evt.Message = smf.Message(gomidi.NoteOffVelocity(ch, snapped, vel))
			}
			newTrack = append(newTrack, evt)
		}
		res.Tracks = append(res.Tracks, newTrack)
	}
	return &res, moved
}

// QuantizeFile reads inPath, snaps its notes into the scale and writes the
// result to outPath.
func QuantizeFile(inPath, outPath string, q *quantize.Quantizer, root int, id scale.ID) (int, error) {
	mf, err := ReadMidiFile(inPath)
	if err != nil {
		return 0, err
	}
	res, moved := QuantizeSMF(mf, q, root, id)
	if err := res.WriteFile(outPath); err != nil {
		return 0, fault.Wrap(err, fmsg.WithDesc("write midi file", "Could not write "+outPath))
	}
	return moved, nil
}
