package midi

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/cvtheory/arp"
	"github.com/jsphweid/cvtheory/chord"
	"github.com/jsphweid/cvtheory/mode"
	"github.com/jsphweid/cvtheory/progression"
	"github.com/jsphweid/cvtheory/quantize"
	"github.com/jsphweid/cvtheory/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func noteOnKeys(mf *smf.SMF) []uint8 {
	var keys []uint8
	for _, track := range mf.Tracks {
		for _, evt := range track {
			var ch, key, vel uint8
			if evt.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

func TestVoltsKeyConversion(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.0, KeyToVolts(60))
	assert.InDelta(1.0, KeyToVolts(72), 1e-12)
	assert.InDelta(-5.0, KeyToVolts(0), 1e-12)
	for k := 0; k < 128; k++ {
		assert.Equal(uint8(k), VoltsToKey(KeyToVolts(uint8(k))))
	}
	assert.Equal(uint8(127), VoltsToKey(20))
	assert.Equal(uint8(0), VoltsToKey(-20))
}

func TestQuantizeKey(t *testing.T) {
	q := quantize.New(scale.Default())
	assert := assert.New(t)
	assert.Equal(uint8(64), QuantizeKey(q, 65, 0, scale.MajorPentatonic))
	assert.Equal(uint8(64), QuantizeKey(q, 64, 0, scale.Ionian))
	assert.Equal(uint8(67), QuantizeKey(q, 66, 0, scale.MajorPentatonic))
	assert.Equal(uint8(66), QuantizeKey(q, 66, 2, scale.Ionian))
}

func TestQuantizeSMF(t *testing.T) {
	var track smf.Track
	track.Add(0, gomidi.NoteOn(0, 65, 100))
	track.Add(96, gomidi.NoteOff(0, 65))
	track.Add(0, gomidi.NoteOn(0, 64, 100))
	track.Add(96, gomidi.NoteOff(0, 64))
	track.Close(0)
	mf := smf.New()
	mf.Tracks = append(mf.Tracks, track)

	res, moved := QuantizeSMF(mf, quantize.New(scale.Default()), 0, scale.MajorPentatonic)

	assert := assert.New(t)
	assert.Equal(2, moved)
	assert.Equal([]uint8{64, 64}, noteOnKeys(res))
	assert.Equal(mf.TimeFormat, res.TimeFormat)
	assert.Len(res.Tracks[0], len(track))
	// the source is untouched
	assert.Equal([]uint8{65, 64}, noteOnKeys(mf))
}

func TestRenderBlocks(t *testing.T) {
	table := chord.Default()
	settings := progression.Settings{Selection: progression.SelectMode, Mode: mode.Ionian, Policy: chord.RepeatUnison}
	chords := progression.New(table, settings, progression.Degrees([]int{0, 3}, 0), nil).Render(2)

	mf := Render(chords, DefaultRenderOptions())
	assert.Equal(t, []uint8{60, 64, 67, 65, 69, 72}, noteOnKeys(mf))
}

func TestRenderArpeggio(t *testing.T) {
	table := chord.Default()
	c := progression.NewChord(table)
	opts := DefaultRenderOptions()
	opts.Arpeggio = true
	opts.Kind = arp.UpDown

	mf := Render([]progression.Chord{c}, opts)
	assert.Equal(t, []uint8{60, 64, 67, 64, 60, 64, 67, 64}, noteOnKeys(mf))
}

func TestWriteAndReadProgression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.mid")
	chords := []progression.Chord{progression.NewChord(chord.Default())}
	require.NoError(t, WriteProgression(path, chords, DefaultRenderOptions()))

	mf, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{60, 64, 67}, noteOnKeys(mf))

	out := filepath.Join(t.TempDir(), "snapped.mid")
	moved, err := QuantizeFile(path, out, quantize.New(scale.Default()), 1, scale.Ionian)
	require.NoError(t, err)
	// C# major keeps C (as B#) and moves E and G, on and off
	assert.Equal(t, 4, moved)
}

func TestReadMidiFileErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}
