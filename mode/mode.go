// Package mode resolves scale degrees of the seven diatonic modes to a root
// pitch class and triad quality. Pitch arithmetic happens on the circle of
// fifths: every note of a diatonic mode lies within six fifths of its tonic.
package mode

import (
	"github.com/jsphweid/cvtheory/model"
	"github.com/jsphweid/cvtheory/util"
)

const (
	Ionian = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	NumModes
)

const NumDegrees = 7

var modeNames = [NumModes]string{"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian"}

// Fifths from the major-scale tonic to each of its degrees, twice over so
// mode+degree never needs wrapping.
var tonicIndex = [NumModes + NumDegrees]int{0, 2, 4, -1, 1, 3, 5, 0, 2, 4, -1, 1, 3, 5}

// Where a mode's parent major tonic sits relative to the mode's own tonic,
// shifted by six so the sum with tonicIndex is a noteIndex position.
var scaleIndex = [NumModes]int{6, 4, 2, 7, 5, 3, 1}

// Pitch classes by fifths from Gb to F#, C in the middle.
var noteIndex = [13]int{6, 1, 8, 3, 10, 5, 0, 7, 2, 9, 4, 11, 6}

var ModeQuality = [NumModes][NumDegrees]model.Quality{
	{model.Major, model.Minor, model.Minor, model.Major, model.Major, model.Minor, model.Diminished},
	{model.Minor, model.Minor, model.Major, model.Major, model.Minor, model.Diminished, model.Major},
	{model.Minor, model.Major, model.Major, model.Minor, model.Diminished, model.Major, model.Minor},
	{model.Major, model.Major, model.Minor, model.Diminished, model.Major, model.Minor, model.Minor},
	{model.Major, model.Minor, model.Diminished, model.Major, model.Minor, model.Minor, model.Major},
	{model.Minor, model.Diminished, model.Major, model.Minor, model.Minor, model.Major, model.Major},
	{model.Diminished, model.Major, model.Minor, model.Minor, model.Major, model.Major, model.Minor},
}

// ModeOffset is each degree's accidental against the major scale, used for
// naming only.
var ModeOffset = [NumModes][NumDegrees]int{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, -1, 0, 0, 0, -1},
	{0, -1, -1, 0, 0, -1, -1},
	{0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, -1},
	{0, 0, -1, 0, 0, -1, -1},
	{0, -1, -1, 0, -1, -1, -1},
}

// Resolve returns the root pitch class and triad quality of degree within
// mode on tonic. Out of range mode and degree are clamped.
func Resolve(mode, tonic, degree int) (int, model.Quality) {
	mode, degree = Clamp(mode, degree)
	note := noteIndex[scaleIndex[mode]+tonicIndex[mode+degree]]
	return util.Mod(tonic+note, 12), ModeQuality[mode][degree]
}

// Clamp pins mode and degree into range, for callers holding raw values.
func Clamp(mode, degree int) (int, int) {
	return util.Clamp(mode, 0, NumModes-1), util.Clamp(degree, 0, NumDegrees-1)
}

func Name(mode int) string {
	if mode < 0 || mode >= NumModes {
		return "unknown"
	}
	return modeNames[mode]
}
