package mode

import (
	"strings"

	"github.com/jsphweid/cvtheory/model"
	"github.com/jsphweid/cvtheory/util"
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

func NoteName(note int) string {
	return sharpNames[util.Mod(note, 12)]
}

func FlatName(note int) string {
	return flatNames[util.Mod(note, 12)]
}

var romans = [NumDegrees]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// DegreeName spells a degree as a roman numeral: upper case for major,
// lower case for minor, ° for diminished, prefixed with its accidental
// against the major scale ("bIII", "#iv°").
func DegreeName(mode, degree int) string {
	mode, degree = Clamp(mode, degree)
	var prefix string
	switch ModeOffset[mode][degree] {
	case -1:
		prefix = "b"
	case 1:
		prefix = "#"
	}

	numeral := romans[degree]
	switch ModeQuality[mode][degree] {
	case model.Minor:
		numeral = strings.ToLower(numeral)
	case model.Diminished:
		numeral = strings.ToLower(numeral) + "°"
	}
	return prefix + numeral
}
