package chord

import "github.com/jsphweid/cvtheory/constants"

// Voice is one pitch offset of a voicing. Repeat voices are fillers added to
// pad short chords; their Semitones value is kept exactly as the signed
// table convention has it (always negative) and a repeat policy decides the
// octave they finally sound in.
type Voice struct {
	Semitones int
	Repeat    bool
}

func Literal(semitones int) Voice {
	return Voice{Semitones: semitones}
}

// FromLegacy reads a voice from the signed convention where any negative
// offset marks a repeat.
func FromLegacy(offset int) Voice {
	return Voice{Semitones: offset, Repeat: offset < 0}
}

func (v Voice) Legacy() int {
	return v.Semitones
}

// Voicing is a fully padded set of voices.
type Voicing [constants.NumVoices]Voice

func (v Voicing) Offsets() []int {
	res := make([]int, len(v))
	for i, voice := range v {
		res[i] = voice.Legacy()
	}
	return res
}
