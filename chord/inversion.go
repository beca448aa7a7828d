package chord

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/cvtheory/constants"
)

var ErrAmbiguousRepeat = errors.New("padded voice is not below the root")

// BuildInversions returns one voicing per voice of formula. Inversion i
// raises the first i voices an octave and re-sorts; short chords are then
// padded by repeating voices two octaves down, reading the voicing from its
// start. Chords with fewer than three voices run past their sorted voices
// and pick up the padding already written, so a 1-voice chord pads with
// -24, -48, ... below the root.
func BuildInversions(formula []Voice) ([]Voicing, error) {
	n := len(formula)
	if n == 0 {
		return nil, ErrEmptyFormula
	}
	if n > constants.NumVoices {
		return nil, ErrTooManyVoices
	}

	inversions := make([]Voicing, 0, n)
	for i := 0; i < n; i++ {
		semis := make([]int, n)
		for j, v := range formula {
			semis[j] = v.Semitones
			if j < i {
				semis[j] += 12
			}
		}
		sort.Ints(semis)

		var voicing Voicing
		for j, s := range semis {
			voicing[j] = Literal(s)
		}
		for j := 0; n+j < constants.NumVoices; j++ {
			voicing[n+j] = Voice{Semitones: voicing[j].Semitones - 24, Repeat: true}
		}

		for j := n; j < constants.NumVoices; j++ {
			if voicing[j].Semitones >= 0 {
				return nil, fmt.Errorf("inversion %d voice %d: %w", i, j, ErrAmbiguousRepeat)
			}
		}
		inversions = append(inversions, voicing)
	}
	return inversions, nil
}
