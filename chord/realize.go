package chord

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jsphweid/cvtheory/constants"
)

// RepeatPolicy chooses the octave repeat voices sound in.
type RepeatPolicy int

const (
	RepeatLower  RepeatPolicy = iota // an octave below the chord tone it doubles
	RepeatUnison                     // the chord tone itself
	RepeatUpper                      // an octave above
	RepeatRandom                     // one of the three, drawn per voice
)

var repeatPolicyNames = [...]string{"lower", "repeat", "upper", "random"}

func (p RepeatPolicy) String() string {
	if p < 0 || int(p) >= len(repeatPolicyNames) {
		return "unknown"
	}
	return repeatPolicyNames[p]
}

func ParseRepeatPolicy(s string) (RepeatPolicy, error) {
	for i, name := range repeatPolicyNames {
		if strings.EqualFold(s, name) {
			return RepeatPolicy(i), nil
		}
	}
	return RepeatUnison, fmt.Errorf("unknown repeat policy %q (want one of %s)", s, strings.Join(repeatPolicyNames[:], ", "))
}

// Rand is the part of *rand.Rand the random policy draws from.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

// multiplier counts the octaves a repeat voice is lifted by. Repeat voices
// sit two octaves under the tone they double, so 2 restores it.
func (p RepeatPolicy) multiplier(rng Rand) int {
	switch p {
	case RepeatLower:
		return 1
	case RepeatUpper:
		return 3
	case RepeatRandom:
		return rng.Intn(3) + 1
	default:
		return 2
	}
}

// Semitones resolves every voice to an offset from the root under policy.
func (v Voicing) Semitones(policy RepeatPolicy, rng Rand) [constants.NumVoices]int {
	if rng == nil {
		rng = globalRand{}
	}
	var res [constants.NumVoices]int
	for i, voice := range v {
		semis := voice.Semitones
		if voice.Repeat {
			semis += 12 * policy.multiplier(rng)
		}
		res[i] = semis
	}
	return res
}

// Realize converts a voicing on root (semitones above 0V) into 1V/oct output
// voltages. rng is only consulted by RepeatRandom; nil uses math/rand.
func Realize(v Voicing, root int, policy RepeatPolicy, rng Rand) [constants.NumVoices]float64 {
	var res [constants.NumVoices]float64
	for i, semis := range v.Semitones(policy, rng) {
		res[i] = float64(root+semis) * constants.SemitoneVolts
	}
	return res
}
