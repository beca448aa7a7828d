package progression

import (
	"github.com/jsphweid/cvtheory/chord"
	"github.com/jsphweid/cvtheory/constants"
	"github.com/jsphweid/cvtheory/mode"
	"github.com/jsphweid/cvtheory/model"
	"github.com/jsphweid/cvtheory/util"
)

// Chord is the chord a sequencer currently outputs. It is owned by one
// caller and recomputed in place on every change.
type Chord struct {
	Root       int
	Quality    model.Quality
	ID         chord.ID
	Name       string
	ModeDegree int
	Inversion  int

	// resolved offsets from Root after the repeat policy
	Semitones [constants.NumVoices]int
	Outputs   [constants.NumVoices]float64
}

// NewChord returns a root-position C major triad.
func NewChord(table *chord.Table) Chord {
	var c Chord
	c.SetChord(table, chord.Major, 0, 0, chord.RepeatUnison, nil)
	return c
}

// SetChord selects a chord row directly. inversion is clamped to the
// inversions the chord has.
func (c *Chord) SetChord(table *chord.Table, id chord.ID, root int, inversion int, policy chord.RepeatPolicy, rng chord.Rand) {
	if !table.Valid(id, 0) {
		id = chord.Major
	}
	def, _ := table.Lookup(id)
	c.ID = id
	c.Name = def.Name
	c.Root = util.Mod(root, 12)
	c.Inversion = util.Clamp(inversion, 0, len(def.Inversions)-1)
	c.Quality = qualityOf(id)
	c.realize(table, policy, rng)
}

// SetModeDegree selects the diatonic triad on degree of mode over tonic.
func (c *Chord) SetModeDegree(table *chord.Table, m int, tonic int, degree int, inversion int, policy chord.RepeatPolicy, rng chord.Rand) {
	m, degree = mode.Clamp(m, degree)
	root, quality := mode.Resolve(m, util.Mod(tonic, 12), degree)
	c.SetChord(table, table.ForQuality(quality), root, inversion, policy, rng)
	c.Quality = quality
	c.ModeDegree = degree
}

func (c *Chord) realize(table *chord.Table, policy chord.RepeatPolicy, rng chord.Rand) {
	v := table.Voicing(c.ID, c.Inversion)
	c.Semitones = v.Semitones(policy, rng)
	for i, semis := range c.Semitones {
		c.Outputs[i] = float64(c.Root+semis) * constants.SemitoneVolts
	}
}

// Keys returns the distinct MIDI keys of the outputs, lowest first.
func (c Chord) Keys() model.Notes {
	seen := make(map[int]bool)
	for _, semis := range c.Semitones {
		key := util.Clamp(constants.ReferenceNote+c.Root+semis, 0, 127)
		seen[key] = true
	}
	keys := util.GetKeys(seen)
	res := make([]uint8, len(keys))
	for i, k := range keys {
		res[i] = uint8(k)
	}
	return res
}

func qualityOf(id chord.ID) model.Quality {
	switch id {
	case chord.Minor:
		return model.Minor
	case chord.Diminished:
		return model.Diminished
	default:
		return model.Major
	}
}
