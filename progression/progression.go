package progression

import (
	"github.com/jsphweid/cvtheory/chord"
)

// Selection is how steps pick their chord.
type Selection int

const (
	SelectChord Selection = iota // Step.Chord on Step.Root
	SelectMode                   // Step.Degree of Settings.Mode on Settings.Tonic
)

type Settings struct {
	Selection Selection
	Mode      int
	Tonic     int
	Policy    chord.RepeatPolicy
}

type Step struct {
	Chord     chord.ID
	Root      int
	Degree    int
	Inversion int
}

// Progression cycles through steps, one per clock tick.
type Progression struct {
	table    *chord.Table
	settings Settings
	steps    []Step
	rng      chord.Rand
	pos      int
	current  Chord
}

func New(table *chord.Table, settings Settings, steps []Step, rng chord.Rand) *Progression {
	return &Progression{
		table:    table,
		settings: settings,
		steps:    steps,
		rng:      rng,
		current:  NewChord(table),
	}
}

// Degrees builds mode steps from scale degrees, all at one inversion.
func Degrees(degrees []int, inversion int) []Step {
	steps := make([]Step, len(degrees))
	for i, d := range degrees {
		steps[i] = Step{Degree: d, Inversion: inversion}
	}
	return steps
}

func (p *Progression) Current() Chord {
	return p.current
}

func (p *Progression) Reset() {
	p.pos = 0
	p.current = NewChord(p.table)
}

// Advance applies the next step and returns the chord it produced. With no
// steps the current chord is held.
func (p *Progression) Advance() Chord {
	if len(p.steps) == 0 {
		return p.current
	}
	step := p.steps[p.pos]
	p.pos = (p.pos + 1) % len(p.steps)

	switch p.settings.Selection {
	case SelectMode:
		p.current.SetModeDegree(p.table, p.settings.Mode, p.settings.Tonic, step.Degree, step.Inversion, p.settings.Policy, p.rng)
	default:
		p.current.SetChord(p.table, step.Chord, step.Root, step.Inversion, p.settings.Policy, p.rng)
	}
	return p.current
}

// Render advances n times and collects the chords.
func (p *Progression) Render(n int) []Chord {
	res := make([]Chord, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, p.Advance())
	}
	return res
}
