package chord

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/jsphweid/cvtheory/constants"
	"github.com/jsphweid/cvtheory/model"
	"github.com/jsphweid/cvtheory/util"
)

type ID int

// the rows ForQuality maps onto
const (
	Major      ID = 0
	Minor      ID = 1
	Diminished ID = 2
)

var (
	ErrEmptyFormula  = errors.New("chord formula has no voices")
	ErrTooManyVoices = fmt.Errorf("chord formula has more than %d voices", constants.NumVoices)
	ErrVoiceRange    = errors.New("chord voice must lie in [0, 24]")
	ErrNotAscending  = errors.New("chord voices must be strictly increasing")
	ErrNoName        = errors.New("chord has no name")
	ErrDuplicateName = errors.New("chord name defined twice")
)

// Formula is a root-position chord: semitone offsets from the root.
type Formula struct {
	Name   string
	Voices []int
}

var Formulas = []Formula{
	{"M", []int{0, 4, 7}},
	{"m", []int{0, 3, 7}},
	{"dim", []int{0, 3, 6}},
	{"aug", []int{0, 4, 8}},
	{"sus2", []int{0, 2, 7}},
	{"sus4", []int{0, 5, 7}},
	{"5", []int{0, 7}},
	{"1", []int{0}},
	{"6", []int{0, 4, 7, 9}},
	{"m6", []int{0, 3, 7, 9}},
	{"7", []int{0, 4, 7, 10}},
	{"M7", []int{0, 4, 7, 11}},
	{"m7", []int{0, 3, 7, 10}},
	{"mM7", []int{0, 3, 7, 11}},
	{"dim7", []int{0, 3, 6, 9}},
	{"m7b5", []int{0, 3, 6, 10}},
	{"7sus4", []int{0, 5, 7, 10}},
	{"7b5", []int{0, 4, 6, 10}},
	{"7#5", []int{0, 4, 8, 10}},
	{"M7#5", []int{0, 4, 8, 11}},
	{"add9", []int{0, 4, 7, 14}},
	{"madd9", []int{0, 3, 7, 14}},
	{"6/9", []int{0, 4, 7, 9, 14}},
	{"m6/9", []int{0, 3, 7, 9, 14}},
	{"9", []int{0, 4, 7, 10, 14}},
	{"m9", []int{0, 3, 7, 10, 14}},
	{"M9", []int{0, 4, 7, 11, 14}},
	{"7b9", []int{0, 4, 7, 10, 13}},
	{"7#9", []int{0, 4, 7, 10, 15}},
	{"11", []int{0, 4, 7, 10, 14, 17}},
	{"m11", []int{0, 3, 7, 10, 14, 17}},
	{"M11", []int{0, 4, 7, 11, 14, 17}},
	{"7#11", []int{0, 4, 7, 10, 14, 18}},
	{"13", []int{0, 4, 7, 10, 14, 21}},
	{"m13", []int{0, 3, 7, 10, 14, 21}},
	{"M13", []int{0, 4, 7, 11, 14, 21}},
}

type Definition struct {
	ID         ID
	Name       string
	Formula    []Voice
	Inversions []Voicing
}

type candidate struct {
	id   ID
	root int
}

// Table is the read-only chord registry. Inversions are computed once here.
type Table struct {
	defs   []Definition
	byName map[string]ID
	byKey  map[string][]candidate
}

func validate(f Formula) error {
	if f.Name == "" {
		return ErrNoName
	}
	if len(f.Voices) == 0 {
		return ErrEmptyFormula
	}
	if len(f.Voices) > constants.NumVoices {
		return ErrTooManyVoices
	}
	for i, v := range f.Voices {
		if v < 0 || v > 24 {
			return ErrVoiceRange
		}
		if i > 0 && v <= f.Voices[i-1] {
			return ErrNotAscending
		}
	}
	return nil
}

func NewTable(formulas []Formula) (*Table, error) {
	t := &Table{
		byName: make(map[string]ID),
		byKey:  make(map[string][]candidate),
	}
	for i, f := range formulas {
		if err := validate(f); err != nil {
			return nil, fmt.Errorf("chord %d %q: %w", i, f.Name, err)
		}
		if _, ok := t.byName[f.Name]; ok {
			return nil, fmt.Errorf("chord %d %q: %w", i, f.Name, ErrDuplicateName)
		}

		voices := make([]Voice, len(f.Voices))
		for j, v := range f.Voices {
			voices[j] = Literal(v)
		}
		inversions, err := BuildInversions(voices)
		if err != nil {
			return nil, fmt.Errorf("chord %d %q: %w", i, f.Name, err)
		}

		id := ID(i)
		t.defs = append(t.defs, Definition{ID: id, Name: f.Name, Formula: voices, Inversions: inversions})
		t.byName[f.Name] = id
		for root := 0; root < 12; root++ {
			key := CreateChordKey(pitchClasses(f.Voices, root))
			t.byKey[key] = append(t.byKey[key], candidate{id: id, root: root})
		}
	}
	return t, nil
}

func MustNewTable(formulas []Formula) *Table {
	t, err := NewTable(formulas)
	if err != nil {
		panic("invalid chord table: " + err.Error())
	}
	return t
}

var defaultTable = MustNewTable(Formulas)

// Default returns the process-wide table built from Formulas.
func Default() *Table {
	return defaultTable
}

func (t *Table) Len() int {
	return len(t.defs)
}

func (t *Table) Valid(id ID, inversion int) bool {
	if id < 0 || int(id) >= len(t.defs) {
		return false
	}
	return inversion >= 0 && inversion < len(t.defs[id].Inversions)
}

func (t *Table) Lookup(id ID) (Definition, bool) {
	if id < 0 || int(id) >= len(t.defs) {
		return Definition{}, false
	}
	return t.defs[id], true
}

func (t *Table) ByName(name string) (ID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

func (t *Table) All() []Definition {
	res := make([]Definition, len(t.defs))
	copy(res, t.defs)
	return res
}

// Voicing returns the padded voices of a chord inversion. Callers check
// Valid first; an unknown chord falls back to the first row and the
// inversion is clamped to the ones the chord has.
func (t *Table) Voicing(id ID, inversion int) Voicing {
	if id < 0 || int(id) >= len(t.defs) {
		id = 0
	}
	inversions := t.defs[id].Inversions
	return inversions[util.Clamp(inversion, 0, len(inversions)-1)]
}

// ForQuality maps a triad quality onto its chord row.
func (t *Table) ForQuality(q model.Quality) ID {
	switch q {
	case model.Minor:
		return Minor
	case model.Diminished:
		return Diminished
	default:
		return Major
	}
}

type Match struct {
	ID        ID
	Name      string
	Root      int
	Inversion int
}

// Identify finds the chord whose pitch classes are exactly those of notes.
// When several rows share the same set (C6 and Am7), the one rooted on the
// bass note wins, then table order.
func (t *Table) Identify(notes model.Notes) (Match, bool) {
	if len(notes) == 0 {
		return Match{}, false
	}
	bass := notes[0]
	pcs := make([]int, 0, len(notes))
	for _, n := range notes {
		if n < bass {
			bass = n
		}
		pcs = append(pcs, int(n))
	}

	candidates := t.byKey[CreateChordKey(pcs)]
	if len(candidates) == 0 {
		return Match{}, false
	}
	best := candidates[0]
	for _, c := range candidates {
		if c.root == int(bass)%12 {
			best = c
			break
		}
	}

	def := t.defs[best.id]
	inversion := 0
	for j, v := range def.Formula {
		if (best.root+v.Semitones)%12 == int(bass)%12 {
			inversion = j
			break
		}
	}
	return Match{ID: best.id, Name: def.Name, Root: best.root, Inversion: inversion}, true
}

func pitchClasses(voices []int, root int) []int {
	res := make([]int, len(voices))
	for i, v := range voices {
		res[i] = root + v
	}
	return res
}

// CreateChordKey reduces notes to their distinct pitch classes and joins
// them in ascending order, e.g. "0-4-7".
func CreateChordKey(notes []int) string {
	seen := make(map[int]bool)
	for _, n := range notes {
		seen[util.Mod(n, 12)] = true
	}
	pcs := util.GetKeys(seen)
	sort.Ints(pcs)

	var res string
	for i, pc := range pcs {
		res += strconv.Itoa(pc)
		if i < len(pcs)-1 {
			res += "-"
		}
	}
	return res
}
