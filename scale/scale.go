package scale

import (
	"errors"
	"fmt"
)

type ID int

const (
	Chromatic ID = iota
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	MajorPentatonic
	MinorPentatonic
	HarmonicMinor
	Blues
	NumScales int = iota
)

var (
	ErrEmpty        = errors.New("scale has no degrees")
	ErrNotRooted    = errors.New("scale must start at 0")
	ErrNotClosed    = errors.New("scale must end on the octave (12)")
	ErrNotAscending = errors.New("scale degrees must be strictly increasing")
	ErrDuplicateID  = errors.New("scale id defined twice")
	ErrMissingID    = errors.New("scale id not defined")
)

// Scale is one octave of semitone offsets. The closing 12 is part of the
// data so a nearest-tone scan can always look one step past the last tone.
type Scale struct {
	ID      ID
	Name    string
	Degrees []int
}

// Tones is the number of distinct pitch classes (the closing octave excluded).
func (s Scale) Tones() int {
	return len(s.Degrees) - 1
}

func (s Scale) validate() error {
	if len(s.Degrees) == 0 {
		return ErrEmpty
	}
	if s.Degrees[0] != 0 {
		return ErrNotRooted
	}
	if s.Degrees[len(s.Degrees)-1] != 12 {
		return ErrNotClosed
	}
	for i := 1; i < len(s.Degrees); i++ {
		if s.Degrees[i] <= s.Degrees[i-1] {
			return ErrNotAscending
		}
	}
	return nil
}

var Definitions = []Scale{
	{Chromatic, "Chromatic", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
	{Ionian, "Ionian", []int{0, 2, 4, 5, 7, 9, 11, 12}},
	{Dorian, "Dorian", []int{0, 2, 3, 5, 7, 9, 10, 12}},
	{Phrygian, "Phrygian", []int{0, 1, 3, 5, 7, 8, 10, 12}},
	{Lydian, "Lydian", []int{0, 2, 4, 6, 7, 9, 11, 12}},
	{Mixolydian, "Mixolydian", []int{0, 2, 4, 5, 7, 9, 10, 12}},
	{Aeolian, "Aeolian", []int{0, 2, 3, 5, 7, 8, 10, 12}},
	{Locrian, "Locrian", []int{0, 1, 3, 5, 6, 8, 10, 12}},
	{MajorPentatonic, "Major Pentatonic", []int{0, 2, 4, 7, 9, 12}},
	{MinorPentatonic, "Minor Pentatonic", []int{0, 3, 5, 7, 10, 12}},
	{HarmonicMinor, "Harmonic Minor", []int{0, 2, 3, 5, 7, 8, 11, 12}},
	{Blues, "Blues", []int{0, 3, 5, 6, 7, 10, 12}},
}

// Table is the read-only registry of scales, indexed by ID. Build it once
// and share it; nothing mutates it afterwards.
type Table struct {
	scales []Scale
}

// NewTable validates defs and indexes them by ID. Every ID in
// [0, len(defs)) must be defined exactly once, and Chromatic must be among
// them since it is the fallback for out-of-range lookups.
func NewTable(defs []Scale) (*Table, error) {
	scales := make([]Scale, len(defs))
	seen := make([]bool, len(defs))
	for _, s := range defs {
		if s.ID < 0 || int(s.ID) >= len(defs) {
			return nil, fmt.Errorf("%q: %w", s.Name, ErrMissingID)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%q: %w", s.Name, ErrDuplicateID)
		}
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("%q: %w", s.Name, err)
		}
		seen[s.ID] = true

		degrees := make([]int, len(s.Degrees))
		copy(degrees, s.Degrees)
		s.Degrees = degrees
		scales[s.ID] = s
	}
	if len(scales) == 0 || scales[Chromatic].Tones() != 12 {
		return nil, fmt.Errorf("chromatic fallback: %w", ErrMissingID)
	}
	return &Table{scales: scales}, nil
}

func MustNewTable(defs []Scale) *Table {
	t, err := NewTable(defs)
	if err != nil {
		panic("invalid scale table: " + err.Error())
	}
	return t
}

var defaultTable = MustNewTable(Definitions)

// Default returns the process-wide table built from Definitions.
func Default() *Table {
	return defaultTable
}

func (t *Table) Len() int {
	return len(t.scales)
}

// Lookup returns the scale for id. Ids outside the table resolve to the
// chromatic scale; CV-derived ids can round past either end.
func (t *Table) Lookup(id ID) Scale {
	if id < 0 || int(id) >= len(t.scales) {
		return t.scales[Chromatic]
	}
	return t.scales[id]
}

// Degrees returns the degree sequence for id. The slice is shared; do not
// modify it.
func (t *Table) Degrees(id ID) []int {
	return t.Lookup(id).Degrees
}

func (t *Table) Name(id ID) string {
	return t.Lookup(id).Name
}

// All returns the scales in ID order.
func (t *Table) All() []Scale {
	res := make([]Scale, len(t.scales))
	copy(res, t.scales)
	return res
}
