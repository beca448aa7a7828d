package model

// Quality is the triad quality of a diatonic degree.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
)

var qualityNames = [...]string{"MAJ", "MIN", "DIM"}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return "unknown"
	}
	return qualityNames[q]
}

func (q Quality) Valid() bool {
	return q >= Major && q <= Diminished
}

type Notes = []uint8
