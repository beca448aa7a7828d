package quantize

import (
	"math"

	"github.com/jsphweid/cvtheory/codec"
	"github.com/jsphweid/cvtheory/scale"
	"github.com/jsphweid/cvtheory/util"
)

type Result struct {
	Volts  float64
	Root   int
	Scale  scale.ID
	Note   int // pitch class of the chosen tone
	Degree int // index into the scale's degrees
}

// Quantizer snaps voltages onto the tones of a scale from its table. It
// holds no state of its own and is safe to share.
type Quantizer struct {
	scales *scale.Table
}

func New(scales *scale.Table) *Quantizer {
	return &Quantizer{scales: scales}
}

// QuantizeVolts decodes root and scale from their 0-10V control inputs
// before quantizing.
func (q *Quantizer) QuantizeVolts(volts, rootVolts, scaleVolts float64) Result {
	return q.Quantize(volts, codec.KeyFromVolts(rootVolts), codec.ScaleFromVolts(scaleVolts))
}

// Quantize returns the tone of the scale built on root that lies closest to
// volts (1V/oct, 0V = C). Candidates are walked upwards from an octave at or
// below volts; the distance to an ascending candidate sequence falls and then
// rises, so the walk stops at the first candidate that is not strictly
// closer. Equidistant inputs therefore resolve to the lower tone.
func (q *Quantizer) Quantize(volts float64, root int, id scale.ID) Result {
	root = util.Mod(root, 12)
	s := q.scales.Lookup(id)
	degrees := s.Degrees
	last := len(degrees) - 1

	octave := int(math.Floor(volts))
	if math.IsNaN(volts) || math.IsInf(volts, 0) {
		octave = 0
	}

	// a non-C root starts the search one octave lower, on the root itself
	searchSemis := octave * 12
	if root != 0 {
		searchSemis -= 12 - root
	}

	closestDist := math.Inf(1)
	closestVolts := 0.0
	found := 0

	i := 0
	for {
		candidate := float64(searchSemis+degrees[i]) / 12.0
		dist := math.Abs(volts - candidate)
		if !(dist < closestDist) {
			break
		}
		closestDist = dist
		closestVolts = candidate
		found = i

		i++
		if i >= last {
			searchSemis += 12
			i = 0
		}
	}

	return Result{
		Volts:  closestVolts,
		Root:   root,
		Scale:  s.ID,
		Note:   util.Mod(root+degrees[found], 12),
		Degree: found,
	}
}
