package quantize

import (
	"math"
	"testing"

	"github.com/jsphweid/cvtheory/codec"
	"github.com/jsphweid/cvtheory/scale"
	"github.com/stretchr/testify/assert"
)

func newQuantizer() *Quantizer {
	return New(scale.Default())
}

func TestQuantizeZero(t *testing.T) {
	res := newQuantizer().Quantize(0.0, 0, scale.Ionian)

	assert := assert.New(t)
	assert.Equal(0.0, res.Volts)
	assert.Equal(0, res.Note)
	assert.Equal(0, res.Degree)
	assert.Equal(0, res.Root)
	assert.Equal(scale.Ionian, res.Scale)
}

func TestQuantizeSnapsToNearestTone(t *testing.T) {
	res := newQuantizer().Quantize(0.3, 0, scale.Ionian)

	assert := assert.New(t)
	assert.InDelta(4.0/12.0, res.Volts, 1e-12)
	assert.Equal(4, res.Note)
	assert.Equal(2, res.Degree)
}

func TestQuantizeBelowOctaveBoundaryReportsLastTone(t *testing.T) {
	// closer to B than to the next C: the walk crosses into the next octave
	// and stops on its first candidate
	res := newQuantizer().Quantize(0.95, 0, scale.Ionian)

	assert := assert.New(t)
	assert.InDelta(11.0/12.0, res.Volts, 1e-12)
	assert.Equal(11, res.Note)
	assert.Equal(6, res.Degree)
}

func TestQuantizeNegativeVolts(t *testing.T) {
	res := newQuantizer().Quantize(-0.3, 0, scale.Ionian)

	assert := assert.New(t)
	assert.InDelta(-0.25, res.Volts, 1e-12)
	assert.Equal(9, res.Note)
	assert.Equal(5, res.Degree)
}

func TestQuantizeWithRoot(t *testing.T) {
	q := newQuantizer()
	assert := assert.New(t)

	res := q.Quantize(2.0/12.0, 2, scale.Ionian)
	assert.InDelta(2.0/12.0, res.Volts, 1e-12)
	assert.Equal(2, res.Note)
	assert.Equal(0, res.Degree)

	// D major has F#, not F
	res = q.Quantize(5.2/12.0, 2, scale.Ionian)
	assert.Equal(6, res.Note)
	assert.Equal(2, res.Degree)
	assert.InDelta(6.0/12.0, res.Volts, 1e-12)
}

func TestQuantizeTieResolvesToLowerTone(t *testing.T) {
	table := scale.MustNewTable([]scale.Scale{
		scale.Definitions[scale.Chromatic],
		{ID: 1, Name: "Octaves", Degrees: []int{0, 12}},
	})
	res := New(table).Quantize(0.5, 0, 1)

	assert := assert.New(t)
	assert.Equal(0.0, res.Volts)
	assert.Equal(0, res.Note)
}

func TestQuantizeUnknownScaleIsChromatic(t *testing.T) {
	res := newQuantizer().Quantize(0.49, 0, scale.ID(99))

	assert := assert.New(t)
	assert.Equal(scale.Chromatic, res.Scale)
	assert.Equal(6, res.Note)
	assert.InDelta(0.5, res.Volts, 1e-12)
}

func TestQuantizeNonFiniteInput(t *testing.T) {
	q := newQuantizer()
	assert.Equal(t, 0.0, q.Quantize(math.NaN(), 0, scale.Ionian).Volts)
	assert.Equal(t, 0.0, q.Quantize(math.Inf(1), 0, scale.Ionian).Volts)
}

func TestQuantizeVoltsDecodesControls(t *testing.T) {
	q := newQuantizer()
	res := q.QuantizeVolts(5.2/12.0, codec.VoltsFromKey(2), codec.VoltsFromScale(scale.Ionian))

	assert := assert.New(t)
	assert.Equal(2, res.Root)
	assert.Equal(scale.Ionian, res.Scale)
	assert.Equal(6, res.Note)
}

func bruteForceNearest(degrees []int, root int, v float64) float64 {
	best := math.Inf(1)
	octave := int(math.Floor(v))
	for o := octave - 2; o <= octave+2; o++ {
		for _, d := range degrees {
			tone := float64(o*12+root+d) / 12.0
			best = math.Min(best, math.Abs(v-tone))
		}
	}
	return best
}

func TestQuantizeIsNearestTone(t *testing.T) {
	q := newQuantizer()
	for _, s := range scale.Default().All() {
		t.Run(s.Name, func(t *testing.T) {
			for root := 0; root < 12; root++ {
				for v := -2.0; v <= 3.0; v += 0.013 {
					res := q.Quantize(v, root, s.ID)
					best := bruteForceNearest(s.Degrees, root, v)
					if math.Abs(v-res.Volts) > best+1e-9 {
						t.Fatalf("root %d v %v: got %v, a tone %v away exists", root, v, res.Volts, best)
					}
				}
			}
		})
	}
}

func TestQuantizeIsIdempotent(t *testing.T) {
	q := newQuantizer()
	for _, s := range scale.Default().All() {
		for root := 0; root < 12; root++ {
			for v := -1.5; v <= 2.5; v += 0.031 {
				first := q.Quantize(v, root, s.ID)
				second := q.Quantize(first.Volts, root, s.ID)
				if first != second {
					t.Fatalf("%s root %d v %v: %+v then %+v", s.Name, root, v, first, second)
				}
			}
		}
	}
}

func TestQuantizeNoteMatchesVolts(t *testing.T) {
	q := newQuantizer()
	for root := 0; root < 12; root++ {
		for v := -1.0; v <= 1.0; v += 0.017 {
			res := q.Quantize(v, root, scale.Dorian)
			semis := int(math.Round(res.Volts * 12))
			assert.Equal(t, ((semis%12)+12)%12, res.Note)
		}
	}
}
