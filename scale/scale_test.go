package scale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryScaleIsAscendingAndOctaveClosed(t *testing.T) {
	for _, s := range Default().All() {
		t.Run(s.Name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(0, s.Degrees[0])
			assert.Equal(12, s.Degrees[len(s.Degrees)-1])
			for i := 1; i < len(s.Degrees); i++ {
				assert.Greater(s.Degrees[i], s.Degrees[i-1])
			}
		})
	}
}

func TestTableIsIndexedByID(t *testing.T) {
	table := Default()
	assert := assert.New(t)
	assert.Equal(NumScales, table.Len())
	for i := 0; i < table.Len(); i++ {
		assert.Equal(ID(i), table.Lookup(ID(i)).ID)
	}
	assert.Equal("Dorian", table.Name(Dorian))
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11, 12}, table.Degrees(Ionian))
}

func TestOutOfRangeFallsBackToChromatic(t *testing.T) {
	table := Default()
	assert := assert.New(t)
	assert.Equal(Chromatic, table.Lookup(-1).ID)
	assert.Equal(Chromatic, table.Lookup(ID(NumScales)).ID)
	assert.Equal(Chromatic, table.Lookup(99).ID)
	assert.Equal(12, table.Lookup(99).Tones())
}

func TestConstructionRejectsMalformedScales(t *testing.T) {
	chromatic := Definitions[Chromatic]
	cases := []struct {
		name string
		defs []Scale
		want error
	}{
		{"not ascending", []Scale{chromatic, {1, "bad", []int{0, 4, 2, 12}}}, ErrNotAscending},
		{"repeated degree", []Scale{chromatic, {1, "bad", []int{0, 2, 2, 12}}}, ErrNotAscending},
		{"not closed", []Scale{chromatic, {1, "bad", []int{0, 2, 4}}}, ErrNotClosed},
		{"not rooted", []Scale{chromatic, {1, "bad", []int{1, 2, 12}}}, ErrNotRooted},
		{"empty", []Scale{chromatic, {1, "bad", nil}}, ErrEmpty},
		{"duplicate id", []Scale{chromatic, {0, "again", []int{0, 12}}}, ErrDuplicateID},
		{"gap in ids", []Scale{chromatic, {5, "far", []int{0, 12}}}, ErrMissingID},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewTable(c.defs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.want), err.Error())
		})
	}
}

func TestTableDoesNotAliasDefinitions(t *testing.T) {
	defs := []Scale{{Chromatic, "Chromatic", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}}}
	table := MustNewTable(defs)
	defs[0].Degrees[1] = 7
	assert.Equal(t, 1, table.Degrees(Chromatic)[1])
}

func TestMustNewTablePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewTable([]Scale{{Chromatic, "x", []int{0, 1}}})
	})
}
