package arp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycles(t *testing.T) {
	cases := []struct {
		kind   Kind
		length int
		want   []int
	}{
		{Up, 4, []int{0, 1, 2, 3}},
		{Down, 4, []int{3, 2, 1, 0}},
		{UpDown, 4, []int{0, 1, 2, 3, 2, 1}},
		{UpDown, 2, []int{0, 1}},
		{Up, 1, []int{0}},
		{UpDown, 1, []int{0}},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			assert.Equal(t, c.want, Cycle(c.kind, c.length, nil))
		})
	}
}

func TestCyclesRepeat(t *testing.T) {
	s := Start(UpDown, 3, nil)
	var got []int
	for i := 0; i < 8; i++ {
		got = append(got, s.Index)
		s = Advance(s, nil)
	}
	assert.Equal(t, []int{0, 1, 2, 1, 0, 1, 2, 1}, got)
}

func TestRandomStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := Cycle(Random, 6, rng)

	assert := assert.New(t)
	assert.Len(got, 6)
	for _, i := range got {
		assert.GreaterOrEqual(i, 0)
		assert.Less(i, 6)
	}
}

func TestStartClampsLength(t *testing.T) {
	s := Start(Down, 0, nil)
	assert.Equal(t, 1, s.Length)
	assert.Equal(t, 0, s.Index)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("UpDown")
	assert.NoError(t, err)
	assert.Equal(t, UpDown, k)

	_, err = ParseKind("spiral")
	assert.Error(t, err)
}
