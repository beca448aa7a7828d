package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
	assert.Equal(5, Mod(17, 12))
	assert.Equal(0, Mod(0, 12))
	assert.Equal(int8(3), Mod(int8(-9), int8(12)))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Clamp(-3, 0, 6))
	assert.Equal(6, Clamp(9, 0, 6))
	assert.Equal(4, Clamp(4, 0, 6))
	assert.Equal(10.0, Clamp(10.2, 0.0, 10.0))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"m": 1, "M": 2, "dim": 3}
	assert.Equal(t, []string{"M", "dim", "m"}, GetKeys(m))
}
