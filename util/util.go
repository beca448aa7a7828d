package util

import (
	"os"
	"sort"

	"golang.org/x/exp/constraints"
)

func EnsureOutputDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mod is the Euclidean modulo: the result always lies in [0, |m|).
func Mod[A constraints.Integer](v A, m A) A {
	r := v % m
	if r < 0 {
		if m < 0 {
			return r - m
		}
		return r + m
	}
	return r
}
