// Package arp steps through the voices of a chord in one of a closed set of
// patterns. Each pattern is a Kind tag plus a small State advanced by one
// function.
package arp

import (
	"fmt"
	"math/rand"
	"strings"
)

type Kind int

const (
	Up Kind = iota
	Down
	UpDown
	Random
)

var kindNames = [...]string{"up", "down", "updown", "random"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return Up, fmt.Errorf("unknown arpeggio %q (want one of %s)", s, strings.Join(kindNames[:], ", "))
}

type Rand interface {
	Intn(n int) int
}

type State struct {
	Kind   Kind
	Length int
	Index  int // voice to play now
	Dir    int // UpDown direction, +1 or -1
	Step   int // notes played in the current cycle
}

func Start(kind Kind, length int, rng Rand) State {
	if length < 1 {
		length = 1
	}
	s := State{Kind: kind, Length: length, Dir: 1}
	switch kind {
	case Down:
		s.Index = length - 1
		s.Dir = -1
	case Random:
		s.Index = intn(rng, length)
	}
	return s
}

// Advance moves to the next voice.
func Advance(s State, rng Rand) State {
	s.Step++
	if s.Length <= 1 {
		s.Index = 0
		return s
	}

	switch s.Kind {
	case Down:
		s.Index = (s.Index - 1 + s.Length) % s.Length
	case UpDown:
		next := s.Index + s.Dir
		if next < 0 || next >= s.Length {
			s.Dir = -s.Dir
			next = s.Index + s.Dir
		}
		s.Index = next
	case Random:
		s.Index = intn(rng, s.Length)
	default:
		s.Index = (s.Index + 1) % s.Length
	}
	return s
}

func cycleLength(s State) int {
	if s.Kind == UpDown && s.Length > 1 {
		return 2*s.Length - 2
	}
	return s.Length
}

// Finished reports whether the current cycle has played all of its notes.
func Finished(s State) bool {
	return s.Step >= cycleLength(s)
}

// Cycle plays one full cycle and returns the visited voice indices.
func Cycle(kind Kind, length int, rng Rand) []int {
	var res []int
	for s := Start(kind, length, rng); !Finished(s); s = Advance(s, rng) {
		res = append(res, s.Index)
	}
	return res
}

func intn(rng Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
