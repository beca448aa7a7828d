// Package codec maps the bounded parameter domains (key, scale, mode) onto
// the 0-10V control convention and back.
package codec

import (
	"math"

	"github.com/jsphweid/cvtheory/constants"
	"github.com/jsphweid/cvtheory/scale"
	"github.com/jsphweid/cvtheory/util"
)

const (
	maxKey   = 11
	maxScale = scale.NumScales - 1
	maxMode  = 6
)

// voltage widths of one domain step
const (
	KeyStep   = constants.MaxParamVolts / float64(maxKey)
	ScaleStep = constants.MaxParamVolts / float64(maxScale)
	ModeStep  = constants.MaxParamVolts / float64(maxMode)
)

func rescale(x, xMin, xMax, yMin, yMax float64) float64 {
	return yMin + (x-xMin)/(xMax-xMin)*(yMax-yMin)
}

func fromVolts(volts float64, max int) int {
	if math.IsNaN(volts) {
		return 0
	}
	v := util.Clamp(volts, 0, constants.MaxParamVolts)
	return int(math.Round(rescale(v, 0, constants.MaxParamVolts, 0, float64(max))))
}

func toVolts(n int, max int) float64 {
	return rescale(float64(n), 0, float64(max), 0, constants.MaxParamVolts)
}

// KeyFromVolts returns a pitch class 0-11.
func KeyFromVolts(volts float64) int {
	return fromVolts(volts, maxKey)
}

func VoltsFromKey(key int) float64 {
	return toVolts(key, maxKey)
}

// ScaleFromVolts returns a scale id, clamped again after rounding so the
// result is always a defined scale.
func ScaleFromVolts(volts float64) scale.ID {
	s := fromVolts(volts, maxScale)
	return scale.ID(util.Clamp(s, 0, maxScale))
}

func VoltsFromScale(id scale.ID) float64 {
	return toVolts(int(id), maxScale)
}

// ModeFromVolts decodes onto positions 1-7 (position 0 being chromatic at
// the scale level), then shifts down by one and clamps into 0-6.
func ModeFromVolts(volts float64) int {
	if math.IsNaN(volts) {
		return 0
	}
	v := util.Clamp(volts, 0, constants.MaxParamVolts)
	m := int(math.Round(rescale(v, 0, constants.MaxParamVolts, 1, maxMode+1))) - 1
	return util.Clamp(m, 0, maxMode)
}

func VoltsFromMode(mode int) float64 {
	return toVolts(util.Clamp(mode, 0, maxMode), maxMode)
}
