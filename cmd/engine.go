package cmd

import (
	"errors"
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/chord"
	"github.com/jsphweid/cvtheory/mode"
	"github.com/jsphweid/cvtheory/model"
	"github.com/jsphweid/cvtheory/progression"
	"github.com/jsphweid/cvtheory/quantize"
	"github.com/jsphweid/cvtheory/scale"
)

// built once at startup and shared by every command and handler
var (
	scales    = scale.Default()
	chords    = chord.Default()
	quantizer = quantize.New(scales)
)

var (
	ErrOutOfRange   = errors.New("value out of range")
	ErrUnknownChord = errors.New("unknown chord")
)

func outOfRange(what string, v int, max int) error {
	msg := fmt.Sprintf("%s must be between 0 and %d, got %d", what, max, v)
	return fault.Wrap(ErrOutOfRange, fmsg.WithDesc(msg, msg))
}

func scaleInfos() []model.ScaleInfo {
	var res []model.ScaleInfo
	for _, s := range scales.All() {
		res = append(res, model.ScaleInfo{Id: int(s.ID), Name: s.Name, Degrees: s.Degrees})
	}
	return res
}

func chordInfos() []model.ChordInfo {
	var res []model.ChordInfo
	for _, def := range chords.All() {
		info := model.ChordInfo{Id: int(def.ID), Name: def.Name}
		for _, v := range def.Formula {
			info.Formula = append(info.Formula, v.Legacy())
		}
		for _, inv := range def.Inversions {
			info.Inversions = append(info.Inversions, inv.Offsets())
		}
		res = append(res, info)
	}
	return res
}

func quantizeResponse(r quantize.Result) model.QuantizeResponse {
	return model.QuantizeResponse{
		Volts:     r.Volts,
		Root:      r.Root,
		Scale:     int(r.Scale),
		ScaleName: scales.Name(r.Scale),
		Note:      r.Note,
		NoteName:  mode.NoteName(r.Note),
		Degree:    r.Degree,
	}
}

func doQuantize(body model.QuantizeRequestBody) (model.QuantizeResponse, error) {
	if body.Root < 0 || body.Root > 11 {
		return model.QuantizeResponse{}, outOfRange("root", body.Root, 11)
	}
	// unknown scale ids are not an error: they quantize chromatically
	return quantizeResponse(quantizer.Quantize(body.Volts, body.Root, scale.ID(body.Scale))), nil
}

func voicingResponse(c progression.Chord) model.VoicingResponse {
	return model.VoicingResponse{
		Chord:     c.Name,
		Root:      c.Root,
		Inversion: c.Inversion,
		Offsets:   c.Semitones[:],
		Volts:     c.Outputs[:],
	}
}

func parsePolicy(s string) (chord.RepeatPolicy, error) {
	if s == "" {
		return chord.RepeatUnison, nil
	}
	p, err := chord.ParseRepeatPolicy(s)
	if err != nil {
		return p, fault.Wrap(err, fmsg.WithDesc("parse repeat policy", err.Error()))
	}
	return p, nil
}

func doVoicing(body model.VoicingRequestBody) (model.VoicingResponse, error) {
	if body.Root < 0 || body.Root > 11 {
		return model.VoicingResponse{}, outOfRange("root", body.Root, 11)
	}
	id := chord.ID(body.Chord)
	if !chords.Valid(id, 0) {
		return model.VoicingResponse{}, outOfRange("chord", body.Chord, chords.Len()-1)
	}
	def, _ := chords.Lookup(id)
	if !chords.Valid(id, body.Inversion) {
		return model.VoicingResponse{}, outOfRange("inversion", body.Inversion, len(def.Inversions)-1)
	}
	policy, err := parsePolicy(body.Repeat)
	if err != nil {
		return model.VoicingResponse{}, err
	}

	c := progression.NewChord(chords)
	c.SetChord(chords, id, body.Root, body.Inversion, policy, nil)
	return voicingResponse(c), nil
}

func checkModeArgs(m, tonic, degree int) error {
	if m < 0 || m >= mode.NumModes {
		return outOfRange("mode", m, mode.NumModes-1)
	}
	if tonic < 0 || tonic > 11 {
		return outOfRange("tonic", tonic, 11)
	}
	if degree < 0 || degree >= mode.NumDegrees {
		return outOfRange("degree", degree, mode.NumDegrees-1)
	}
	return nil
}

func doResolve(body model.ResolveRequestBody) (model.ResolveResponse, error) {
	if err := checkModeArgs(body.Mode, body.Tonic, body.Degree); err != nil {
		return model.ResolveResponse{}, err
	}
	root, quality := mode.Resolve(body.Mode, body.Tonic, body.Degree)
	return model.ResolveResponse{
		Root:       root,
		RootName:   mode.NoteName(root),
		Quality:    quality.String(),
		DegreeName: mode.DegreeName(body.Mode, body.Degree),
	}, nil
}

func doProgression(body model.ProgressionRequestBody) ([]progression.Chord, error) {
	for _, d := range body.Degrees {
		if err := checkModeArgs(body.Mode, body.Tonic, d); err != nil {
			return nil, err
		}
	}
	if err := checkModeArgs(body.Mode, body.Tonic, 0); err != nil {
		return nil, err
	}
	if body.Inversion < 0 || body.Inversion > 2 {
		return nil, outOfRange("inversion", body.Inversion, 2)
	}
	policy, err := parsePolicy(body.Repeat)
	if err != nil {
		return nil, err
	}

	settings := progression.Settings{
		Selection: progression.SelectMode,
		Mode:      body.Mode,
		Tonic:     body.Tonic,
		Policy:    policy,
	}
	p := progression.New(chords, settings, progression.Degrees(body.Degrees, body.Inversion), nil)
	return p.Render(len(body.Degrees)), nil
}

func progressionResponse(cs []progression.Chord) model.ProgressionResponse {
	res := model.ProgressionResponse{Chords: make([]model.VoicingResponse, 0, len(cs))}
	for _, c := range cs {
		res.Chords = append(res.Chords, voicingResponse(c))
	}
	return res
}
