package midi

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/cvtheory/arp"
	"github.com/jsphweid/cvtheory/progression"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type RenderOptions struct {
	Tempo    float64
	Channel  uint8
	Velocity uint8
	Arpeggio bool
	Kind     arp.Kind
	Rng      arp.Rand
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Tempo: 120, Velocity: 100}
}

const ticksPerQuarter = 96

// Render lays chords out one bar each, either as blocks or arpeggiated in
// eighth notes for one bar.
func Render(chords []progression.Chord, opts RenderOptions) *smf.SMF {
	clock := smf.MetricTicks(ticksPerQuarter)
	s := smf.New()
	s.TimeFormat = clock

	var track smf.Track
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(opts.Tempo))

	bar := clock.Ticks4th() * 4
	eighth := clock.Ticks8th()

	var rest uint32
	for _, c := range chords {
		keys := c.Keys()
		if len(keys) == 0 {
			rest += bar
			continue
		}

		if !opts.Arpeggio {
			for i, key := range keys {
				var delta uint32
				if i == 0 {
					delta = rest
				}
				track.Add(delta, gomidi.NoteOn(opts.Channel, key, opts.Velocity))
			}
			for i, key := range keys {
				var delta uint32
				if i == 0 {
					delta = bar
				}
				track.Add(delta, gomidi.NoteOff(opts.Channel, key))
			}
			rest = 0
			continue
		}

		state := arp.Start(opts.Kind, len(keys), opts.Rng)
		for played := uint32(0); played < bar; played += eighth {
			track.Add(rest, gomidi.NoteOn(opts.Channel, keys[state.Index], opts.Velocity))
			track.Add(eighth, gomidi.NoteOff(opts.Channel, keys[state.Index]))
			rest = 0
			state = arp.Advance(state, opts.Rng)
		}
	}
	track.Close(rest)

	s.Tracks = append(s.Tracks, track)
	return s
}

func WriteProgression(path string, chords []progression.Chord, opts RenderOptions) error {
	if err := Render(chords, opts).WriteFile(path); err != nil {
		return fault.Wrap(err, fmsg.WithDesc("write progression", "Could not write "+path))
	}
	return nil
}
