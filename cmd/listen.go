package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/bep/debounce"
	"github.com/jsphweid/cvtheory/constants"
	"github.com/jsphweid/cvtheory/midi"
	"github.com/jsphweid/cvtheory/mode"
	"github.com/jsphweid/cvtheory/scale"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var ErrNoPort = errors.New("no midi port")

var (
	listenIn     string
	listenOut    string
	listenRoot   int
	listenScale  int
	listenSettle time.Duration
)

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().StringVar(&listenIn, "in", constants.GetMidiInHint(), "part of the midi input port name (default: first port)")
	listenCmd.Flags().StringVar(&listenOut, "out", constants.GetMidiOutHint(), "part of the midi output port name; quantized notes are echoed there")
	listenCmd.Flags().IntVar(&listenRoot, "root", 0, "root pitch class, 0-11")
	listenCmd.Flags().IntVar(&listenScale, "scale", 1, "scale id (see `cvtheory scales`)")
	listenCmd.Flags().DurationVar(&listenSettle, "settle", 150*time.Millisecond, "how long held notes must stay unchanged before the chord is named")
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Quantizes live midi input and names the chords being held",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()

		in, err := findPort(gomidi.GetInPorts(), listenIn)
		if err != nil {
			return err
		}
		var send func(msg gomidi.Message) error
		if listenOut != "" {
			out, err := findPort(gomidi.GetOutPorts(), listenOut)
			if err != nil {
				return err
			}
			send, err = gomidi.SendTo(out)
			if err != nil {
				return fault.Wrap(err, fmsg.WithDesc("open midi out", "Could not open "+out.String()))
			}
		}

		h := newHeldNotes(scale.ID(listenScale), listenRoot, listenSettle)
		stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
			var ch, key, vel uint8
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				snapped := h.press(key)
				if send != nil {
					send(gomidi.NoteOn(ch, snapped, vel))
				}
			case msg.GetNoteEnd(&ch, &key):
				snapped, ok := h.release(key)
				if ok && send != nil {
					send(gomidi.NoteOff(ch, snapped))
				}
			}
		})
		if err != nil {
			return fault.Wrap(err, fmsg.WithDesc("listen", "Could not listen to "+in.String()))
		}
		defer stop()

		logger.Info("listening", "in", in.String(), "scale", scales.Name(scale.ID(listenScale)), "root", mode.NoteName(listenRoot))
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		<-ctx.Done()
		return nil
	},
}

type namedPort interface {
	String() string
}

func findPort[P namedPort](ports []P, hint string) (P, error) {
	var none P
	if len(ports) == 0 {
		return none, fault.Wrap(ErrNoPort, fmsg.WithDesc("no midi ports", "No MIDI ports found. Please ensure a MIDI device is connected."))
	}
	if hint == "" {
		return ports[0], nil
	}
	lower := strings.ToLower(hint)
	for _, p := range ports {
		if strings.Contains(strings.ToLower(p.String()), lower) {
			return p, nil
		}
	}
	return none, fault.Wrap(ErrNoPort, fmsg.WithDesc("no port matching "+hint, "No MIDI port name contains "+hint))
}

// heldNotes tracks keys between the driver callback and the debounced
// chord naming, which run on different goroutines.
type heldNotes struct {
	mu       sync.Mutex
	root     int
	scale    scale.ID
	snapped  map[uint8]uint8 // pressed key -> key sent out
	debounce func(f func())
}

func newHeldNotes(id scale.ID, root int, settle time.Duration) *heldNotes {
	return &heldNotes{
		root:     root,
		scale:    id,
		snapped:  make(map[uint8]uint8),
		debounce: debounce.New(settle),
	}
}

func (h *heldNotes) press(key uint8) uint8 {
	snapped := midi.QuantizeKey(quantizer, key, h.root, h.scale)
	h.mu.Lock()
	h.snapped[key] = snapped
	h.mu.Unlock()
	h.debounce(h.name)
	return snapped
}

func (h *heldNotes) release(key uint8) (uint8, bool) {
	h.mu.Lock()
	snapped, ok := h.snapped[key]
	delete(h.snapped, key)
	h.mu.Unlock()
	h.debounce(h.name)
	return snapped, ok
}

func (h *heldNotes) keys() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	var keys []uint8
	for _, k := range h.snapped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func (h *heldNotes) name() {
	keys := h.keys()
	if len(keys) == 0 {
		return
	}
	m, ok := chords.Identify(keys)
	if !ok {
		logger.Info("held", "keys", keys)
		return
	}
	logger.Info("chord", "name", mode.NoteName(m.Root)+m.Name, "inversion", m.Inversion, "keys", keys)
}
