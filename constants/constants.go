package constants

import "os"

func getEnv(name string, fallback string) string {
	val := os.Getenv(name)
	if val != "" {
		return val
	}
	return fallback
}

func GetPort() string {
	return getEnv("CVTHEORY_PORT", "8080")
}

func GetOutDir() string {
	return getEnv("CVTHEORY_OUT_DIR", "./out")
}

func GetMidiInHint() string {
	return getEnv("CVTHEORY_MIDI_IN", "")
}

func GetMidiOutHint() string {
	return getEnv("CVTHEORY_MIDI_OUT", "")
}

func GetLogLevel() string {
	return getEnv("CVTHEORY_LOG_LEVEL", "info")
}

// 1V/oct
const SemitoneVolts = 1.0 / 12.0

// every voicing is padded out to this many voices
const NumVoices = 6

// MIDI key that sounds at 0V
const ReferenceNote = 60

// upper end of the 0-10V parameter convention
const MaxParamVolts = 10.0
