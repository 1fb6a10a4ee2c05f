package parameter

import "time"

// Signature Chime
const (
	// AudioSampleRate is the synthesis and playback rate in Hz
	AudioSampleRate = 48000

	// ChimeNoteCount is the number of notes in a signature chime
	ChimeNoteCount = 4

	// ChimeNoteDuration is the length of each synthesized note
	ChimeNoteDuration = 90 * time.Millisecond

	// ChimeAttack / ChimeRelease shape each note's envelope
	ChimeAttack  = 8 * time.Millisecond
	ChimeRelease = 60 * time.Millisecond

	// ChimeBaseFreq is the root of the pentatonic walk (A4)
	ChimeBaseFreq = 440.0

	// ChimeOvertoneGain mixes a one-octave overtone into each note
	ChimeOvertoneGain = 0.3

	// ChimeGain is the final output level
	ChimeGain = 0.5

	// AudioBufferLen is the speaker buffer duration
	AudioBufferLen = 100 * time.Millisecond
)
