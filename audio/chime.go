package audio

import (
	"math"

	"github.com/lixenwraith/sigilfield/parameter"
	"github.com/lixenwraith/sigilfield/vmath"
)

// pentatonic is the semitone ladder a chime walks (minor pentatonic
// across one octave plus the root above)
var pentatonic = [...]int{0, 3, 5, 7, 10, 12}

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates a sine at freq for the given sample count
func oscillator(freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.AudioSampleRate)

	for i := 0; i < samples; i++ {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * parameter.AudioSampleRate)
	releaseSamples := int(releaseSec * parameter.AudioSampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// Chime synthesizes the signature chime for a key: a short walk on the
// pentatonic ladder, steps picked by the key's seeded stream, each note
// layered with a one-octave overtone. Pure: the same key always
// produces the identical sample buffer.
func Chime(key string) []float64 {
	rng := vmath.NewKeyRand("chime:" + key)
	noteSamples := int(parameter.ChimeNoteDuration.Seconds() * parameter.AudioSampleRate)

	out := make(floatBuffer, 0, noteSamples*parameter.ChimeNoteCount)
	for n := 0; n < parameter.ChimeNoteCount; n++ {
		semi := pentatonic[rng.Intn(len(pentatonic))]
		freq := parameter.ChimeBaseFreq * math.Pow(2, float64(semi)/12)

		note := oscillator(freq, noteSamples)
		applyEnvelope(note, parameter.ChimeAttack.Seconds(), parameter.ChimeRelease.Seconds())

		over := oscillator(freq*2, noteSamples)
		applyEnvelope(over, parameter.ChimeAttack.Seconds(), parameter.ChimeRelease.Seconds())
		note = mixFloatBuffers(note, over, parameter.ChimeOvertoneGain)

		for i := range note {
			note[i] *= parameter.ChimeGain
		}
		out = append(out, note...)
	}
	return out
}
