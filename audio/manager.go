package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sigilfield/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// bufferStreamer plays a mono sample buffer to both channels once
type bufferStreamer struct {
	samples []float64
	pos     int
}

func (s *bufferStreamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := 0
	for i := range out {
		if s.pos >= len(s.samples) {
			break
		}
		v := s.samples[s.pos]
		out[i][0] = v
		out[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }

// Manager owns the speaker and mixes chimes into it
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a manager; Init before first playback
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init sets up the speaker; safe to call more than once
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferLen)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// PlayChime synthesizes and queues the chime for a key. No-op before
// Init succeeds.
func (m *Manager) PlayChime(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s := &bufferStreamer{samples: Chime(key)}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close silences and releases the speaker
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
