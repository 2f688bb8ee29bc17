// Package pwm implements the player's tone capability as a pulse-wave
// speaker. The amplitude level 0..511 maps to a 0..50% duty cycle, the
// way a PWM pin drives a piezo, so "louder" means a wider pulse rather
// than a taller one.
package pwm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Carlo47/melodyplayer-go/music"
)

const (
	maxLevel   = 511
	dutyScale  = 1024 // level / dutyScale = duty cycle, so 511 -> ~50%
	masterGain = 0.5
	bufferSize = 20 * time.Millisecond
)

// Speaker generates the pulse wave. The control methods are called from
// the polling goroutine while sample generation runs on the audio
// thread, so the carrier frequency, duty cycle and gate are shared
// through atomics; the phase and filter state belong to the audio
// thread alone.
type Speaker struct {
	sampleRate float64

	freqBits atomic.Uint64 // math.Float64bits of the carrier in Hz
	dutyBits atomic.Uint64 // math.Float64bits of the duty cycle 0..0.5
	gate     atomic.Bool   // carrier enabled

	// audio-thread state
	phase float64
	dcIn  float64
	dcOut float64
	buf   []float32

	player *ebitaudio.Player
}

var (
	contextOnce sync.Once
	context     *ebitaudio.Context
	contextRate int
)

func sharedContext(sampleRate int) (*ebitaudio.Context, error) {
	contextOnce.Do(func() {
		contextRate = sampleRate
		context = ebitaudio.NewContext(sampleRate)
	})
	if contextRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", contextRate, sampleRate)
	}
	return context, nil
}

// NewSpeaker opens the audio output and starts streaming. The stream
// is silent until a tone is started at a nonzero amplitude.
func NewSpeaker(sampleRate int) (*Speaker, error) {
	s, err := newSpeaker(sampleRate)
	if err != nil {
		return nil, err
	}
	ctx, err := sharedContext(sampleRate)
	if err != nil {
		return nil, err
	}
	pl, err := ctx.NewPlayerF32(s)
	if err != nil {
		return nil, err
	}
	pl.SetBufferSize(bufferSize)
	s.player = pl
	pl.Play()
	return s, nil
}

// newSpeaker builds the generator without touching the audio device,
// which is what the tests use.
func newSpeaker(sampleRate int) (*Speaker, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}
	return &Speaker{sampleRate: float64(sampleRate)}, nil
}

// Close stops the audio stream.
func (s *Speaker) Close() error {
	if s.player == nil {
		return nil
	}
	return s.player.Close()
}

// StartTone begins the carrier for the pitch in the given octave and
// reports false for a Rest, leaving the output silent.
func (s *Speaker) StartTone(p music.Pitch, octave int) bool {
	f := p.Frequency(octave)
	if f == 0 {
		s.gate.Store(false)
		return false
	}
	s.freqBits.Store(math.Float64bits(f))
	s.gate.Store(true)
	return true
}

// SetAmplitude sets the pulse width. Levels outside 0..511 saturate.
func (s *Speaker) SetAmplitude(level int) {
	if level < 0 {
		level = 0
	}
	if level > maxLevel {
		level = maxLevel
	}
	s.dutyBits.Store(math.Float64bits(float64(level) / dutyScale))
}

// Silence stops the carrier but keeps the configured pulse width, so
// the next StartTone sounds at the same level.
func (s *Speaker) Silence() { s.gate.Store(false) }

// render fills dst with interleaved stereo samples. The unipolar pulse
// runs through a one-pole DC blocker (same trick as a chiptune voice)
// so the speaker cone is not held off-center between notes.
func (s *Speaker) render(dst []float32) {
	freq := math.Float64frombits(s.freqBits.Load())
	duty := math.Float64frombits(s.dutyBits.Load())
	on := s.gate.Load() && duty > 0 && freq > 0
	step := freq / s.sampleRate
	for i := 0; i+1 < len(dst); i += 2 {
		raw := 0.0
		if on {
			if s.phase < duty {
				raw = 1.0
			}
			s.phase += step
			for s.phase >= 1 {
				s.phase -= 1
			}
		}
		out := raw - s.dcIn + 0.995*s.dcOut
		s.dcIn = raw
		s.dcOut = out
		v := float32(out * masterGain)
		dst[i], dst[i+1] = v, v
	}
}

// Read streams float32 little-endian stereo frames to the audio layer.
func (s *Speaker) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	if cap(s.buf) < need {
		s.buf = make([]float32, need)
	}
	s.buf = s.buf[:need]
	s.render(s.buf)
	for i, v := range s.buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	return frames * 8, nil
}
