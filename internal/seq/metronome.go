package seq

import "github.com/Carlo47/melodyplayer-go/music"

// The metronome clicks on the reference pitch A7; the click is cut
// after a few milliseconds so it reads as a tick, not a tone.
const (
	beatPitch    = music.A
	beatOctave   = 7
	clickWidthMs = 4
)

// Metronome produces a periodic click at the configured tempo's beat
// interval. Its lifecycle is independent of the sequencer; the caller
// decides which of the two drives the tone capability on a given poll.
type Metronome struct {
	started bool
	startMs uint32
}

// Step advances the pulse train by one poll. A fresh beat triggers the
// reference pitch at the configured amplitude; past the click width the
// output is silenced, and past one beat interval the metronome rearms
// so the next step clicks again.
func (m *Metronome) Step(cfg *Config, tone Tone, clk Clock) {
	if !m.started {
		tone.StartTone(beatPitch, beatOctave)
		tone.SetAmplitude(cfg.Amplitude())
		m.started = true
		m.startMs = clk.NowMs()
	}
	elapsed := clk.NowMs() - m.startMs
	if elapsed > clickWidthMs {
		tone.Silence()
	}
	if elapsed > 60000/uint32(cfg.TempoBPM()) {
		m.started = false
	}
}
