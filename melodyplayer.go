// Package melodyplayer is a non-blocking, poll-driven melody player.
// A Player converts notes and a tempo into timed start/stop commands on
// a square-wave tone driver. It never owns a goroutine: the caller
// invokes Advance (melody) or AdvanceBeat (metronome) once per
// iteration of its own loop, and each call does a bounded amount of
// work. The only suspension is the configurable pause of up to 100 ms
// after a note's stop edge.
package melodyplayer

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/Carlo47/melodyplayer-go/internal/seq"
	"github.com/Carlo47/melodyplayer-go/music"
)

// ToneDriver is the output the player drives. StartTone begins the
// carrier for a pitch and reports false for a Rest, which the player
// treats as silence. SetAmplitude sets the output level 0..511
// (0..50% duty cycle) without starting or stopping the carrier; Silence
// stops the carrier without changing the configured level.
// internal/pwm implements it on a speaker, internal/mid on a MIDI port.
type ToneDriver interface {
	StartTone(p music.Pitch, octave int) bool
	SetAmplitude(level int)
	Silence()
}

// Clock supplies a wrapping millisecond counter and a bounded pause.
// The default clock reads the monotonic wall clock; tests substitute a
// hand-cranked one.
type Clock interface {
	NowMs() uint32
	SleepMs(ms uint32)
}

type PlayerOption func(*playerConfig)

type playerConfig struct {
	clock     Clock
	rng       *rand.Rand
	tempo     music.Tempo
	amplitude int
	gapMs     int
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{
		tempo:     music.Moderato,
		amplitude: 1,
		gapMs:     10,
	}
}

// WithClock substitutes the elapsed-time source, mainly for tests.
func WithClock(c Clock) PlayerOption {
	return func(cfg *playerConfig) { cfg.clock = c }
}

// WithRandSource sets the random source used by random selection mode.
func WithRandSource(rng *rand.Rand) PlayerOption {
	return func(cfg *playerConfig) { cfg.rng = rng }
}

// WithTempo sets the initial tempo preset.
func WithTempo(t music.Tempo) PlayerOption {
	return func(cfg *playerConfig) { cfg.tempo = t }
}

// WithAmplitude sets the initial output level (0..511).
func WithAmplitude(level int) PlayerOption {
	return func(cfg *playerConfig) { cfg.amplitude = level }
}

// WithLegatoGap sets the initial pause between notes in ms (0..100).
func WithLegatoGap(ms int) PlayerOption {
	return func(cfg *playerConfig) { cfg.gapMs = ms }
}

// Player owns the playback configuration and state. Its methods are
// safe to call from a UI goroutine while another goroutine polls
// Advance or AdvanceBeat; setters take effect at the next poll
// boundary and never interrupt a note already sounding.
type Player struct {
	mu    sync.Mutex
	tone  ToneDriver
	clock Clock
	cfg   *seq.Config
	melo  *seq.Sequencer
	beat  seq.Metronome
}

// NewPlayer returns a player driving the given tone output. Defaults:
// Moderato, amplitude 1, a 10 ms note gap, sequential selection, no
// melody.
func NewPlayer(tone ToneDriver, opts ...PlayerOption) (*Player, error) {
	if tone == nil {
		return nil, errors.New("tone driver must not be nil")
	}
	cfg := defaultPlayerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = newWallClock()
	}
	sc := seq.NewConfig()
	if err := sc.SetTempo(cfg.tempo); err != nil {
		return nil, err
	}
	sc.SetAmplitude(cfg.amplitude)
	sc.SetLegatoGap(cfg.gapMs)
	return &Player{
		tone:  tone,
		clock: cfg.clock,
		cfg:   sc,
		melo:  seq.NewSequencer(cfg.rng),
	}, nil
}

// SetMelody swaps the melody to play. The sequencer keeps its cursor;
// the swap takes effect at the next Advance.
func (p *Player) SetMelody(m music.Melody) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.melo.SetMelody(m)
}

// SetTempo selects a tempo preset.
func (p *Player) SetTempo(t music.Tempo) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.SetTempo(t)
}

// SetTempoBPM sets an arbitrary tempo in beats per minute. Values <= 0
// are rejected and the previous tempo stays in effect.
func (p *Player) SetTempoBPM(bpm int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.SetTempoBPM(bpm)
}

// TempoBPM returns the current tempo.
func (p *Player) TempoBPM() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.TempoBPM()
}

// SetAmplitude sets the output level, clamped into [0,511].
func (p *Player) SetAmplitude(level int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.SetAmplitude(level)
}

// Amplitude returns the configured output level.
func (p *Player) Amplitude() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.Amplitude()
}

// SetLegatoGap sets the pause after each note, clamped into [0,100] ms.
func (p *Player) SetLegatoGap(ms int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.SetLegatoGap(ms)
}

// LegatoGapMs returns the configured pause between notes.
func (p *Player) LegatoGapMs() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.LegatoGapMs()
}

// SetRandomMode switches to independently drawn notes per step.
func (p *Player) SetRandomMode() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.SetRandomMode()
}

// SetNormalMode restores in-order playback.
func (p *Player) SetNormalMode() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.SetNormalMode()
}

// RandomMode reports whether random selection is active.
func (p *Player) RandomMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.RandomMode()
}

// Advance polls melody playback forward by one step. With repeat set,
// reaching the end of the melody rewinds to the first note; otherwise
// further calls are no-ops. Call it once per iteration of the host
// loop, instead of (not alongside) AdvanceBeat.
func (p *Player) Advance(repeat bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.melo.Step(repeat, p.cfg, p.tone, p.clock)
}

// AdvanceBeat polls the metronome forward by one step, clicking the
// reference pitch at the configured tempo's beat interval.
func (p *Player) AdvanceBeat() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.beat.Step(p.cfg, p.tone, p.clock)
}

// PlayNote polls a single note outside any melody and reports true once
// it has finished. The finished state latches; use RearmNoteAfter to
// allow the note to start again.
func (p *Player) PlayNote(n music.Note) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.melo.StepNote(n, p.cfg, p.tone, p.clock)
}

// RearmNoteAfter re-enables PlayNote once msWait has elapsed since the
// previous rearm. Advance rearms unconditionally before every step, so
// this only matters for manual PlayNote use.
func (p *Player) RearmNoteAfter(msWait uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.melo.RearmAfter(msWait, p.clock)
}

// Finished reports whether the melody has played through. It never
// holds while polling with repeat set, except for the single rewind
// step at the end of each pass.
func (p *Player) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.melo.Finished()
}

// Mute silences the output immediately without touching the configured
// amplitude level or the playback state.
func (p *Player) Mute() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tone.Silence()
}
