package seq

import (
	"fmt"

	"github.com/Carlo47/melodyplayer-go/music"
)

// Config carries the playback settings read by the note player and the
// metronome on every step: tempo, amplitude, legato gap and selection
// mode. Mutate it only through the setters; they keep every field
// inside the range the step functions rely on.
type Config struct {
	tempoBPM  int
	amplitude int
	gapMs     uint32
	random    bool
}

const (
	maxAmplitude = 511
	maxGapMs     = 100
)

// NewConfig returns the default settings: Moderato, amplitude 1, a
// 10 ms gap between notes, sequential selection.
func NewConfig() *Config {
	return &Config{
		tempoBPM:  int(music.Moderato),
		amplitude: 1,
		gapMs:     10,
	}
}

// SetTempo selects one of the named tempo presets.
func (c *Config) SetTempo(t music.Tempo) error {
	return c.SetTempoBPM(int(t))
}

// SetTempoBPM sets the tempo to an arbitrary number of quarter-note
// beats per minute. Non-positive values are rejected and the previous
// tempo stays in effect, so DurationMs never divides by zero.
func (c *Config) SetTempoBPM(bpm int) error {
	if bpm <= 0 {
		return fmt.Errorf("tempo must be positive, got %d", bpm)
	}
	c.tempoBPM = bpm
	return nil
}

// TempoBPM returns the current tempo in beats per minute. Always > 0.
func (c *Config) TempoBPM() int { return c.tempoBPM }

// SetAmplitude sets the output level, clamped into [0,511].
func (c *Config) SetAmplitude(level int) {
	if level < 0 {
		level = 0
	}
	if level > maxAmplitude {
		level = maxAmplitude
	}
	c.amplitude = level
}

// Amplitude returns the configured output level.
func (c *Config) Amplitude() int { return c.amplitude }

// SetLegatoGap sets the silence inserted after each note's stop edge,
// clamped into [0,100] ms. 0 plays legato.
func (c *Config) SetLegatoGap(ms int) {
	if ms < 0 {
		ms = 0
	}
	if ms > maxGapMs {
		ms = maxGapMs
	}
	c.gapMs = uint32(ms)
}

// LegatoGapMs returns the configured inter-note gap.
func (c *Config) LegatoGapMs() uint32 { return c.gapMs }

// SetRandomMode makes the sequencer sound an independently drawn note
// at each step instead of the one under the cursor.
func (c *Config) SetRandomMode() { c.random = true }

// SetNormalMode restores sequential selection.
func (c *Config) SetNormalMode() { c.random = false }

// RandomMode reports whether random selection is active.
func (c *Config) RandomMode() bool { return c.random }
