// Package seq holds the poll-driven playback core: the per-note state
// machine, the melody sequencer and the metronome. Nothing here owns a
// goroutine or a timer; callers invoke the Step methods repeatedly and
// each call does a bounded amount of work.
package seq

import "github.com/Carlo47/melodyplayer-go/music"

// Tone is the output capability the core drives. StartTone begins the
// carrier for the pitch and reports false for a Rest, which must be
// treated as silence. SetAmplitude sets the output level (0..511, where
// 511 is a 50% duty cycle) without starting or stopping the carrier.
// Silence stops the carrier but leaves the configured level untouched.
type Tone interface {
	StartTone(p music.Pitch, octave int) bool
	SetAmplitude(level int)
	Silence()
}

// Clock supplies elapsed time as a wrapping millisecond counter, and a
// bounded pause. All elapsed computations in this package subtract
// NowMs readings as uint32 so they stay correct across rollover.
type Clock interface {
	NowMs() uint32
	SleepMs(ms uint32)
}

// DurationMs converts a relative note length into milliseconds at the
// given tempo. The divisions truncate left to right; that intermediate
// truncation is part of the contract, so a quarter note at 114 BPM is
// exactly 60000*16/16/114 = 526 ms. bpm must be positive; Config never
// hands out anything else.
func DurationMs(length music.Len, bpm int) uint32 {
	return 60000 * uint32(length) / uint32(music.QuarterLen) / uint32(bpm)
}
