package seq

import (
	"testing"

	"github.com/Carlo47/melodyplayer-go/music"
)

// fakeClock is a hand-cranked millisecond counter. SleepMs advances it,
// so legato pauses show up in recorded event timestamps.
type fakeClock struct {
	ms    uint32
	slept []uint32
}

func (c *fakeClock) NowMs() uint32 { return c.ms }

func (c *fakeClock) SleepMs(ms uint32) {
	c.slept = append(c.slept, ms)
	c.ms += ms
}

func (c *fakeClock) advance(ms uint32) { c.ms += ms }

const (
	evStart = "start"
	evAmp   = "amp"
	evOff   = "silence"
)

type toneEvent struct {
	kind   string
	pitch  music.Pitch
	octave int
	level  int
	atMs   uint32
}

// fakeTone records every command with the fake clock's timestamp.
type fakeTone struct {
	clk    *fakeClock
	events []toneEvent
}

func (f *fakeTone) StartTone(p music.Pitch, octave int) bool {
	f.events = append(f.events, toneEvent{kind: evStart, pitch: p, octave: octave, atMs: f.clk.ms})
	return p != music.Rest
}

func (f *fakeTone) SetAmplitude(level int) {
	f.events = append(f.events, toneEvent{kind: evAmp, level: level, atMs: f.clk.ms})
}

func (f *fakeTone) Silence() {
	f.events = append(f.events, toneEvent{kind: evOff, atMs: f.clk.ms})
}

func (f *fakeTone) ofKind(kind string) []toneEvent {
	var out []toneEvent
	for _, ev := range f.events {
		if ev.kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func newFakes() (*fakeTone, *fakeClock) {
	clk := &fakeClock{}
	return &fakeTone{clk: clk}, clk
}

func TestDurationMs(t *testing.T) {
	cases := []struct {
		length music.Len
		bpm    int
		want   uint32
	}{
		{music.N4, 114, 526},
		{music.N4, 60, 1000},
		{music.N1, 60, 4000},
		{music.N8, 120, 250},
		{music.N4d, 114, 789},
		{music.N64, 204, 18},
	}
	for _, c := range cases {
		if got := DurationMs(c.length, c.bpm); got != c.want {
			t.Errorf("DurationMs(%d, %d) = %d, want %d", c.length, c.bpm, got, c.want)
		}
	}
}
