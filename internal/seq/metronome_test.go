package seq

import (
	"testing"

	"github.com/Carlo47/melodyplayer-go/music"
)

func TestMetronomeClicksAtBeatInterval(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	if err := cfg.SetTempoBPM(120); err != nil { // beat interval: 500 ms
		t.Fatal(err)
	}
	m := &Metronome{}

	for i := 0; i < 2600; i++ {
		m.Step(cfg, tone, clk)
		clk.advance(1)
	}

	starts := tone.ofKind(evStart)
	if len(starts) < 5 {
		t.Fatalf("got %d clicks over 2.6 s at 120 BPM, want at least 5", len(starts))
	}
	for i := 1; i < len(starts); i++ {
		gap := starts[i].atMs - starts[i-1].atMs
		if gap < 500 || gap > 503 {
			t.Errorf("click %d spaced %d ms after previous, want 500 ms (+ poll slack)", i, gap)
		}
	}
	for _, ev := range starts {
		if ev.pitch != music.A || ev.octave != 7 {
			t.Errorf("click pitch = %v octave %d, want reference pitch A7", ev.pitch, ev.octave)
		}
	}
}

func TestMetronomeClickWidth(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	m := &Metronome{}

	for i := 0; i < 600; i++ {
		m.Step(cfg, tone, clk)
		clk.advance(1)
	}

	// Each click must be cut within the 4 ms width plus one poll.
	starts := tone.ofKind(evStart)
	offs := tone.ofKind(evOff)
	for _, s := range starts {
		cut := ^uint32(0)
		for _, o := range offs {
			if o.atMs >= s.atMs {
				cut = o.atMs - s.atMs
				break
			}
		}
		if cut > clickWidthMs+1 {
			t.Errorf("click at %d ms audible for %d ms, want <= %d", s.atMs, cut, clickWidthMs+1)
		}
	}
}

func TestMetronomeUsesConfiguredAmplitude(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	cfg.SetAmplitude(100)
	m := &Metronome{}

	m.Step(cfg, tone, clk)
	amps := tone.ofKind(evAmp)
	if len(amps) != 1 || amps[0].level != 100 {
		t.Fatalf("amplitude commands = %+v, want one at level 100", amps)
	}
}

func TestMetronomeTracksTempoChanges(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	if err := cfg.SetTempoBPM(60); err != nil { // 1000 ms beat
		t.Fatal(err)
	}
	m := &Metronome{}
	for i := 0; i < 1100; i++ {
		m.Step(cfg, tone, clk)
		clk.advance(1)
	}
	if err := cfg.SetTempoBPM(200); err != nil { // 300 ms beat
		t.Fatal(err)
	}
	markMs := clk.ms
	for i := 0; i < 1000; i++ {
		m.Step(cfg, tone, clk)
		clk.advance(1)
	}

	var after []toneEvent
	for _, ev := range tone.ofKind(evStart) {
		if ev.atMs >= markMs {
			after = append(after, ev)
		}
	}
	if len(after) < 3 {
		t.Fatalf("got %d clicks in the second after speeding up, want ~3", len(after))
	}
	for i := 1; i < len(after); i++ {
		gap := after[i].atMs - after[i-1].atMs
		if gap < 300 || gap > 303 {
			t.Errorf("click spacing after tempo change = %d ms, want 300 ms (+ poll slack)", gap)
		}
	}
}
