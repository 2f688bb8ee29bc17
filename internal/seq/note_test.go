package seq

import (
	"testing"

	"github.com/Carlo47/melodyplayer-go/music"
)

func TestNoteStartEdge(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	cfg.SetAmplitude(100)
	np := &NotePlayer{}

	done := np.Step(music.Note{Pitch: music.A, Octave: 4, Len: music.N4}, cfg, tone, clk)
	if done {
		t.Fatal("first step should not complete the note")
	}
	if len(tone.events) != 2 {
		t.Fatalf("got %d tone commands, want start + amplitude", len(tone.events))
	}
	if tone.events[0].kind != evStart || tone.events[0].pitch != music.A || tone.events[0].octave != 4 {
		t.Errorf("first command = %+v, want start of A4", tone.events[0])
	}
	if tone.events[1].kind != evAmp || tone.events[1].level != 100 {
		t.Errorf("second command = %+v, want amplitude 100", tone.events[1])
	}
}

func TestNoteRestNeverSoundsAmplitude(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	cfg.SetAmplitude(511)
	np := &NotePlayer{}
	rest := music.Note{Pitch: music.Rest, Octave: 4, Len: music.N4}

	for !np.Step(rest, cfg, tone, clk) {
		clk.advance(10)
	}
	if got := tone.ofKind(evAmp); len(got) != 0 {
		t.Fatalf("rest produced %d amplitude commands, want none", len(got))
	}
	if got := tone.ofKind(evOff); len(got) < 1 {
		t.Fatal("rest should be explicitly silenced")
	}
}

func TestNoteCompletesAtTargetDuration(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig() // Moderato, 114 BPM: quarter note is 526 ms
	cfg.SetLegatoGap(0)
	np := &NotePlayer{}
	n := music.Note{Pitch: music.E, Octave: 4, Len: music.N4}

	clk.ms = 1000
	if np.Step(n, cfg, tone, clk) {
		t.Fatal("start step completed the note")
	}
	clk.advance(525)
	if np.Step(n, cfg, tone, clk) {
		t.Fatal("note completed at 525 ms, target is 526")
	}
	if len(tone.ofKind(evOff)) != 0 {
		t.Fatal("stop edge issued before the target duration")
	}
	clk.advance(1)
	if !np.Step(n, cfg, tone, clk) {
		t.Fatal("note did not complete at 526 ms")
	}
	offs := tone.ofKind(evOff)
	if len(offs) != 1 || offs[0].atMs != 1526 {
		t.Fatalf("stop edges = %+v, want one at 1526", offs)
	}
}

func TestNoteExactlyOneEdgePair(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	np := &NotePlayer{}
	n := music.Note{Pitch: music.G, Octave: 4, Len: music.N8}

	// Poll far more often than needed, then keep polling after completion.
	for i := 0; i < 5000; i++ {
		np.Step(n, cfg, tone, clk)
		clk.advance(1)
	}
	if got := len(tone.ofKind(evStart)); got != 1 {
		t.Errorf("start edges = %d, want 1", got)
	}
	if got := len(tone.ofKind(evOff)); got != 1 {
		t.Errorf("stop edges = %d, want 1", got)
	}
}

func TestNoteLegatoGapPause(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	cfg.SetLegatoGap(25)
	np := &NotePlayer{}
	n := music.Note{Pitch: music.C, Octave: 5, Len: music.N16}

	for !np.Step(n, cfg, tone, clk) {
		clk.advance(1)
	}
	if len(clk.slept) != 1 || clk.slept[0] != 25 {
		t.Fatalf("slept %v, want one pause of 25 ms", clk.slept)
	}

	// The next note may not start before the gap has passed.
	stop := tone.ofKind(evOff)[0].atMs
	np.Reset()
	np.Step(n, cfg, tone, clk)
	start := tone.ofKind(evStart)[1].atMs
	if start-stop < 25 {
		t.Errorf("next start edge %d ms after stop edge, want >= 25", start-stop)
	}
}

func TestNoteTempoChangeRetargetsRemainder(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	if err := cfg.SetTempoBPM(60); err != nil { // quarter note: 1000 ms
		t.Fatal(err)
	}
	np := &NotePlayer{}
	n := music.Note{Pitch: music.D, Octave: 4, Len: music.N4}

	np.Step(n, cfg, tone, clk)
	clk.advance(400)
	if np.Step(n, cfg, tone, clk) {
		t.Fatal("note completed at 400 of 1000 ms")
	}
	// Speeding up shrinks the target below the elapsed time, so the very
	// next step finishes the note.
	if err := cfg.SetTempoBPM(204); err != nil { // quarter note: 294 ms
		t.Fatal(err)
	}
	if !np.Step(n, cfg, tone, clk) {
		t.Fatal("note did not complete after tempo change")
	}
}

func TestNoteElapsedSurvivesCounterWrap(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig() // 526 ms quarter note
	np := &NotePlayer{}
	n := music.Note{Pitch: music.F, Octave: 3, Len: music.N4}

	clk.ms = 4294967200 // 96 ms before rollover
	np.Step(n, cfg, tone, clk)
	clk.advance(300) // counter wrapped to 204
	if np.Step(n, cfg, tone, clk) {
		t.Fatal("note completed at 300 ms across the wrap")
	}
	clk.advance(226)
	if !np.Step(n, cfg, tone, clk) {
		t.Fatal("note did not complete at 526 ms across the wrap")
	}
}

func TestNotePlayedLatchAndRearm(t *testing.T) {
	tone, clk := newFakes()
	cfg := NewConfig()
	cfg.SetLegatoGap(0)
	np := &NotePlayer{}
	n := music.Note{Pitch: music.B, Octave: 4, Len: music.N16}

	for !np.Step(n, cfg, tone, clk) {
		clk.advance(1)
	}
	before := len(tone.events)
	if !np.Step(n, cfg, tone, clk) {
		t.Fatal("latched player should keep reporting done")
	}
	if len(tone.events) != before {
		t.Fatal("latched player issued tone commands")
	}

	clk.advance(500)
	np.RearmAfter(100, clk)
	if np.Step(n, cfg, tone, clk) {
		t.Fatal("rearmed player should start a fresh note")
	}
	if got := len(tone.ofKind(evStart)); got != 2 {
		t.Errorf("start edges = %d, want 2 after rearm", got)
	}
}
