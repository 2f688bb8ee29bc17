package music

import (
	"math"
	"testing"
)

func TestFrequencyConcertPitch(t *testing.T) {
	if got := A.Frequency(4); got != 440 {
		t.Fatalf("A4 = %v Hz, want 440", got)
	}
}

func TestFrequencyOctaveDoubles(t *testing.T) {
	for _, p := range []Pitch{C, E, Gs, B} {
		lo := p.Frequency(4)
		hi := p.Frequency(5)
		if math.Abs(hi-2*lo) > 1e-9 {
			t.Errorf("%v: octave 5 = %v, want double of octave 4 (%v)", p, hi, lo)
		}
	}
}

func TestFrequencyKnownValues(t *testing.T) {
	cases := []struct {
		p      Pitch
		octave int
		want   float64
	}{
		{C, 4, 261.63},
		{A, 7, 3520.00},
		{Gs, 4, 415.30},
		{E, 2, 82.41},
	}
	for _, c := range cases {
		got := c.p.Frequency(c.octave)
		if math.Abs(got-c.want) > 0.01 {
			t.Errorf("%v octave %d = %v Hz, want %v", c.p, c.octave, got, c.want)
		}
	}
}

func TestFrequencyRestIsZero(t *testing.T) {
	if got := Rest.Frequency(4); got != 0 {
		t.Fatalf("Rest frequency = %v, want 0", got)
	}
}

func TestLenUnits(t *testing.T) {
	if N4 != QuarterLen {
		t.Errorf("quarter note = %d units, want %d", N4, QuarterLen)
	}
	if N1 != 4*N4 {
		t.Errorf("whole note = %d units, want %d", N1, 4*N4)
	}
	if N4d != N4+N8 {
		t.Errorf("dotted quarter = %d units, want %d", N4d, N4+N8)
	}
}

func TestTempoPresets(t *testing.T) {
	presets := Presets()
	if len(presets) != 8 {
		t.Fatalf("got %d presets, want 8", len(presets))
	}
	if presets[0] != Largo || presets[7] != Prestissimo {
		t.Errorf("presets out of order: %v", presets)
	}
	for i := 1; i < len(presets); i++ {
		if presets[i] <= presets[i-1] {
			t.Errorf("presets not ascending at %d: %v", i, presets)
		}
	}
	if Largo != 50 || Prestissimo != 204 {
		t.Errorf("preset range = %d..%d, want 50..204", Largo, Prestissimo)
	}
}

func TestTempoString(t *testing.T) {
	if got := Moderato.String(); got != "Moderato" {
		t.Errorf("Moderato.String() = %q", got)
	}
	if got := Tempo(60).String(); got != "custom" {
		t.Errorf("Tempo(60).String() = %q, want custom", got)
	}
}

func TestPitchString(t *testing.T) {
	if got := Cs.String(); got != "C#" {
		t.Errorf("Cs.String() = %q, want C#", got)
	}
	if got := Pitch(99).String(); got != "?" {
		t.Errorf("out-of-range pitch String() = %q, want ?", got)
	}
}
