// Package music defines the vocabulary for authoring melodies: pitch
// classes, note lengths in 1/64-whole-note units, tempo presets and the
// Note/Melody value types consumed by the player.
package music

import "math"

// Pitch is a pitch class within an octave, or Rest for silence.
type Pitch int

const (
	C Pitch = iota
	Cs
	D
	Eb
	E
	F
	Fs
	G
	Gs
	A
	Bb
	B
	// Rest marks a silent note; it occupies time like any other note
	// but produces no carrier. The octave of a Rest is ignored.
	Rest
)

var pitchNames = [...]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "G#", "A", "Bb", "B", "Rest"}

func (p Pitch) String() string {
	if p < C || p > Rest {
		return "?"
	}
	return pitchNames[p]
}

// Frequency returns the equal-tempered frequency in Hz of the pitch in
// the given octave, tuned to A4 = 440 Hz. Rest returns 0.
func (p Pitch) Frequency(octave int) float64 {
	if p == Rest || p < C || p > B {
		return 0
	}
	semitones := int(p) - int(A) + (octave-4)*12
	return 440 * math.Pow(2, float64(semitones)/12)
}

// Len is a note length expressed in 1/64-whole-note units, so a quarter
// note is 16 and a dotted half note is 48. The duration in wall-clock
// time follows from the tempo (see the player's duration conversion).
type Len uint32

const (
	N64  Len = 1  // sixty-fourth
	N32  Len = 2  // thirty-second
	N32d Len = 3  // dotted thirty-second
	N16  Len = 4  // sixteenth
	N16d Len = 6  // dotted sixteenth
	N8   Len = 8  // eighth
	N8d  Len = 12 // dotted eighth
	N4   Len = 16 // quarter
	N4d  Len = 24 // dotted quarter
	N2   Len = 32 // half
	N2d  Len = 48 // dotted half
	N1   Len = 64 // whole
	N1d  Len = 96 // dotted whole
)

// QuarterLen is the reference unit: a quarter note in 64ths.
// One beat of the tempo is one quarter note.
const QuarterLen Len = 16

// Note is one melody element: a pitch in an octave, held for a relative
// length. Immutable value; copy freely.
type Note struct {
	Pitch  Pitch
	Octave int
	Len    Len
}

// Melody is an ordered, finite sequence of notes. The player treats it
// as read-only; it is owned by whoever authored it.
type Melody []Note

// Tempo is a playing speed in quarter-note beats per minute. The named
// presets follow the classical tempo markings.
type Tempo int

const (
	Largo       Tempo = 50
	Larghetto   Tempo = 63
	Adagio      Tempo = 71
	Andante     Tempo = 92
	Moderato    Tempo = 114
	Allegro     Tempo = 144
	Presto      Tempo = 184
	Prestissimo Tempo = 204
)

func (t Tempo) String() string {
	switch t {
	case Largo:
		return "Largo"
	case Larghetto:
		return "Larghetto"
	case Adagio:
		return "Adagio"
	case Andante:
		return "Andante"
	case Moderato:
		return "Moderato"
	case Allegro:
		return "Allegro"
	case Presto:
		return "Presto"
	case Prestissimo:
		return "Prestissimo"
	}
	return "custom"
}

// Presets lists the named tempi in ascending order, as offered by the
// interactive menu (1..8).
func Presets() []Tempo {
	return []Tempo{Largo, Larghetto, Adagio, Andante, Moderato, Allegro, Presto, Prestissimo}
}
