// Package songs holds the built-in melodies the command-line front ends
// offer. Each melody is a plain read-only note table; the player never
// modifies them.
package songs

import (
	"strings"

	"github.com/Carlo47/melodyplayer-go/music"
)

// Song pairs a melody with its display name.
type Song struct {
	Name   string
	Melody music.Melody
}

// All lists the built-in songs in menu order.
func All() []Song {
	return []Song{
		{"Am Louenesee", AmLouenesee},
		{"Chum Bueb", ChumBueb},
		{"Entertainer", Entertainer},
		{"Old Mac Donald", OldMacDonald},
		{"Martinshorn", Martinshorn},
		{"Postauto", Postauto},
		{"Chromatic Scale", ChromaticScale},
		{"Pentatonic Scale", PentatonicScale},
	}
}

// ByName looks a song up by its display name, ignoring case and
// spacing, so "old-mac-donald" finds "Old Mac Donald".
func ByName(name string) (Song, bool) {
	canon := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "-", "")
		return strings.ReplaceAll(s, " ", "")
	}
	want := canon(name)
	for _, s := range All() {
		if canon(s.Name) == want {
			return s, true
		}
	}
	return Song{}, false
}

var OldMacDonald = music.Melody{
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.D, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.D, Octave: 4, Len: music.N2},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N2d},

	{Pitch: music.D, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.D, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.D, Octave: 4, Len: music.N2},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N2d},

	{Pitch: music.D, Octave: 4, Len: music.N8},
	{Pitch: music.D, Octave: 4, Len: music.N8},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},

	{Pitch: music.G, Octave: 3, Len: music.N4},
	{Pitch: music.G, Octave: 3, Len: music.N4},
	{Pitch: music.G, Octave: 3, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},

	{Pitch: music.G, Octave: 4, Len: music.N8},
	{Pitch: music.G, Octave: 4, Len: music.N8},
	{Pitch: music.G, Octave: 4, Len: music.N4},

	{Pitch: music.G, Octave: 3, Len: music.N8},
	{Pitch: music.G, Octave: 3, Len: music.N8},
	{Pitch: music.G, Octave: 3, Len: music.N4},

	{Pitch: music.G, Octave: 4, Len: music.N8},
	{Pitch: music.G, Octave: 4, Len: music.N8},
	{Pitch: music.G, Octave: 4, Len: music.N8},
	{Pitch: music.G, Octave: 4, Len: music.N8},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.D, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.D, Octave: 4, Len: music.N2},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N1},
	{Pitch: music.Rest, Octave: 4, Len: music.N2},
}

var ChumBueb = music.Melody{
	{Pitch: music.E, Octave: 4, Len: music.N2},
	{Pitch: music.E, Octave: 5, Len: music.N2d},
	{Pitch: music.Cs, Octave: 5, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.Fs, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4d},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N2},
	{Pitch: music.Rest, Octave: 4, Len: music.N1d},
}

var AmLouenesee = music.Melody{
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N8d},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N16},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8d},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N16},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N8},
	{Pitch: music.Rest, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N8d},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N16},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8d},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.Cs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.Cs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.B, Octave: 4, Len: music.N16},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8d},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N16},
	{Pitch: music.Gs, Octave: 4, Len: music.N16},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N8},
	{Pitch: music.Rest, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N4},
	{Pitch: music.Fs, Octave: 4, Len: music.N16},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8d},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.Cs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.Cs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.Gs, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N4d},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.Cs, Octave: 5, Len: music.N16},
	{Pitch: music.Cs, Octave: 5, Len: music.N16},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.Cs, Octave: 5, Len: music.N8d},
	{Pitch: music.Cs, Octave: 5, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.Cs, Octave: 5, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N8},
	{Pitch: music.Rest, Octave: 4, Len: music.N8d},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.Cs, Octave: 5, Len: music.N8},
	{Pitch: music.Cs, Octave: 5, Len: music.N8d},
	{Pitch: music.Cs, Octave: 5, Len: music.N16},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N8},
	{Pitch: music.Rest, Octave: 4, Len: music.N8d},
	{Pitch: music.E, Octave: 4, Len: music.N16},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.Fs, Octave: 4, Len: music.N8},
	{Pitch: music.Gs, Octave: 4, Len: music.N8},
	{Pitch: music.A, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N8},
	{Pitch: music.Rest, Octave: 4, Len: music.N8},
	{Pitch: music.B, Octave: 3, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.A, Octave: 4, Len: music.N16},
	{Pitch: music.Gs, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N4},
	{Pitch: music.Rest, Octave: 4, Len: music.N16},
}

var Entertainer = music.Melody{
	{Pitch: music.D, Octave: 4, Len: music.N8},
	{Pitch: music.Eb, Octave: 4, Len: music.N8},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.C, Octave: 5, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.C, Octave: 5, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N8},
	{Pitch: music.C, Octave: 5, Len: music.N8},
	{Pitch: music.C, Octave: 5, Len: music.N2},
	{Pitch: music.Rest, Octave: 5, Len: music.N8},
	{Pitch: music.C, Octave: 5, Len: music.N8},
	{Pitch: music.D, Octave: 5, Len: music.N8},
	{Pitch: music.Eb, Octave: 5, Len: music.N8},
	{Pitch: music.E, Octave: 5, Len: music.N8},
	{Pitch: music.C, Octave: 5, Len: music.N8},
	{Pitch: music.D, Octave: 5, Len: music.N8},
	{Pitch: music.E, Octave: 5, Len: music.N4},
	{Pitch: music.B, Octave: 4, Len: music.N8},
	{Pitch: music.D, Octave: 5, Len: music.N4},
	{Pitch: music.C, Octave: 5, Len: music.N2d},
	{Pitch: music.Rest, Octave: 5, Len: music.N1d},
}

var Martinshorn = music.Melody{
	{Pitch: music.Cs, Octave: 4, Len: music.N4},
	{Pitch: music.Gs, Octave: 4, Len: music.N4},
}

var Postauto = music.Melody{
	{Pitch: music.Cs, Octave: 5, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4d},
	{Pitch: music.Rest, Octave: 4, Len: music.N2d},
}

var PentatonicScale = music.Melody{
	{Pitch: music.C, Octave: 4, Len: music.N4},
	{Pitch: music.D, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.B, Octave: 4, Len: music.N4},
}

var ChromaticScale = music.Melody{
	{Pitch: music.C, Octave: 4, Len: music.N4},
	{Pitch: music.Cs, Octave: 4, Len: music.N4},
	{Pitch: music.D, Octave: 4, Len: music.N4},
	{Pitch: music.Eb, Octave: 4, Len: music.N4},
	{Pitch: music.E, Octave: 4, Len: music.N4},
	{Pitch: music.F, Octave: 4, Len: music.N4},
	{Pitch: music.Fs, Octave: 4, Len: music.N4},
	{Pitch: music.G, Octave: 4, Len: music.N4},
	{Pitch: music.Gs, Octave: 4, Len: music.N4},
	{Pitch: music.A, Octave: 4, Len: music.N4},
	{Pitch: music.Bb, Octave: 4, Len: music.N4},
	{Pitch: music.B, Octave: 4, Len: music.N4},
	{Pitch: music.C, Octave: 5, Len: music.N4},
}
