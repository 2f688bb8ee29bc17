package seq

import (
	"math/rand"
	"time"

	"github.com/Carlo47/melodyplayer-go/music"
)

// Sequencer walks a melody one note at a time, driving a NotePlayer on
// each step. The cursor advances when the current note finishes; in
// random mode the cursor still advances monotonically but the note
// sounded at each step is an independent uniform draw, so one pass over
// a melody of length N sounds N draws, not a permutation.
type Sequencer struct {
	melody music.Melody
	cursor int
	note   NotePlayer
	rng    *rand.Rand
}

// NewSequencer returns a sequencer with no melody. rng may be nil, in
// which case a time-seeded source is used; tests pass a seeded one.
func NewSequencer(rng *rand.Rand) *Sequencer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sequencer{rng: rng}
}

// SetMelody swaps the melody to walk. The cursor is deliberately not
// reset: the swap takes effect at the next step boundary, and a cursor
// past the end of the new melody either wraps (repeat) or halts, the
// same as reaching the end by playing.
func (s *Sequencer) SetMelody(m music.Melody) { s.melody = m }

// Step advances playback by one poll. Past the end of the melody it
// either rewinds (when repeat is set, costing one silent step) or does
// nothing, so polling a finished or empty melody stays a safe no-op.
func (s *Sequencer) Step(repeat bool, cfg *Config, tone Tone, clk Clock) {
	s.note.Reset()
	if s.cursor >= len(s.melody) {
		if repeat {
			s.cursor = 0
		}
		return
	}
	n := s.melody[s.cursor]
	if cfg.RandomMode() {
		n = s.melody[s.rng.Intn(len(s.melody))]
	}
	if s.note.Step(n, cfg, tone, clk) {
		s.cursor++
	}
}

// StepNote drives a single note through the shared note player, outside
// of any melody. Reports true when the note has finished; further calls
// keep returning true until the player is rearmed.
func (s *Sequencer) StepNote(n music.Note, cfg *Config, tone Tone, clk Clock) bool {
	return s.note.Step(n, cfg, tone, clk)
}

// RearmAfter forwards to the note player's compatibility rearm.
func (s *Sequencer) RearmAfter(msWait uint32, clk Clock) {
	s.note.RearmAfter(msWait, clk)
}

// Finished reports whether the cursor has run off the end of the
// melody. Always true for an empty melody.
func (s *Sequencer) Finished() bool { return s.cursor >= len(s.melody) }

// Cursor returns the current melody index.
func (s *Sequencer) Cursor() int { return s.cursor }
