package seq

import "github.com/Carlo47/melodyplayer-go/music"

// NotePlayer advances a single note through its idle → sounding → idle
// cycle, one non-blocking step per call. A note sounds across many
// steps but produces exactly one start edge and one stop edge on the
// tone capability. The timing state lives only for the current note.
type NotePlayer struct {
	started bool
	played  bool
	startMs uint32
	prevMs  uint32
}

// Step drives the note one poll forward and reports true once it has
// finished sounding. While idle it starts the carrier (or silences it
// for a Rest, so a Rest never reaches the output at a nonzero level),
// records the start time and returns false. While sounding it compares
// the wrap-safe elapsed time against the note's target duration,
// recomputed from the current tempo on every call, so a tempo change
// retargets the remainder of the note immediately. On completion it
// silences the output, pauses for the configured legato gap and latches
// the played flag until Reset.
func (np *NotePlayer) Step(n music.Note, cfg *Config, tone Tone, clk Clock) bool {
	if np.played {
		return true
	}
	if !np.started {
		if tone.StartTone(n.Pitch, n.Octave) {
			tone.SetAmplitude(cfg.Amplitude())
		} else {
			tone.Silence()
		}
		np.startMs = clk.NowMs()
		np.started = true
		return false
	}
	if clk.NowMs()-np.startMs >= DurationMs(n.Len, cfg.TempoBPM()) {
		tone.Silence()
		np.started = false
		np.played = true
		clk.SleepMs(cfg.LegatoGapMs())
		return true
	}
	return false
}

// Reset clears the played latch so the next Step starts a fresh note.
func (np *NotePlayer) Reset() { np.played = false }

// RearmAfter clears the played latch once msWait has elapsed since the
// previous rearm, for callers stepping single notes by hand. The
// sequencer resets the latch unconditionally before every step, so
// melody playback never goes through here.
func (np *NotePlayer) RearmAfter(msWait uint32, clk Clock) {
	if clk.NowMs()-np.prevMs >= msWait {
		np.prevMs = clk.NowMs()
		np.played = false
	}
}
