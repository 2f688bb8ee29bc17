// Package mid implements the player's tone capability on a MIDI output
// port: the start edge of a note becomes NoteOn, the stop edge NoteOff,
// and the amplitude level maps to the channel volume controller. This
// makes the player drive an external synth instead of the speaker.
package mid

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/Carlo47/melodyplayer-go/music"
)

const (
	channel  = 0
	velocity = 100
	ccVolume = 7
)

// Driver holds one open MIDI output and the key currently sounding.
// It is meant to be driven from a single polling goroutine.
type Driver struct {
	out      drivers.Out
	send     func(msg midi.Message) error
	key      uint8
	sounding bool
}

// Ports lists the MIDI output port names in index order.
func Ports() []string {
	outs := midi.GetOutPorts()
	names := make([]string, len(outs))
	for i, out := range outs {
		names[i] = out.String()
	}
	return names
}

// Open connects to the MIDI output port with the given index.
func Open(index int) (*Driver, error) {
	outs := midi.GetOutPorts()
	if index < 0 || index >= len(outs) {
		return nil, fmt.Errorf("invalid MIDI port index: %d", index)
	}
	send, err := midi.SendTo(outs[index])
	if err != nil {
		return nil, fmt.Errorf("failed to open MIDI port: %w", err)
	}
	return &Driver{out: outs[index], send: send}, nil
}

// Close releases any sounding note and shuts the MIDI driver down.
func (d *Driver) Close() error {
	d.Silence()
	midi.CloseDriver()
	return nil
}

// StartTone sends NoteOn for the pitch, ending any note still sounding
// first. Rests and pitches outside the MIDI key range report false and
// leave the port silent.
func (d *Driver) StartTone(p music.Pitch, octave int) bool {
	d.Silence()
	key, ok := Key(p, octave)
	if !ok {
		return false
	}
	if err := d.send(midi.NoteOn(channel, key, velocity)); err != nil {
		return false
	}
	d.key = key
	d.sounding = true
	return true
}

// SetAmplitude maps the level 0..511 onto the channel volume controller
// 0..127. Out-of-range levels saturate.
func (d *Driver) SetAmplitude(level int) {
	if level < 0 {
		level = 0
	}
	if level > 511 {
		level = 511
	}
	d.send(midi.ControlChange(channel, ccVolume, uint8(level/4)))
}

// Silence sends NoteOff for the sounding note, if any. The channel
// volume is left as configured.
func (d *Driver) Silence() {
	if !d.sounding {
		return
	}
	d.send(midi.NoteOff(channel, d.key))
	d.sounding = false
}

// Key converts a pitch and octave to a MIDI key number (C4 = 60).
// Rests and keys outside 0..127 report false.
func Key(p music.Pitch, octave int) (uint8, bool) {
	if p < music.C || p > music.B {
		return 0, false
	}
	key := (octave+1)*12 + int(p)
	if key < 0 || key > 127 {
		return 0, false
	}
	return uint8(key), true
}
