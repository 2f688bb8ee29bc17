package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	melodyplayer "github.com/Carlo47/melodyplayer-go"
	"github.com/Carlo47/melodyplayer-go/internal/mid"
	"github.com/Carlo47/melodyplayer-go/internal/pwm"
	"github.com/Carlo47/melodyplayer-go/internal/songs"
	"github.com/Carlo47/melodyplayer-go/music"
)

func main() {
	var (
		song       = flag.String("song", "old mac donald", "song to play (see -list)")
		list       = flag.Bool("list", false, "list built-in songs and exit")
		beats      = flag.Bool("beats", false, "beat the beat instead of playing a song")
		repeat     = flag.Bool("repeat", false, "repeat the song until interrupted")
		random     = flag.Bool("random", false, "play the song's notes in random order")
		preset     = flag.String("preset", "", "tempo preset: largo|larghetto|adagio|andante|moderato|allegro|presto|prestissimo")
		tempo      = flag.Int("tempo", 0, "tempo in beats per minute (overrides -preset)")
		volume     = flag.Int("volume", 100, "output level 0..511")
		legato     = flag.Int("legato", 10, "gap between notes in ms, 0..100")
		midiPort   = flag.Int("midi", -1, "MIDI output port index instead of the speaker (see -midi-ports)")
		midiPorts  = flag.Bool("midi-ports", false, "list MIDI output ports and exit")
		sampleRate = flag.Int("sample-rate", 48000, "speaker sample rate")
	)
	flag.Parse()

	if *list {
		for _, s := range songs.All() {
			fmt.Printf("%-20s (%d notes)\n", s.Name, len(s.Melody))
		}
		return
	}
	if *midiPorts {
		for i, name := range mid.Ports() {
			fmt.Printf("%d: %s\n", i, name)
		}
		return
	}

	tone, closeTone, err := openTone(*midiPort, *sampleRate)
	if err != nil {
		log.Fatal(err)
	}
	defer closeTone()

	pl, err := melodyplayer.NewPlayer(tone,
		melodyplayer.WithAmplitude(*volume),
		melodyplayer.WithLegatoGap(*legato),
	)
	if err != nil {
		log.Fatal(err)
	}
	if *preset != "" {
		t, err := parsePreset(*preset)
		if err != nil {
			log.Fatal(err)
		}
		if err := pl.SetTempo(t); err != nil {
			log.Fatal(err)
		}
	}
	if *tempo > 0 {
		if err := pl.SetTempoBPM(*tempo); err != nil {
			log.Fatal(err)
		}
	}
	if *random {
		pl.SetRandomMode()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *beats {
		fmt.Printf("beating the beat at %d BPM\n", pl.TempoBPM())
		for ctx.Err() == nil {
			pl.AdvanceBeat()
			time.Sleep(time.Millisecond)
		}
		return
	}

	s, ok := songs.ByName(*song)
	if !ok {
		log.Fatalf("unknown song %q (try -list)", *song)
	}
	pl.SetMelody(s.Melody)
	fmt.Printf("playing %q at %d BPM\n", s.Name, pl.TempoBPM())
	for ctx.Err() == nil {
		pl.Advance(*repeat)
		if !*repeat && pl.Finished() {
			break
		}
		time.Sleep(time.Millisecond)
	}
	pl.Mute()
	time.Sleep(100 * time.Millisecond) // let the audio buffer drain
}

// openTone picks the output: a MIDI port when one was requested, the
// pulse-wave speaker otherwise.
func openTone(midiPort, sampleRate int) (melodyplayer.ToneDriver, func(), error) {
	if midiPort >= 0 {
		d, err := mid.Open(midiPort)
		if err != nil {
			return nil, nil, err
		}
		return d, func() { d.Close() }, nil
	}
	s, err := pwm.NewSpeaker(sampleRate)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { s.Close() }, nil
}

func parsePreset(name string) (music.Tempo, error) {
	for _, t := range music.Presets() {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid -preset %q", name)
}
