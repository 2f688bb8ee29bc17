package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	melodyplayer "github.com/Carlo47/melodyplayer-go"
	"github.com/Carlo47/melodyplayer-go/internal/pwm"
	"github.com/Carlo47/melodyplayer-go/internal/songs"
	"github.com/Carlo47/melodyplayer-go/music"
)

// engine polls the player from its own goroutine so the menu stays
// responsive. The menu only flips settings; which of the two poll entry
// points runs is the single shared mode flag.
type engine struct {
	player *melodyplayer.Player
	beats  atomic.Bool
	done   chan struct{}
}

func (e *engine) run() {
	for {
		select {
		case <-e.done:
			return
		default:
		}
		if e.beats.Load() {
			e.player.AdvanceBeat()
		} else {
			e.player.Advance(true)
		}
		time.Sleep(time.Millisecond)
	}
}

// songMenu maps menu keys to built-in songs.
var songMenu = []struct {
	key  string
	name string
}{
	{"a", "Am Louenesee"},
	{"c", "Chum Bueb"},
	{"e", "Entertainer"},
	{"o", "Old Mac Donald"},
	{"m", "Martinshorn"},
	{"p", "Postauto"},
	{"C", "Chromatic Scale"},
	{"P", "Pentatonic Scale"},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).MarginTop(1)
)

type model struct {
	eng      *engine
	playing  string
	quitting bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	pl := m.eng.player
	switch s := key.String(); s {
	case "q", "ctrl+c":
		m.quitting = true
		close(m.eng.done)
		pl.Mute()
		return m, tea.Quit

	case "a", "c", "e", "o", "m", "p", "C", "P":
		for _, entry := range songMenu {
			if entry.key == s {
				song, _ := songs.ByName(entry.name)
				m.eng.beats.Store(false)
				pl.SetMelody(song.Melody)
				m.playing = song.Name
			}
		}

	case "B":
		pl.SetAmplitude(100)
		m.eng.beats.Store(true)
		m.playing = "the beat"

	case "1", "2", "3", "4", "5", "6", "7", "8":
		presets := music.Presets()
		pl.SetTempo(presets[s[0]-'1'])

	case "+", "=":
		pl.SetTempoBPM(pl.TempoBPM() + 2)

	case "-", "_":
		// Ignore the error: stepping below 1 BPM keeps the old tempo.
		pl.SetTempoBPM(pl.TempoBPM() - 2)

	case "v":
		pl.SetAmplitude(pl.Amplitude() - 10)

	case "V":
		pl.SetAmplitude(pl.Amplitude() + 10)

	case "l":
		pl.SetLegatoGap(int(pl.LegatoGapMs()) - 5)

	case "L":
		pl.SetLegatoGap(int(pl.LegatoGapMs()) + 5)

	case "n":
		pl.SetNormalMode()

	case "r":
		pl.SetRandomMode()
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Melody Player"))
	b.WriteString("\n")
	for _, entry := range songMenu {
		fmt.Fprintf(&b, "%s Play %s\n", keyStyle.Render("["+entry.key+"]"), entry.name)
	}
	b.WriteString(keyStyle.Render("[B]") + " Beat the beat\n")
	b.WriteString(keyStyle.Render("[1-8]") + " Tempo preset (Largo..Prestissimo)\n")
	b.WriteString(keyStyle.Render("[+/-]") + " Tempo in BPM\n")
	b.WriteString(keyStyle.Render("[v/V]") + " Volume down/up\n")
	b.WriteString(keyStyle.Render("[l/L]") + " Legato gap down/up\n")
	b.WriteString(keyStyle.Render("[n]") + " Normal mode  " + keyStyle.Render("[r]") + " Random mode\n")
	b.WriteString(keyStyle.Render("[q]") + " Quit\n")

	pl := m.eng.player
	mode := "normal"
	if pl.RandomMode() {
		mode = "random"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"playing %s | tempo %s | volume %d | legato %d ms | %s mode",
		m.playing, tempoLabel(pl.TempoBPM()), pl.Amplitude(), pl.LegatoGapMs(), mode)))
	b.WriteString("\n")
	return b.String()
}

// tempoLabel names the tempo when it matches a preset.
func tempoLabel(bpm int) string {
	for _, t := range music.Presets() {
		if int(t) == bpm {
			return fmt.Sprintf("%s (%d BPM)", t, bpm)
		}
	}
	return fmt.Sprintf("%d BPM", bpm)
}

func main() {
	sampleRate := flag.Int("sample-rate", 48000, "speaker sample rate")
	flag.Parse()

	speaker, err := pwm.NewSpeaker(*sampleRate)
	if err != nil {
		log.Fatal(err)
	}
	defer speaker.Close()

	pl, err := melodyplayer.NewPlayer(speaker, melodyplayer.WithAmplitude(100))
	if err != nil {
		log.Fatal(err)
	}
	first, _ := songs.ByName("Old Mac Donald")
	pl.SetMelody(first.Melody)

	eng := &engine{player: pl, done: make(chan struct{})}
	go eng.run()

	m := model{eng: eng, playing: first.Name}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
