// Package audio synthesizes all game sounds procedurally with beep. There
// are no sound assets to load, so there is nothing to fail to load; if the
// speaker itself cannot be opened the game runs silent.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

const musicVolume = 0.15

// Synth plays per-weapon fire and hit blips, power-up jingles, and a
// per-archetype background pulse. It implements game.Sound.
type Synth struct {
	rate  beep.SampleRate
	mixer *beep.Mixer
	music *beep.Ctrl
}

// NewSynth opens the speaker and starts the mixer. The returned error means
// no audio device; callers should fall back to silence, never abort.
func NewSynth() (*Synth, error) {
	s := &Synth{rate: sampleRate, mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Synth) play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Fire plays the launch blip for a weapon. Pitch follows the weapon id so
// each weapon is recognizable by ear.
func (s *Synth) Fire(weapon int) {
	freq := 160 + 12*float64(weapon)
	s.play(NewTone(freq, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, WaveSaw, s.rate))
}

// Hit plays the impact blip for a weapon.
func (s *Synth) Hit(weapon int) {
	freq := 320 + 16*float64(weapon)
	s.play(NewTone(freq, 90*time.Millisecond, 2*time.Millisecond, 50*time.Millisecond, WaveSquare, s.rate))
}

// PowerUpCollected plays a rising three-note jingle.
func (s *Synth) PowerUpCollected() {
	s.play(beep.Seq(
		NewTone(440, 90*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, WaveSine, s.rate),
		NewTone(550, 90*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, WaveSine, s.rate),
		NewTone(660, 140*time.Millisecond, 5*time.Millisecond, 70*time.Millisecond, WaveSine, s.rate),
	))
}

// PowerUpExpired plays a falling two-note figure.
func (s *Synth) PowerUpExpired() {
	s.play(beep.Seq(
		NewTone(520, 110*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSine, s.rate),
		NewTone(390, 160*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, WaveSine, s.rate),
	))
}

// StartMusic starts the endless background pulse for an archetype. A session
// selects exactly once, so a second call is ignored.
func (s *Synth) StartMusic(archetype int) {
	if s.music != nil {
		return
	}
	carrier := 70 + 12*float64(archetype)
	lfo := 0.8 + 0.2*float64(archetype%4)
	s.music = &beep.Ctrl{Streamer: NewPulse(carrier, lfo, s.rate)}
	s.play(s.music)
}

// Close silences everything. The speaker itself stays open; beep provides no
// way to release it.
func (s *Synth) Close() {
	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
	}
	speaker.Unlock()
	speaker.Clear()
}
