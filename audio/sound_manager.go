package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	bumpDurationMs    = 80
	bumpFrequencyHz   = 110.0
	bumpAmplitude     = 0.2
	bumpAttackSeconds = 0.005

	chimeNoteDurationMs = 140
	chimeAmplitude      = 0.25
	chimeDecayRate      = 6.0
)

// Rising major arpeggio played on reaching the goal
var chimeNotesHz = []float64{523.25, 659.25, 783.99, 1046.50}

// SoundManager plays the game's sound cues through a shared mixer.
// Every method is safe to call when audio failed to initialize.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close that is safe to re-Init, clearing the mixer
	// is enough to silence everything
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// PlayBump plays a short low thud for a move into a wall
func (sm *SoundManager) PlayBump() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*bumpDurationMs), NewBumpGenerator(sampleRate, bumpFrequencyHz)))
}

// PlayGoal plays the goal chime
func (sm *SoundManager) PlayGoal() {
	notes := make([]beep.Streamer, 0, len(chimeNotesHz))
	for _, f := range chimeNotesHz {
		notes = append(notes, beep.Take(sampleRate.N(time.Millisecond*chimeNoteDurationMs), NewChimeGenerator(sampleRate, f)))
	}
	sm.play(beep.Seq(notes...))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// BumpGenerator generates a low sine thud with harmonics
type BumpGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBumpGenerator creates a bump sound generator
func NewBumpGenerator(sr beep.SampleRate, freq float64) *BumpGenerator {
	return &BumpGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := math.Sin(2*math.Pi*g.freq*t) + 0.5*math.Sin(2*math.Pi*g.freq*2*t)

		// Short attack, exponential tail
		envelope := math.Min(t/bumpAttackSeconds, 1.0) * math.Exp(-t*30)
		sample *= envelope * bumpAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BumpGenerator) Err() error {
	return nil
}

// ChimeGenerator generates one bell-like note
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime note generator
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus a quiet octave for brightness
		sample := 0.8*math.Sin(2*math.Pi*g.freq*t) + 0.2*math.Sin(2*math.Pi*g.freq*2*t)
		sample *= chimeAmplitude * math.Exp(-t*chimeDecayRate)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
