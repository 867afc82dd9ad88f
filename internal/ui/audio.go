package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType identifies a sound effect.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundInvalid
)

const sampleRate = 44100

// AudioManager plays procedurally generated sound effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}

	// Move: wood-on-wood click. Capture: heavier impact. Invalid: low buzz.
	am.sounds[SoundMove] = generateClick(440, 0.08, 0.3)
	am.sounds[SoundCapture] = generateClick(330, 0.12, 0.5)
	am.sounds[SoundInvalid] = generateBuzz(150, 0.1, 0.3)

	return am
}

// generateClick creates a short percussive click sound.
func generateClick(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4) // stereo 16-bit

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		// Exponential decay envelope with some noise for wood texture
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		sample := (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude

		writeStereoSample(data, i, sample)
	}
	return data
}

// generateBuzz creates a low error buzz.
func generateBuzz(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := 1.0 - t/duration
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		sample := wave * envelope * amplitude * 0.5

		writeStereoSample(data, i, sample)
	}
	return data
}

// writeStereoSample writes one 16-bit sample to both channels.
func writeStereoSample(data []byte, i int, sample float64) {
	val := int16(sample * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A fresh player per play allows overlapping sounds.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
