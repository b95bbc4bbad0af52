package audio

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Music is a looping streamed sound. It satisfies vehicle.Sound.
// Update must be called every frame while the stream plays so raylib can refill its buffers.
type Music struct {
	stream  rl.Music
	playing bool
}

// Init opens the default audio device. Call once after the window exists.
func Init() bool {
	rl.InitAudioDevice()
	return rl.IsAudioDeviceReady()
}

// CloseDevice shuts the audio device down.
func CloseDevice() {
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}

// Check verifies the file exists and is readable. It is safe to call off the window thread.
func Check(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("audio: %w", err)
	}
	_ = f.Close()
	return path, nil
}

// Open loads path as a looping stream at volume (0..1). The audio device must be ready.
func Open(path string, volume float32) (*Music, error) {
	if !rl.IsAudioDeviceReady() {
		return nil, fmt.Errorf("audio: %s: audio device not ready", path)
	}
	m := rl.LoadMusicStream(path)
	if !rl.IsMusicValid(m) {
		return nil, fmt.Errorf("audio: %s: unsupported or unreadable stream", path)
	}
	m.Looping = true
	rl.SetMusicVolume(m, volume)
	return &Music{stream: m}, nil
}

func (m *Music) Play() {
	rl.PlayMusicStream(m.stream)
	m.playing = true
}

func (m *Music) Stop() {
	rl.StopMusicStream(m.stream)
	m.playing = false
}

// IsPlaying reports the state set by Play/Stop; a looping stream never ends on its own.
func (m *Music) IsPlaying() bool {
	return m.playing
}

// Update refills the stream. No-op when stopped.
func (m *Music) Update() {
	if m.playing {
		rl.UpdateMusicStream(m.stream)
	}
}

// Close stops and unloads the stream.
func (m *Music) Close() {
	if m.playing {
		m.Stop()
	}
	rl.UnloadMusicStream(m.stream)
}
