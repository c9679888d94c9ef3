// Package sound plays the relay's notification sound. Playback is strictly
// best-effort: every failure is logged and swallowed, and the blocking
// audio work runs on its own goroutine so request handlers never wait on it.
// file: internal/sound/sound.go
package sound

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	_ "embed"

	"github.com/dkoosis/agentrelay/internal/logging"
)

// DisableSoundEnv disables sound playback entirely when set to any value,
// including an empty one. Useful for CI and headless environments.
const DisableSoundEnv = "AGENT_RELAY_DISABLE_SOUND"

// Keep the default notification sound embedded so it ships with the binary.
//
//go:embed assets/ping.wav
var defaultSound []byte

// Player plays the embedded notification sound through the default output
// device. The speaker is initialized lazily on first playback.
type Player struct {
	initOnce sync.Once
	initErr  error
	logger   logging.Logger
}

// NewPlayer creates a Player.
func NewPlayer(logger logging.Logger) *Player {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &Player{logger: logger.WithField("component", "sound")}
}

// Play schedules playback of the notification sound and returns immediately.
// Missing audio devices and decode failures are logged, never surfaced.
func (p *Player) Play() {
	// Allow opting out (useful for CI or silent environments).
	if _, disabled := os.LookupEnv(DisableSoundEnv); disabled {
		return
	}

	go p.playBlocking()
}

// playBlocking decodes the embedded WAV and blocks until playback finishes.
func (p *Player) playBlocking() {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(defaultSound)))
	if err != nil {
		p.logger.Error("Failed to decode notification sound.", "error", err)
		return
	}
	defer func() {
		if closeErr := streamer.Close(); closeErr != nil {
			p.logger.Debug("Failed to close sound streamer.", "error", closeErr)
		}
	}()

	p.initOnce.Do(func() {
		p.initErr = speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond))
	})
	if p.initErr != nil {
		p.logger.Error("Audio output init failed.", "error", p.initErr)
		return
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))
	// Block this goroutine, not the caller, until playback finishes.
	<-done
}
