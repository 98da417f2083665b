// Package chime renders a short SoundFont cue played on scene
// transitions.
package chime

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/stagedoor/stagedoor/pkg/logger"
)

const sampleRate = 44100

var (
	// Ebitengine allows only one audio context per process.
	globalAudioContext *audio.Context
	audioContextMutex  sync.Mutex
)

func getAudioContext() *audio.Context {
	audioContextMutex.Lock()
	defer audioContextMutex.Unlock()

	if globalAudioContext == nil {
		globalAudioContext = audio.NewContext(sampleRate)
	}
	return globalAudioContext
}

// Player plays the pre-rendered transition cue.
type Player struct {
	audioContext *audio.Context
	pcm          []byte
	log          *slog.Logger

	// last keeps the most recent player alive until playback ends.
	last *audio.Player
}

// New loads the SoundFont at path and pre-renders the cue. The cue is a
// short three-note arpeggio on the default preset.
func New(path string) (*Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read soundfont %s: %w", path, err)
	}

	sf, err := meltysynth.NewSoundFont(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse soundfont %s: %w", path, err)
	}

	pcm, err := renderCue(sf)
	if err != nil {
		return nil, err
	}

	return &Player{
		audioContext: getAudioContext(),
		pcm:          pcm,
		log:          logger.GetLogger(),
	}, nil
}

// Play starts the cue without blocking. Overlapping calls restart it.
func (p *Player) Play() {
	if p.last != nil {
		if err := p.last.Close(); err != nil {
			p.log.Debug("failed to close previous chime player", "error", err)
		}
	}
	p.last = p.audioContext.NewPlayerFromBytes(p.pcm)
	p.last.Play()
}

// renderCue synthesizes the arpeggio into 16-bit stereo PCM.
func renderCue(sf *meltysynth.SoundFont) ([]byte, error) {
	settings := meltysynth.NewSynthesizerSettings(sampleRate)
	synth, err := meltysynth.NewSynthesizer(sf, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesizer: %w", err)
	}

	notes := []int32{72, 76, 79} // C5 E5 G5
	noteLen := sampleRate / 10
	tailLen := sampleRate / 2

	total := len(notes)*noteLen + tailLen
	left := make([]float32, total)
	right := make([]float32, total)

	pos := 0
	for _, key := range notes {
		synth.NoteOn(0, key, 90)
		synth.Render(left[pos:pos+noteLen], right[pos:pos+noteLen])
		synth.NoteOff(0, key)
		pos += noteLen
	}
	synth.Render(left[pos:], right[pos:])

	return toPCM16(left, right), nil
}

// toPCM16 interleaves float samples into 16-bit little-endian stereo.
func toPCM16(left, right []float32) []byte {
	out := make([]byte, len(left)*4)
	for i := range left {
		l := clampSample(left[i])
		r := clampSample(right[i])
		out[i*4] = byte(l)
		out[i*4+1] = byte(l >> 8)
		out[i*4+2] = byte(r)
		out[i*4+3] = byte(r >> 8)
	}
	return out
}

func clampSample(v float32) int16 {
	s := float64(v) * math.MaxInt16
	if s > math.MaxInt16 {
		return math.MaxInt16
	}
	if s < math.MinInt16 {
		return math.MinInt16
	}
	return int16(s)
}
