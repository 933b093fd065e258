package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultAmbientURL is the calm background track streamed during study.
const DefaultAmbientURL = "https://cdn.pixabay.com/audio/2022/03/10/audio_4a409ef7f5.mp3"

// Player streams a looping MP3 track from a URL. The track is fetched and
// decoded lazily on the first Start call; all failures are logged and leave
// the player silent rather than surfacing to the UI.
type Player struct {
	url string

	mu      sync.Mutex
	started bool
	ready   bool
	muted   bool
	paused  bool
	ctrl    *beep.Ctrl
	vol     *effects.Volume
	stream  beep.StreamSeekCloser
}

// NewPlayer creates a Player for the given track URL.
func NewPlayer(url string) *Player {
	if url == "" {
		url = DefaultAmbientURL
	}
	return &Player{url: url}
}

// Start begins playback in the background. The first call fetches, decodes
// and loops the track; later calls only resume a paused player.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		p.setPaused(false)
		return
	}
	p.started = true

	go func() {
		if err := p.open(); err != nil {
			log.Printf("audio: ambient track unavailable: %v", err)
		}
	}()
}

// Pause suspends playback without releasing the stream.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPaused(true)
}

// ToggleMute flips the mute state and reports the new value. Muting silences
// output but the track keeps advancing.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.vol != nil {
		speaker.Lock()
		p.vol.Silent = p.muted
		speaker.Unlock()
	}
	return p.muted
}

// Muted reports whether output is currently silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Playing reports whether the track is decoded and not paused.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready && !p.paused
}

// Close stops playback and releases the decoded stream.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.setPaused(true)
	if p.stream != nil {
		_ = p.stream.Close()
		p.stream = nil
	}
	p.ready = false
}

// setPaused requires p.mu to be held.
func (p *Player) setPaused(paused bool) {
	p.paused = paused
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = paused
		speaker.Unlock()
	}
}

func (p *Player) open() error {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(p.url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", p.url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %s", p.url, resp.Status)
	}

	// Looping seeks back to the start, so the whole track is buffered
	// rather than decoded straight off the network.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", p.url, err)
	}

	stream, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode %s: %w", p.url, err)
	}

	if err := ensureSpeaker(); err != nil {
		_ = stream.Close()
		return fmt.Errorf("speaker: %w", err)
	}

	loop, err := beep.Loop2(stream)
	if err != nil {
		_ = stream.Close()
		return fmt.Errorf("loop %s: %w", p.url, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stream = stream
	p.vol = &effects.Volume{
		Streamer: beep.Resample(4, format.SampleRate, sampleRate, loop),
		Base:     2,
		Volume:   -1,
		Silent:   p.muted,
	}
	p.ctrl = &beep.Ctrl{Streamer: p.vol, Paused: p.paused}
	p.ready = true

	speaker.Play(p.ctrl)
	return nil
}
