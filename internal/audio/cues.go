// Package audio provides the quiz sound cues, synthesized procedurally, and
// the looping ambient music player. Everything here is best-effort: audio
// failures are logged and never reach the quiz or chat flow.
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	cueDuration = 300 * time.Millisecond
	cuePeakGain = 0.3
	cueEndGain  = 0.01
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// ensureSpeaker opens the output device once. Every cue builds its own
// streamer on top; no state is shared between cues.
func ensureSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	return speakerErr
}

// PlayCorrect fires the two-tone ascending chime: 800 Hz stepping to
// 1000 Hz after 0.1 s, with an exponential volume decay over 0.3 s.
func PlayCorrect() {
	play(newTone(func(t float64) float64 {
		if t < 0.1 {
			return 800
		}
		return 1000
	}))
}

// PlayWrong fires the descending buzz: 400 Hz sliding exponentially down to
// 200 Hz over 0.2 s, same decay envelope and total duration as the chime.
func PlayWrong() {
	play(newTone(func(t float64) float64 {
		if t < 0.2 {
			return 400 * math.Pow(0.5, t/0.2)
		}
		return 200
	}))
}

func play(s beep.Streamer) {
	if err := ensureSpeaker(); err != nil {
		log.Printf("audio: speaker unavailable: %v", err)
		return
	}
	speaker.Play(s)
}

// tone synthesizes a sine wave whose frequency follows freqAt and whose gain
// decays exponentially from cuePeakGain to cueEndGain across cueDuration.
type tone struct {
	freqAt func(t float64) float64
	phase  float64
	pos    int
	total  int
}

func newTone(freqAt func(t float64) float64) *tone {
	return &tone{
		freqAt: freqAt,
		total:  sampleRate.N(cueDuration),
	}
}

func (s *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	dur := cueDuration.Seconds()
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		t := float64(s.pos) / float64(sampleRate)
		gain := cuePeakGain * math.Pow(cueEndGain/cuePeakGain, t/dur)
		v := gain * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += s.freqAt(t) / float64(sampleRate)
		if s.phase >= 1 {
			s.phase -= 1
		}
		s.pos++
		n++
	}
	return n, true
}

func (s *tone) Err() error { return nil }
