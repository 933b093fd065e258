package audio

import (
	"math"
	"testing"
)

func drain(s *tone) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestTone_DurationAndTermination(t *testing.T) {
	s := newTone(func(float64) float64 { return 440 })
	samples := drain(s)

	want := sampleRate.N(cueDuration)
	if len(samples) != want {
		t.Fatalf("expected %d samples, got %d", want, len(samples))
	}

	if n, ok := s.Stream(make([][2]float64, 16)); ok || n != 0 {
		t.Fatalf("exhausted tone must stream (0, false), got (%d, %v)", n, ok)
	}
}

func TestTone_EnvelopeDecays(t *testing.T) {
	s := newTone(func(float64) float64 { return 440 })
	samples := drain(s)

	peakOf := func(lo, hi int) float64 {
		var peak float64
		for _, sm := range samples[lo:hi] {
			if v := math.Abs(sm[0]); v > peak {
				peak = v
			}
		}
		return peak
	}

	n := len(samples)
	early := peakOf(0, n/10)
	late := peakOf(n-n/10, n)

	if early <= cuePeakGain*0.8 || early > cuePeakGain {
		t.Fatalf("early peak %f outside (%f, %f]", early, cuePeakGain*0.8, cuePeakGain)
	}
	if late >= early/5 {
		t.Fatalf("late peak %f did not decay (early %f)", late, early)
	}
	if late > cueEndGain*3 {
		t.Fatalf("late peak %f too loud for end gain %f", late, cueEndGain)
	}
}

func TestTone_StereoAndBounded(t *testing.T) {
	s := newTone(func(t float64) float64 {
		if t < 0.1 {
			return 800
		}
		return 1000
	})
	for _, sm := range drain(s) {
		if sm[0] != sm[1] {
			t.Fatalf("channels differ: %f vs %f", sm[0], sm[1])
		}
		if math.Abs(sm[0]) > cuePeakGain {
			t.Fatalf("sample %f exceeds peak gain %f", sm[0], cuePeakGain)
		}
	}
}

// Zero-crossing count approximates frequency; the descending cue must cross
// noticeably less often in its second half than in its first.
func TestTone_DescendingCueSlowsDown(t *testing.T) {
	s := newTone(func(t float64) float64 {
		if t < 0.2 {
			return 400 * math.Pow(0.5, t/0.2)
		}
		return 200
	})
	samples := drain(s)

	crossings := func(lo, hi int) int {
		count := 0
		for i := lo + 1; i < hi; i++ {
			if (samples[i-1][0] >= 0) != (samples[i][0] >= 0) {
				count++
			}
		}
		return count
	}

	n := len(samples)
	first, second := crossings(0, n/2), crossings(n/2, n)
	if second >= first {
		t.Fatalf("descending cue: second half crossings %d >= first half %d", second, first)
	}
}

func TestPlayer_MuteToggleBeforeDecode(t *testing.T) {
	p := NewPlayer("http://127.0.0.1:0/none.mp3")

	if p.Muted() {
		t.Fatal("new player must start unmuted")
	}
	if !p.ToggleMute() {
		t.Fatal("first toggle must mute")
	}
	if p.ToggleMute() {
		t.Fatal("second toggle must unmute")
	}
	if p.Playing() {
		t.Fatal("player must not report playing before decode")
	}
}

func TestNewPlayer_DefaultsURL(t *testing.T) {
	p := NewPlayer("")
	if p.url != DefaultAmbientURL {
		t.Fatalf("empty URL must fall back to default, got %q", p.url)
	}
}
