// Package celebration animates the perfect-score confetti burst on a
// character-cell canvas. The simulation is deterministic given its random
// source, which keeps it testable without a terminal.
package celebration

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

const (
	// Duration is the total time new waves keep firing.
	Duration = 3 * time.Second
	// WaveInterval separates consecutive confetti waves.
	WaveInterval = 250 * time.Millisecond

	// baseWaveCount is the per-origin particle count of the first wave;
	// later waves shrink in proportion to the time remaining.
	baseWaveCount = 14
	particleTicks = 60
	gravity       = 14.0 // cells per second squared
	startVelocity = 9.0  // cells per second
)

var glyphs = []rune{'•', '✦', '●', '▪', '★', '◆'}

var palette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // amber
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // gold
	lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // coral
	lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // sky
	lipgloss.NewStyle().Foreground(lipgloss.Color("120")), // mint
	lipgloss.NewStyle().Foreground(lipgloss.Color("177")), // violet
}

// Particle is one falling confetto in cell coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Glyph  rune
	Color  int
	TTL    int
}

// Model runs the confetti simulation over a width by height cell canvas.
type Model struct {
	width, height int
	rng           *rand.Rand
	particles     []Particle
	elapsed       time.Duration
	sinceWave     time.Duration
	running       bool
}

// New creates an idle simulation sized to the given canvas.
func New(width, height int) *Model {
	return &Model{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Resize adjusts the canvas. Live particles keep their positions; anything
// now outside the canvas falls out on the next tick.
func (m *Model) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Start begins a fresh burst. The first two waves fire immediately, one from
// each lateral origin.
func (m *Model) Start() {
	m.particles = m.particles[:0]
	m.elapsed = 0
	m.sinceWave = 0
	m.running = true
	m.spawnWaves()
}

// Active reports whether anything remains to animate.
func (m *Model) Active() bool {
	return m.running && (m.elapsed < Duration || len(m.particles) > 0)
}

// Particles exposes the live particles for inspection.
func (m *Model) Particles() []Particle { return m.particles }

// Tick advances the simulation by dt: waves fire every WaveInterval until
// Duration has elapsed, and live particles fall under gravity.
func (m *Model) Tick(dt time.Duration) {
	if !m.running {
		return
	}

	m.elapsed += dt
	m.sinceWave += dt
	for m.sinceWave >= WaveInterval {
		m.sinceWave -= WaveInterval
		if m.elapsed < Duration {
			m.spawnWaves()
		}
	}

	secs := dt.Seconds()
	alive := m.particles[:0]
	for _, p := range m.particles {
		p.X += p.VX * secs
		p.Y += p.VY * secs
		p.VY += gravity * secs
		p.TTL--
		if p.TTL > 0 && p.Y < float64(m.height) {
			alive = append(alive, p)
		}
	}
	m.particles = alive

	if m.elapsed >= Duration && len(m.particles) == 0 {
		m.running = false
	}
}

// spawnWaves fires one wave from each lateral origin: left at 10 to 30
// percent of the width, right at 70 to 90 percent. Wave size shrinks with
// the time remaining.
func (m *Model) spawnWaves() {
	remaining := Duration - m.elapsed
	if remaining <= 0 {
		return
	}
	count := int(math.Ceil(baseWaveCount * remaining.Seconds() / Duration.Seconds()))
	m.spawn(count, 0.1, 0.3)
	m.spawn(count, 0.7, 0.9)
}

func (m *Model) spawn(count int, xMin, xMax float64) {
	for i := 0; i < count; i++ {
		x := (xMin + m.rng.Float64()*(xMax-xMin)) * float64(m.width)
		y := (m.rng.Float64() - 0.2) * float64(m.height)
		angle := m.rng.Float64() * 2 * math.Pi
		speed := startVelocity * (0.5 + m.rng.Float64()*0.5)
		m.particles = append(m.particles, Particle{
			X:     x,
			Y:     y,
			VX:    speed * math.Cos(angle) * 1.6, // cells are taller than wide
			VY:    speed * math.Sin(angle),
			Glyph: glyphs[m.rng.Intn(len(glyphs))],
			Color: m.rng.Intn(len(palette)),
			TTL:   particleTicks,
		})
	}
}

// View renders the canvas with live particles over blank cells.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	grid := make([][]rune, m.height)
	colors := make([][]int, m.height)
	for y := range grid {
		grid[y] = make([]rune, m.width)
		colors[y] = make([]int, m.width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for _, p := range m.particles {
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= m.width || y < 0 || y >= m.height {
			continue
		}
		grid[y][x] = p.Glyph
		colors[y][x] = p.Color
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, r := range row {
			if r == ' ' {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(palette[colors[y][x]].Render(string(r)))
		}
	}
	return b.String()
}
