package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// NewTone returns a sine tone of the given length with a linear fade out
func NewTone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	n := sr.N(d)
	return &fadeOut{Streamer: beep.Take(n, sine), total: n, gain: 0.25}, nil
}

// fadeOut scales samples linearly from gain to zero over total samples
type fadeOut struct {
	beep.Streamer
	total int
	pos   int
	gain  float64
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := f.gain * (1 - float64(f.pos)/float64(f.total))
		samples[i][0] *= env
		samples[i][1] *= env
		f.pos++
	}
	return n, ok
}

// ExplodeGenerator is a noise burst over a falling rumble
type ExplodeGenerator struct {
	sr  beep.SampleRate
	pos int
	rng *rand.Rand
}

// NewExplodeGenerator creates an explosion generator
func NewExplodeGenerator(sr beep.SampleRate) *ExplodeGenerator {
	return &ExplodeGenerator{
		sr:  sr,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *ExplodeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay
		envelope := math.Exp(-t * 10)
		noise := g.rng.Float64()*2 - 1
		freq := 90 - 50*math.Min(t*3, 1)
		rumble := 0.5 * math.Sin(2*math.Pi*freq*t)

		sample := 0.3 * envelope * (0.6*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplodeGenerator) Err() error {
	return nil
}
