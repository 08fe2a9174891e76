package walk

import (
	"math/rand"

	"github.com/Geetheshwar420/RandomWalk/internal/model"
)

// Fixed generation parameters. The seed is deliberately constant so the
// default dataset and chart look the same on every visit.
const (
	Steps      = 16
	StartPrice = 100.0
	NoiseSigma = 2.0
	Seed       = 42
)

// NoiseSource yields the increments of a random walk.
type NoiseSource interface {
	// Norm returns the next draw from a normal distribution with
	// mean 0 and standard deviation 1.
	Norm() float64
}

// GaussianSource is a seeded math/rand-backed NoiseSource. The same
// seed reproduces the same draw sequence bit for bit.
type GaussianSource struct {
	rng *rand.Rand
}

// NewGaussianSource creates a GaussianSource from a seed.
func NewGaussianSource(seed int64) *GaussianSource {
	return &GaussianSource{rng: rand.New(rand.NewSource(seed))}
}

func (g *GaussianSource) Norm() float64 { return g.rng.NormFloat64() }

// Generate returns the default random walk: Steps points, Time 0..Steps-1,
// starting at StartPrice, each subsequent price offset by N(0, NoiseSigma).
func Generate() model.Series {
	return GenerateFrom(NewGaussianSource(Seed))
}

// GenerateFrom builds the walk from an explicit noise source.
func GenerateFrom(src NoiseSource) model.Series {
	series := make(model.Series, Steps)
	series[0] = model.Point{Time: 0, Price: StartPrice}
	for i := 1; i < Steps; i++ {
		series[i] = model.Point{
			Time:  i,
			Price: series[i-1].Price + src.Norm()*NoiseSigma,
		}
	}
	return series
}
