package sim

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DistributionKind selects the family used for all stochastic draws of a run.
type DistributionKind string

const (
	DistUniform DistributionKind = "uniform"
	DistNormal  DistributionKind = "normal"
)

// ValidDistributionKinds lists the accepted values for configuration.
var ValidDistributionKinds = []DistributionKind{DistUniform, DistNormal}

// Range bounds a stochastic draw. Both ends are inclusive.
type Range struct {
	Lo float64
	Hi float64
}

// Width returns Hi - Lo.
func (r Range) Width() float64 {
	return r.Hi - r.Lo
}

// Distribution draws real values bounded to a numeric range.
type Distribution interface {
	// Draw returns a value in [lo, hi].
	Draw(lo, hi float64) float64
}

// UniformDistribution draws uniformly over the range.
type UniformDistribution struct {
	src rand.Source
}

func (d *UniformDistribution) Draw(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	u := distuv.Uniform{Min: lo, Max: hi, Src: d.src}
	return u.Rand()
}

// NormalDistribution draws from a normal centred on the range midpoint with
// standard deviation max(1, (mean-lo)/2), truncated to the range: draws
// outside [lo, hi] are rejected and retried, never clipped.
type NormalDistribution struct {
	src rand.Source
}

func (d *NormalDistribution) Draw(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	mean := (lo + hi) / 2
	sigma := math.Max(1, (mean-lo)/2)
	n := distuv.Normal{Mu: mean, Sigma: sigma, Src: d.src}
	for {
		v := n.Rand()
		if v >= lo && v <= hi {
			return v
		}
	}
}

// NewDistribution creates a Distribution of the given kind sharing the
// supplied random source.
func NewDistribution(kind DistributionKind, src rand.Source) (Distribution, error) {
	switch kind {
	case DistUniform:
		return &UniformDistribution{src: src}, nil
	case DistNormal:
		return &NormalDistribution{src: src}, nil
	default:
		return nil, fmt.Errorf("unknown distribution kind %q", kind)
	}
}
