package render

import (
	"math"

	mc "github.com/melisa2505/Paralela-marching-cubes"
	"github.com/melisa2505/Paralela-marching-cubes/internal/d3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultProbeSamples is the sample budget spent probing a box for
// evidence of surface before its subtree is pruned.
const defaultProbeSamples = 10000

// containmentProbe is the stochastic sign-change detector used to prune
// octree regions. It owns no generator state: every probed box gets its
// own source derived from seed, so verdicts do not depend on how the
// recursion is scheduled across workers.
type containmentProbe struct {
	samples int
	seed    uint64
}

// mayContainSurface reports whether the probe found evidence of the
// surface inside box: it draws up to p.samples points uniformly from the
// box, one independent draw per axis, and returns true as soon as both a
// negative and a non-negative field value have been seen. False means no
// evidence, not proof of emptiness; features thinner than the sampling
// density can be missed. Non-finite field values count as non-negative.
func (p containmentProbe) mayContainSurface(f mc.Field3, box d3.Box) bool {
	src := rand.NewSource(p.nodeSeed(box))
	ux := distuv.Uniform{Min: box.Min.X, Max: box.Max.X, Src: src}
	uy := distuv.Uniform{Min: box.Min.Y, Max: box.Max.Y, Src: src}
	uz := distuv.Uniform{Min: box.Min.Z, Max: box.Max.Z, Src: src}
	var sawNegative, sawNonNegative bool
	for i := 0; i < p.samples; i++ {
		v := f.Evaluate(r3.Vec{X: ux.Rand(), Y: uy.Rand(), Z: uz.Rand()})
		if v < 0 {
			sawNegative = true
		} else {
			sawNonNegative = true
		}
		if sawNegative && sawNonNegative {
			return true
		}
	}
	return false
}

// nodeSeed hashes the box coordinates into the probe seed so that each
// octree node draws a reproducible sample sequence of its own.
func (p containmentProbe) nodeSeed(box d3.Box) uint64 {
	h := p.seed
	for _, c := range [6]float64{
		box.Min.X, box.Min.Y, box.Min.Z,
		box.Max.X, box.Max.Y, box.Max.Z,
	} {
		h = mix64(h + math.Float64bits(c))
	}
	return h
}

// mix64 is the splitmix64 finalizer.
func mix64(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}
