package render

import (
	"errors"
	"math/bits"
	"runtime"
	"sync"

	mc "github.com/melisa2505/Paralela-marching-cubes"
	"github.com/melisa2505/Paralela-marching-cubes/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Adaptive marching cubes: recursive octree subdivision of the bounding
// volume, pruning subtrees where the containment probe finds no sign
// change and triangulating cells once they shrink below the requested
// precision. Independent octants are polygonized concurrently under a
// fixed worker budget.

// Polygonizer configures adaptive isosurface extraction. Precision must
// be set; the remaining fields default from their zero values.
type Polygonizer struct {
	// Precision is the leaf extent threshold: a box whose extent along
	// any axis is strictly below Precision is triangulated as a single
	// cell instead of subdivided further.
	Precision float64
	// Workers bounds the number of goroutines, counting the calling one,
	// that polygonize octants concurrently. 0 means runtime.GOMAXPROCS(0);
	// 1 runs the whole recursion on the calling goroutine.
	Workers int
	// ProbeSamples is the sample budget of the containment probe at each
	// internal octree node. 0 means 10000.
	ProbeSamples int
	// Seed seeds the containment probe. Zero is a valid fixed seed.
	Seed uint64
}

// Polygonize approximates the zero level set of f inside bounds with a
// triangle soup: unconnected triangles with duplicated vertices and no
// manifold guarantee. The triangle order is deterministic: runs with
// equal field, bounds, Precision, ProbeSamples and Seed return identical
// sequences regardless of Workers.
//
// bounds must satisfy Min < Max on every axis. That is the caller's
// contract: the recursion does not detect inverted or empty boxes and
// will not terminate on them. The run always completes; there is no
// cancellation.
func (p Polygonizer) Polygonize(f mc.Field3, bounds r3.Box) ([]r3.Triangle, error) {
	switch {
	case f == nil:
		return nil, errors.New("nil field")
	case p.Precision <= 0 || !isFinite(p.Precision):
		return nil, errors.New("precision must be positive and finite")
	case p.Workers < 0:
		return nil, errors.New("negative worker count")
	case p.ProbeSamples < 0:
		return nil, errors.New("negative probe sample count")
	}
	workers := p.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	samples := p.ProbeSamples
	if samples == 0 {
		samples = defaultProbeSamples
	}
	oct := &octree{
		field:     f,
		precision: p.Precision,
		probe:     containmentProbe{samples: samples, seed: p.Seed},
		forkDepth: forkDepth(workers),
		// The calling goroutine is a worker too, so one fewer token.
		tokens: make(chan struct{}, workers-1),
	}
	return oct.polygonize(d3.Box(bounds), 0), nil
}

// Polygonize approximates the zero level set of f inside bounds at the
// given precision using up to workers goroutines (0 for all CPUs) and
// default probe settings. See Polygonizer.Polygonize.
func Polygonize(f mc.Field3, bounds r3.Box, precision float64, workers int) ([]r3.Triangle, error) {
	return Polygonizer{Precision: precision, Workers: workers}.Polygonize(f, bounds)
}

// octree carries the state shared by one polygonization run. All fields
// are read-only during recursion except tokens, whose channel operations
// are the run's only synchronization besides join barriers.
type octree struct {
	field     mc.Field3
	precision float64
	probe     containmentProbe
	forkDepth int
	tokens    chan struct{}
}

// forkDepth returns the subdivision depth below which octants are no
// longer forked onto new goroutines. Depth d exposes up to 8^d
// independent subtrees, so a shallow cutoff already saturates the worker
// budget while sparing the deep, tiny subtrees the scheduling overhead.
func forkDepth(workers int) int {
	return (bits.Len(uint(workers))+2)/3 + 1
}

// polygonize returns the triangles of the subtree rooted at box, in
// deterministic order.
func (o *octree) polygonize(box d3.Box, depth int) []r3.Triangle {
	if d3.Min(box.Size()) < o.precision {
		return o.leaf(box)
	}
	if !o.probe.mayContainSurface(o.field, box) {
		return nil
	}
	var sub [8][]r3.Triangle
	var wg sync.WaitGroup
	for i, oct := range box.Octants() {
		if depth < o.forkDepth && o.tryFork() {
			wg.Add(1)
			go func(slot int, b d3.Box) {
				defer wg.Done()
				defer o.release()
				sub[slot] = o.polygonize(b, depth+1)
			}(i, oct)
		} else {
			sub[i] = o.polygonize(oct, depth+1)
		}
	}
	wg.Wait()
	var n int
	for i := range sub {
		n += len(sub[i])
	}
	if n == 0 {
		return nil
	}
	// Per-slot results concatenated in octant order keep the output
	// sequence independent of goroutine scheduling.
	out := make([]r3.Triangle, 0, n)
	for i := range sub {
		out = append(out, sub[i]...)
	}
	return out
}

// leaf samples the field at the cell corners and triangulates the cell.
func (o *octree) leaf(box d3.Box) []r3.Triangle {
	corners := box.Corners()
	var values [8]float64
	for i := range corners {
		values[i] = o.field.Evaluate(corners[i])
	}
	return marchCell(nil, corners, values)
}

// tryFork claims a worker token without blocking. Octants that get no
// token run inline on the current goroutine, so the recursion makes
// progress no matter how many tokens are held by waiting parents.
func (o *octree) tryFork() bool {
	select {
	case o.tokens <- struct{}{}:
		return true
	default:
		return false
	}
}

func (o *octree) release() { <-o.tokens }
