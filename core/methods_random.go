// Package core: weight randomization with an injected rand source.
//
// Randomization is deterministic for a given seeded *rand.Rand because
// edges are visited in creation order and nodes in name order. Sampled
// values are rounded to one decimal, then clamped back into the range so
// rounding can never break the positive-attribute invariant.

package core

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// RandomizeEdgeWeights reassigns every pathway's distance and time to a
// uniform sample from the given ranges, rounded to one decimal.
// Both ranges must satisfy 0 < Min <= Max, preserving distance > 0 and
// time > 0 on every edge.
// Returns ErrNilRand without an injected source, ErrBadRange on bad bounds.
// Complexity: O(E log E).
func (g *Graph) RandomizeEdgeWeights(rng *rand.Rand, distance, duration Range) error {
	if rng == nil {
		return ErrNilRand
	}
	if err := validateRange(distance, false); err != nil {
		return fmt.Errorf("distance: %w", err)
	}
	if err := validateRange(duration, false); err != nil {
		return fmt.Errorf("time: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Creation order, so a seeded rng reproduces the same assignment.
	for _, eid := range g.edgeIDsBySeq() {
		entry := g.edges[eid]
		entry.e.Distance = sample(rng, distance)
		entry.e.Time = sample(rng, duration)
	}

	return nil
}

// RandomizeNodeWeights reassigns every building's display weight to a
// uniform sample from the given range, rounded to one decimal.
// The range must satisfy 0 <= Min <= Max.
// Returns ErrNilRand without an injected source, ErrBadRange on bad bounds.
// Complexity: O(V log V).
func (g *Graph) RandomizeNodeWeights(rng *rand.Rand, weight Range) error {
	if rng == nil {
		return ErrNilRand
	}
	if err := validateRange(weight, true); err != nil {
		return fmt.Errorf("weight: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Name order, same reproducibility contract as edges.
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		g.nodes[name].Weight = sample(rng, weight)
	}

	return nil
}

// validateRange checks Min <= Max and the domain lower bound:
// zero is allowed only for node weights.
func validateRange(r Range, allowZero bool) error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %g > max %g", ErrBadRange, r.Min, r.Max)
	}
	if r.Min < 0 || (!allowZero && r.Min == 0) {
		return fmt.Errorf("%w: min %g out of domain", ErrBadRange, r.Min)
	}

	return nil
}

// sample draws uniformly from [r.Min, r.Max], rounds to one decimal, and
// clamps back into the range.
func sample(rng *rand.Rand, r Range) float64 {
	v := math.Round((r.Min+rng.Float64()*(r.Max-r.Min))*10) / 10
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}

	return v
}

// edgeIDsBySeq lists edge IDs in creation order.
// Caller must hold at least a read lock.
func (g *Graph) edgeIDsBySeq() []string {
	ids := make([]string, 0, len(g.edges))
	for eid := range g.edges {
		ids = append(ids, eid)
	}
	sort.Slice(ids, func(i, j int) bool { return g.edges[ids[i]].seq < g.edges[ids[j]].seq })

	return ids
}
