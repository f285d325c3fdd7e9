// Package diag computes read-only statistics over ring state for
// monitoring and experiment consumers. Nothing here mutates the
// registries.
package diag

import (
	"errors"

	"jumpring/internal/registry"
	"jumpring/internal/ring"
)

// ErrAllFull reports that a probe sample cannot terminate because
// every server is at its load cap.
var ErrAllFull = errors.New("all servers are full")

// Source supplies uniform random slot draws for probe sampling.
type Source interface {
	Intn(n int) int
}

// LoadVariance returns the population variance of server loads.
func LoadVariance(s *registry.ServerSet) float64 {
	loads := s.Loads()
	if len(loads) == 0 {
		return 0
	}
	var sum float64
	for _, l := range loads {
		sum += float64(l)
	}
	mean := sum / float64(len(loads))
	var sq float64
	for _, l := range loads {
		d := float64(l) - mean
		sq += d * d
	}
	return sq / float64(len(loads))
}

// FractionFull returns the fraction of servers at their load cap.
// A value of 1.0 means placement would not terminate.
func FractionFull(s *registry.ServerSet) float64 {
	return float64(s.FullCount()) / float64(s.Count())
}

// UnderFilled counts servers sitting exactly one object below the
// load cap. After a removal this is the non-alarming residue of a
// rebalance that found no valid mover.
func UnderFilled(s *registry.ServerSet) int {
	n := 0
	for _, load := range s.Loads() {
		if load == s.LoadCap()-1 {
			n++
		}
	}
	return n
}

// ProbeSample reports the cost of one hypothetical placement.
type ProbeSample struct {
	// ServersTried counts distinct placement rejections by full
	// servers, plus the accepting one.
	ServersTried int
	// SlotsProbed counts every slot drawn, empty slots included.
	SlotsProbed int
}

// SampleProbes simulates a single placement without committing it,
// reporting how much probing it would have cost. It refuses to run on
// a fully saturated ring, where the simulation would not terminate.
func SampleProbes(t *ring.Table, s *registry.ServerSet, rng Source) (ProbeSample, error) {
	if s.FullCount() == s.Count() {
		return ProbeSample{}, ErrAllFull
	}
	sample := ProbeSample{ServersTried: 1}
	for {
		sample.SlotsProbed++
		slot := rng.Intn(t.Size())
		srv := t.OwnerOf(slot)
		if srv == ring.Empty {
			continue
		}
		if !s.IsFull(srv) {
			return sample, nil
		}
		sample.ServersTried++
	}
}
