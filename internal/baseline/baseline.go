// Package baseline implements the simplified single-array model of
// bounded-load placement: objects land on a uniformly random non-full
// server with no ring, probe history, or rebalancing. It produces the
// same load-variance and full-bin statistics as the full ring far
// faster and serves as the statistical reference the harness compares
// against.
package baseline

import (
	"errors"
	"fmt"
	"math"
)

// ErrAllFull reports that a sample cannot terminate because every
// server is at its load cap.
var ErrAllFull = errors.New("all servers are full")

// Source supplies uniform random server draws.
type Source interface {
	Intn(n int) int
}

// Model is the simplified placement model.
type Model struct {
	loads     []int
	full      []bool
	loadCap   int
	objects   int
	fullCount int
	firstFull int // objects placed when the first server filled; 0 if none
	rng       Source
}

// New sizes the model. The load cap is ceil((1+epsilon)*objects/servers),
// fixed from the expected population exactly as in the full ring.
func New(servers, objects int, epsilon float64, rng Source) (*Model, error) {
	if servers <= 0 {
		return nil, fmt.Errorf("server count must be positive, got %d", servers)
	}
	if objects <= 0 {
		return nil, fmt.Errorf("object count must be positive, got %d", objects)
	}
	if epsilon < 0 {
		return nil, fmt.Errorf("epsilon must be non-negative, got %v", epsilon)
	}
	loadCap := int(math.Ceil((1 + epsilon) * float64(objects) / float64(servers)))
	if loadCap < 1 {
		return nil, fmt.Errorf("derived load cap %d is below 1", loadCap)
	}
	return &Model{
		loads:   make([]int, servers),
		full:    make([]bool, servers),
		loadCap: loadCap,
		objects: objects,
		rng:     rng,
	}, nil
}

// Run assigns the expected object population, each object to a
// uniformly random non-full server.
func (m *Model) Run() {
	for placed := 1; placed <= m.objects; placed++ {
		srv := m.rng.Intn(len(m.loads))
		for m.full[srv] {
			srv = m.rng.Intn(len(m.loads))
		}
		m.loads[srv]++
		if m.loads[srv] == m.loadCap {
			m.full[srv] = true
			m.fullCount++
			if m.firstFull == 0 {
				m.firstFull = placed
			}
		}
	}
}

// LoadCap returns the derived per-server capacity.
func (m *Model) LoadCap() int { return m.loadCap }

// Variance returns the population variance of server loads.
func (m *Model) Variance() float64 {
	var sum float64
	for _, l := range m.loads {
		sum += float64(l)
	}
	mean := sum / float64(len(m.loads))
	var sq float64
	for _, l := range m.loads {
		d := float64(l) - mean
		sq += d * d
	}
	return sq / float64(len(m.loads))
}

// FractionFull returns the fraction of servers at their load cap.
func (m *Model) FractionFull() float64 {
	return float64(m.fullCount) / float64(len(m.loads))
}

// ObjectsTillFirstFull returns how many objects had been placed when
// the first server filled. ok is false if no server ever filled.
func (m *Model) ObjectsTillFirstFull() (n int, ok bool) {
	return m.firstFull, m.firstFull > 0
}

// ServersToTry simulates one more placement and reports how many
// servers it had to try before finding a non-full one, without
// committing anything.
func (m *Model) ServersToTry() (int, error) {
	if m.fullCount == len(m.loads) {
		return 0, ErrAllFull
	}
	tries := 1
	srv := m.rng.Intn(len(m.loads))
	for m.full[srv] {
		srv = m.rng.Intn(len(m.loads))
		tries++
	}
	return tries, nil
}
