package diag

import (
	"errors"
	"testing"

	"jumpring/internal/registry"
	"jumpring/internal/ring"
)

type scriptedSource struct {
	seq []int
	i   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.seq[s.i]
	s.i++
	return v % n
}

func newServers(t *testing.T, loadCap int, loads ...int) *registry.ServerSet {
	t.Helper()
	s, err := registry.NewServerSet(len(loads), loadCap)
	if err != nil {
		t.Fatalf("NewServerSet failed: %v", err)
	}
	obj := uint64(0)
	for srv, load := range loads {
		for i := 0; i < load; i++ {
			if err := s.Assign(srv, obj); err != nil {
				t.Fatalf("Assign failed: %v", err)
			}
			obj++
		}
	}
	return s
}

func TestLoadVariance(t *testing.T) {
	tests := []struct {
		name  string
		cap   int
		loads []int
		want  float64
	}{
		{name: "uniform", cap: 4, loads: []int{2, 2, 2, 2}, want: 0},
		{name: "spread", cap: 10, loads: []int{0, 4}, want: 4},
		{name: "mixed", cap: 10, loads: []int{1, 2, 3}, want: 2.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServers(t, tt.cap, tt.loads...)
			got := LoadVariance(s)
			if diff := got - tt.want; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("LoadVariance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFractionFull(t *testing.T) {
	s := newServers(t, 2, 2, 2, 1, 0)
	if got := FractionFull(s); got != 0.5 {
		t.Errorf("FractionFull = %v, want 0.5", got)
	}
}

func TestUnderFilled(t *testing.T) {
	s := newServers(t, 3, 3, 2, 2, 0)
	if got := UnderFilled(s); got != 2 {
		t.Errorf("UnderFilled = %d, want 2", got)
	}
}

func TestSampleProbes_CountsFullServersAndSlots(t *testing.T) {
	table, err := ring.Build(2, 1, 8, &scriptedSource{seq: []int{2, 5}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s := newServers(t, 1, 1, 0) // server 0 full, server 1 empty

	// Draws: empty slot, full server's slot, empty slot, eligible slot.
	rng := &scriptedSource{seq: []int{0, 2, 7, 5}}
	sample, err := SampleProbes(table, s, rng)
	if err != nil {
		t.Fatalf("SampleProbes failed: %v", err)
	}
	if sample.ServersTried != 2 {
		t.Errorf("ServersTried = %d, want 2 (one rejection plus acceptance)", sample.ServersTried)
	}
	if sample.SlotsProbed != 4 {
		t.Errorf("SlotsProbed = %d, want 4 (every draw counted)", sample.SlotsProbed)
	}
}

func TestSampleProbes_DoesNotMutate(t *testing.T) {
	table, err := ring.Build(2, 1, 8, &scriptedSource{seq: []int{2, 5}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s := newServers(t, 2, 1, 1)

	if _, err := SampleProbes(table, s, &scriptedSource{seq: []int{2}}); err != nil {
		t.Fatalf("SampleProbes failed: %v", err)
	}
	if s.Load(0) != 1 || s.Load(1) != 1 {
		t.Errorf("SampleProbes mutated loads: %v", s.Loads())
	}
}

func TestSampleProbes_AllFull(t *testing.T) {
	table, err := ring.Build(2, 1, 8, &scriptedSource{seq: []int{2, 5}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s := newServers(t, 1, 1, 1)

	if _, err := SampleProbes(table, s, &scriptedSource{}); !errors.Is(err, ErrAllFull) {
		t.Errorf("SampleProbes error = %v, want ErrAllFull", err)
	}
}
