package placement

import (
	"context"
	"errors"
	"fmt"

	"jumpring/internal/hashkit"
	"jumpring/internal/registry"
	"jumpring/internal/ring"
)

// ErrSaturated reports that no eligible server was found within the
// probe budget. The ring is at or near global capacity; callers should
// check the full fraction before retrying.
var ErrSaturated = errors.New("ring saturated: probe budget exhausted")

// Strategy selects how candidate slots are drawn during placement.
type Strategy int

const (
	// SingleProbe draws one uniformly random slot per attempt. It is
	// the reference strategy: simple, but one randomness draw per probe.
	SingleProbe Strategy = iota
	// MultiProbe derives four candidate slots from one 128-bit digest
	// of (object id, attempt counter) per attempt, reducing the
	// expected number of hash evaluations. Preferred for production.
	MultiProbe
)

// Source supplies uniform random slot draws for the single-probe
// strategy. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Placement describes one accepted assignment.
type Placement struct {
	ObjectID uint64
	Server   int
	Slot     int
	Probes   int
}

// Engine places objects onto the ring. maxProbes bounds the number of
// slots examined per placement; zero means unbounded, in which case a
// placement on a fully saturated ring never terminates.
type Engine struct {
	table     *ring.Table
	servers   *registry.ServerSet
	objects   *registry.ObjectSet
	rng       Source
	strategy  Strategy
	maxProbes int
}

// NewEngine wires an engine over the shared table and registries.
func NewEngine(table *ring.Table, servers *registry.ServerSet, objects *registry.ObjectSet, rng Source, strategy Strategy, maxProbes int) *Engine {
	return &Engine{
		table:     table,
		servers:   servers,
		objects:   objects,
		rng:       rng,
		strategy:  strategy,
		maxProbes: maxProbes,
	}
}

// AddObject places the next object id onto an eligible server and
// commits it to both registries. On ErrSaturated or cancellation no
// state is modified.
func (e *Engine) AddObject(ctx context.Context) (Placement, error) {
	if e.strategy == MultiProbe {
		return e.placeMulti(ctx)
	}
	return e.placeSingle(ctx)
}

// InitialLoad places n objects, growing the population from empty to
// the expected count the load cap was derived from.
func (e *Engine) InitialLoad(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if _, err := e.AddObject(ctx); err != nil {
			return fmt.Errorf("initial load stopped after %d of %d objects: %w", i, n, err)
		}
	}
	return nil
}

func (e *Engine) placeSingle(ctx context.Context) (Placement, error) {
	history := make([]int, 0, 8)
	for {
		if err := ctx.Err(); err != nil {
			return Placement{}, err
		}
		if e.maxProbes > 0 && len(history) >= e.maxProbes {
			return Placement{}, ErrSaturated
		}
		slot := e.rng.Intn(e.table.Size())
		history = append(history, slot)
		if srv := e.table.OwnerOf(slot); srv != ring.Empty && !e.servers.IsFull(srv) {
			return e.commit(srv, slot, history)
		}
	}
}

func (e *Engine) placeMulti(ctx context.Context) (Placement, error) {
	key := e.objects.NextID()
	mask := uint64(e.table.Size() - 1)
	history := make([]int, 0, 8)
	for salt := uint64(0); ; salt++ {
		if err := ctx.Err(); err != nil {
			return Placement{}, err
		}
		hi, lo := hashkit.Sum128(key, salt)
		for _, lane := range [4]uint64{lo & mask, (lo >> 32) & mask, hi & mask, (hi >> 32) & mask} {
			if e.maxProbes > 0 && len(history) >= e.maxProbes {
				return Placement{}, ErrSaturated
			}
			slot := int(lane)
			history = append(history, slot)
			if srv := e.table.OwnerOf(slot); srv != ring.Empty && !e.servers.IsFull(srv) {
				return e.commit(srv, slot, history)
			}
		}
	}
}

func (e *Engine) commit(srv, slot int, history []int) (Placement, error) {
	id := e.objects.Insert(slot, history)
	if err := e.servers.Assign(srv, id); err != nil {
		return Placement{}, fmt.Errorf("commit object %d: %w", id, err)
	}
	return Placement{ObjectID: id, Server: srv, Slot: slot, Probes: len(history)}, nil
}
