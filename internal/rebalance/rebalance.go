package rebalance

import (
	"fmt"
	"slices"

	"jumpring/internal/registry"
	"jumpring/internal/ring"
)

// Source supplies shuffles so that mover scanning order is not biased
// toward low object ids or first-built duplicate slots.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// Removal summarizes one RemoveObject call.
type Removal struct {
	Server   int
	Slot     int
	WasFull  bool
	Refilled bool
}

// Rebalancer removes objects and refills the vacancies they leave.
type Rebalancer struct {
	table   *ring.Table
	servers *registry.ServerSet
	objects *registry.ObjectSet
	rng     Source
}

// NewRebalancer wires a rebalancer over the shared table and registries.
func NewRebalancer(table *ring.Table, servers *registry.ServerSet, objects *registry.ObjectSet, rng Source) *Rebalancer {
	return &Rebalancer{
		table:   table,
		servers: servers,
		objects: objects,
		rng:     rng,
	}
}

// RemoveObject deletes a live object. If the vacated server was full,
// its freed unit of capacity is offered to an eligible object from
// elsewhere on the ring; Refilled reports whether one was found. A
// server left at one below its cap with no valid mover anywhere is an
// accepted state, not an error.
func (r *Rebalancer) RemoveObject(id uint64) (Removal, error) {
	slot, err := r.objects.Slot(id)
	if err != nil {
		return Removal{}, err
	}
	srv := r.table.OwnerOf(slot)

	wasFull, err := r.servers.Unassign(srv, id)
	if err != nil {
		return Removal{}, fmt.Errorf("remove object %d: %w", id, err)
	}
	if err := r.objects.Remove(id); err != nil {
		return Removal{}, err
	}

	rm := Removal{Server: srv, Slot: slot, WasFull: wasFull}
	if wasFull {
		refilled, err := r.fillBin(slot)
		if err != nil {
			return Removal{}, fmt.Errorf("refill after removing object %d: %w", id, err)
		}
		rm.Refilled = refilled
	}
	return rm, nil
}

// fillBin tries to bring the server owning slot back to its load cap
// by relocating an object whose probe history includes one of the
// server's owned slots. A mover must actually change owner. When the
// mover's previous server was full, the vacancy it leaves behind is
// refilled recursively, walking the vacancy back along the movers'
// probe histories.
func (r *Rebalancer) fillBin(slot int) (bool, error) {
	srv := r.table.OwnerOf(slot)
	if r.servers.Load(srv) != r.servers.LoadCap()-1 {
		return r.servers.IsFull(srv), nil
	}

	owned := r.table.OwnedSlots(srv)
	r.rng.Shuffle(len(owned), func(i, j int) { owned[i], owned[j] = owned[j], owned[i] })

	ids := r.objects.IDs()
	slices.Sort(ids)
	r.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	for _, id := range ids {
		cur, err := r.objects.Slot(id)
		if err != nil {
			return false, err
		}
		curSrv := r.table.OwnerOf(cur)
		if curSrv == srv {
			continue
		}
		for _, s := range owned {
			if !r.objects.HistoryContains(id, s) {
				continue
			}

			if err := r.servers.Assign(srv, id); err != nil {
				return false, err
			}
			movedFromFull, err := r.servers.Unassign(curSrv, id)
			if err != nil {
				return false, err
			}
			if err := r.objects.Relocate(id, s); err != nil {
				return false, err
			}
			if movedFromFull {
				if _, err := r.fillBin(cur); err != nil {
					return false, err
				}
			}
			if r.servers.IsFull(srv) {
				return true, nil
			}
			break
		}
	}
	return r.servers.IsFull(srv), nil
}
