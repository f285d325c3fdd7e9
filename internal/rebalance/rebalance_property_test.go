package rebalance

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"jumpring/internal/placement"
	"jumpring/internal/registry"
	"jumpring/internal/ring"
)

// checkInvariants asserts every observable invariant of the registries
// against the table: capacity conservation, full-flag consistency, and
// probe-history validity for every live object.
func checkInvariants(t *testing.T, table *ring.Table, servers *registry.ServerSet, objects *registry.ObjectSet) {
	t.Helper()

	total := 0
	for srv := 0; srv < servers.Count(); srv++ {
		load := servers.Load(srv)
		total += load
		if load < 0 || load > servers.LoadCap() {
			t.Fatalf("Server %d load %d outside [0,%d]", srv, load, servers.LoadCap())
		}
		if servers.IsFull(srv) != (load == servers.LoadCap()) {
			t.Fatalf("Server %d full flag %v inconsistent with load %d", srv, servers.IsFull(srv), load)
		}
	}
	if total != objects.Len() {
		t.Fatalf("Sum of loads %d != live objects %d", total, objects.Len())
	}

	for _, id := range objects.IDs() {
		slot, err := objects.Slot(id)
		if err != nil {
			t.Fatalf("Slot(%d) failed: %v", id, err)
		}
		srv := table.OwnerOf(slot)
		if srv == ring.Empty {
			t.Fatalf("Object %d sits on empty slot %d", id, slot)
		}
		if !servers.Contains(srv, id) {
			t.Fatalf("Server %d does not contain object %d on its slot %d", srv, id, slot)
		}
		hist := objects.History(id)
		if len(hist) == 0 || hist[len(hist)-1] != slot {
			t.Fatalf("Object %d history %v does not end at its slot %d", id, hist, slot)
		}
	}
}

// TestScenario_TightRingFillsExactly is the exact-fit scenario: four
// servers, two duplicates each, sixteen slots, eight objects, zero
// slack. The load cap is 2 and after the initial load every server is
// full regardless of seed.
func TestScenario_TightRingFillsExactly(t *testing.T) {
	const (
		serverCount = 4
		duplicates  = 2
		ringSize    = 16
		objectCount = 8
		loadCap     = 2 // ceil((1+0) * 8 / 4)
	)

	rng := rand.New(rand.NewSource(11))
	table, err := ring.Build(serverCount, duplicates, ringSize, rng)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	servers, err := registry.NewServerSet(serverCount, loadCap)
	if err != nil {
		t.Fatalf("NewServerSet failed: %v", err)
	}
	objects := registry.NewObjectSet()
	engine := placement.NewEngine(table, servers, objects, rng, placement.SingleProbe, 0)

	if err := engine.InitialLoad(context.Background(), objectCount); err != nil {
		t.Fatalf("InitialLoad failed: %v", err)
	}

	for srv := 0; srv < serverCount; srv++ {
		if servers.Load(srv) != loadCap || !servers.IsFull(srv) {
			t.Errorf("Server %d: load=%d full=%v, want %d/true", srv, servers.Load(srv), servers.IsFull(srv), loadCap)
		}
	}
	if servers.FullCount() != serverCount {
		t.Errorf("FullCount = %d, want %d", servers.FullCount(), serverCount)
	}
	checkInvariants(t, table, servers, objects)

	// Removing any object leaves exactly one server under cap; the
	// rebalancer either refills it or proves no mover exists.
	rebal := NewRebalancer(table, servers, objects, rng)
	ids := objects.IDs()
	slices.Sort(ids)
	victim := ids[rng.Intn(len(ids))]

	rm, err := rebal.RemoveObject(victim)
	if err != nil {
		t.Fatalf("RemoveObject failed: %v", err)
	}
	if !rm.WasFull {
		t.Fatal("Every server was full; the vacated one must report WasFull")
	}
	checkInvariants(t, table, servers, objects)

	if rm.Refilled {
		if !servers.IsFull(rm.Server) {
			t.Error("Refilled server must be full again")
		}
	} else {
		if servers.Load(rm.Server) != loadCap-1 {
			t.Errorf("Under-filled server load = %d, want %d", servers.Load(rm.Server), loadCap-1)
		}
		// Exhaustive proof that no valid mover exists.
		for _, id := range objects.IDs() {
			slot, _ := objects.Slot(id)
			if table.OwnerOf(slot) == rm.Server {
				continue
			}
			for _, s := range table.OwnedSlots(rm.Server) {
				if objects.HistoryContains(id, s) {
					t.Errorf("Object %d probed slot %d of server %d but was not moved", id, s, rm.Server)
				}
			}
		}
	}
}

// TestChurn_Property_InvariantsHold drives a seeded ring through
// hundreds of random removals and additions, checking every invariant
// after each operation.
func TestChurn_Property_InvariantsHold(t *testing.T) {
	const (
		serverCount = 16
		duplicates  = 4
		ringSize    = 1024
		objectCount = 200
		loadCap     = 17 // ceil(1.3 * 200 / 16)
		churnOps    = 300
	)

	rng := rand.New(rand.NewSource(5))
	table, err := ring.Build(serverCount, duplicates, ringSize, rng)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	servers, err := registry.NewServerSet(serverCount, loadCap)
	if err != nil {
		t.Fatalf("NewServerSet failed: %v", err)
	}
	objects := registry.NewObjectSet()
	engine := placement.NewEngine(table, servers, objects, rng, placement.MultiProbe, 0)
	rebal := NewRebalancer(table, servers, objects, rng)

	if err := engine.InitialLoad(context.Background(), objectCount); err != nil {
		t.Fatalf("InitialLoad failed: %v", err)
	}
	checkInvariants(t, table, servers, objects)

	for op := 0; op < churnOps; op++ {
		ids := objects.IDs()
		slices.Sort(ids)
		victim := ids[rng.Intn(len(ids))]

		if _, err := rebal.RemoveObject(victim); err != nil {
			t.Fatalf("Op %d: RemoveObject(%d) failed: %v", op, victim, err)
		}
		checkInvariants(t, table, servers, objects)

		if _, err := engine.AddObject(context.Background()); err != nil {
			t.Fatalf("Op %d: AddObject failed: %v", op, err)
		}
		checkInvariants(t, table, servers, objects)
	}

	if objects.Len() != objectCount {
		t.Errorf("Live objects = %d, want %d after balanced churn", objects.Len(), objectCount)
	}
}
