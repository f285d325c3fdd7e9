package ring

import (
	"fmt"
)

// Empty marks a slot that no server owns.
const Empty = -1

// Source supplies uniform random draws over [0, n) for table
// construction. *math/rand.Rand satisfies it; tests may script it.
type Source interface {
	Intn(n int) int
}

// Table is the slot array of the ring. Each slot holds either Empty or
// a server id in [0, Servers()). The table also records, per server,
// which slots it owns (its duplicates).
type Table struct {
	slots      []int
	owned      [][]int
	duplicates int
}

// Build assigns every server its duplicate slots, chosen uniformly at
// random without replacement across the whole table (rejection
// sampling: a draw that hits an owned slot is redrawn). The size must
// be a power of two so that slot indices can be carved directly out of
// hash bits, and large enough to hold all duplicates.
func Build(servers, duplicates, size int, rng Source) (*Table, error) {
	if servers <= 0 {
		return nil, fmt.Errorf("server count must be positive, got %d", servers)
	}
	if duplicates <= 0 {
		return nil, fmt.Errorf("duplicates per server must be positive, got %d", duplicates)
	}
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("ring size must be a power of two, got %d", size)
	}
	if servers*duplicates > size {
		return nil, fmt.Errorf("ring size %d cannot hold %d servers with %d slots each", size, servers, duplicates)
	}

	t := &Table{
		slots:      make([]int, size),
		owned:      make([][]int, servers),
		duplicates: duplicates,
	}
	for i := range t.slots {
		t.slots[i] = Empty
	}
	for srv := 0; srv < servers; srv++ {
		dups := make([]int, 0, duplicates)
		for j := 0; j < duplicates; j++ {
			slot := rng.Intn(size)
			for t.slots[slot] != Empty {
				slot = rng.Intn(size)
			}
			t.slots[slot] = srv
			dups = append(dups, slot)
		}
		t.owned[srv] = dups
	}
	return t, nil
}

// Size returns the number of slots in the table.
func (t *Table) Size() int { return len(t.slots) }

// Servers returns the number of servers placed on the table.
func (t *Table) Servers() int { return len(t.owned) }

// Duplicates returns the number of slots each server owns.
func (t *Table) Duplicates() int { return t.duplicates }

// OwnerOf returns the server owning the slot, or Empty.
func (t *Table) OwnerOf(slot int) int { return t.slots[slot] }

// OwnedSlots returns a copy of the slots held by the server.
func (t *Table) OwnedSlots(server int) []int {
	out := make([]int, len(t.owned[server]))
	copy(out, t.owned[server])
	return out
}
