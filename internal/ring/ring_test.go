package ring

import (
	"math/rand"
	"testing"
)

func TestBuild_Validation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name       string
		servers    int
		duplicates int
		size       int
		wantErr    bool
	}{
		{name: "valid", servers: 4, duplicates: 2, size: 16},
		{name: "exactly full table", servers: 8, duplicates: 2, size: 16},
		{name: "zero servers", servers: 0, duplicates: 2, size: 16, wantErr: true},
		{name: "zero duplicates", servers: 4, duplicates: 0, size: 16, wantErr: true},
		{name: "size not power of two", servers: 4, duplicates: 2, size: 24, wantErr: true},
		{name: "too many duplicates", servers: 4, duplicates: 5, size: 16, wantErr: true},
		{name: "zero size", servers: 1, duplicates: 1, size: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.servers, tt.duplicates, tt.size, rng)
			if (err != nil) != tt.wantErr {
				t.Errorf("Build(%d, %d, %d) error = %v, wantErr %v",
					tt.servers, tt.duplicates, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestBuild_OccupancyInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	table, err := Build(10, 4, 256, rng)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	occupied := 0
	for slot := 0; slot < table.Size(); slot++ {
		if table.OwnerOf(slot) != Empty {
			occupied++
		}
	}
	if occupied != 10*4 {
		t.Errorf("Occupied slots = %d, want %d", occupied, 10*4)
	}
}

func TestBuild_OwnedSlotsMatchOwnerOf(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	table, err := Build(6, 3, 64, rng)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	seen := make(map[int]bool)
	for srv := 0; srv < table.Servers(); srv++ {
		slots := table.OwnedSlots(srv)
		if len(slots) != table.Duplicates() {
			t.Errorf("Server %d owns %d slots, want %d", srv, len(slots), table.Duplicates())
		}
		for _, slot := range slots {
			if table.OwnerOf(slot) != srv {
				t.Errorf("OwnerOf(%d) = %d, want %d", slot, table.OwnerOf(slot), srv)
			}
			if seen[slot] {
				t.Errorf("Slot %d owned by more than one server", slot)
			}
			seen[slot] = true
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t1, err := Build(5, 2, 64, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t2, err := Build(5, 2, 64, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for slot := 0; slot < t1.Size(); slot++ {
		if t1.OwnerOf(slot) != t2.OwnerOf(slot) {
			t.Fatalf("Same seed produced different tables at slot %d: %d vs %d",
				slot, t1.OwnerOf(slot), t2.OwnerOf(slot))
		}
	}
}

func TestOwnedSlots_ReturnsCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	table, err := Build(2, 2, 16, rng)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	slots := table.OwnedSlots(0)
	orig := table.OwnedSlots(0)
	slots[0] = -42
	after := table.OwnedSlots(0)
	if after[0] != orig[0] {
		t.Error("Mutating the returned slice changed table state")
	}
}
