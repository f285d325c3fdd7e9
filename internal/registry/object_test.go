package registry

import (
	"errors"
	"testing"
)

func TestObjectSet_InsertAllocatesMonotoneIDs(t *testing.T) {
	o := NewObjectSet()

	id0 := o.Insert(5, []int{5})
	id1 := o.Insert(9, []int{2, 9})
	if id0 != 0 || id1 != 1 {
		t.Fatalf("Insert ids = %d, %d, want 0, 1", id0, id1)
	}

	if err := o.Remove(id1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	// Ids are never reused after removal.
	id2 := o.Insert(3, []int{3})
	if id2 != 2 {
		t.Errorf("Insert after removal allocated id %d, want 2", id2)
	}
	if o.Len() != 2 {
		t.Errorf("Len() = %d, want 2", o.Len())
	}
}

func TestObjectSet_SlotAndHistory(t *testing.T) {
	o := NewObjectSet()
	id := o.Insert(7, []int{1, 4, 7})

	slot, err := o.Slot(id)
	if err != nil {
		t.Fatalf("Slot failed: %v", err)
	}
	if slot != 7 {
		t.Errorf("Slot = %d, want 7", slot)
	}

	hist := o.History(id)
	want := []int{1, 4, 7}
	if len(hist) != len(want) {
		t.Fatalf("History length = %d, want %d", len(hist), len(want))
	}
	for i := range want {
		if hist[i] != want[i] {
			t.Errorf("History[%d] = %d, want %d", i, hist[i], want[i])
		}
	}

	if !o.HistoryContains(id, 4) {
		t.Error("HistoryContains(4) = false, want true")
	}
	if o.HistoryContains(id, 2) {
		t.Error("HistoryContains(2) = true, want false")
	}
}

func TestObjectSet_RelocateTruncatesAtFirstOccurrence(t *testing.T) {
	o := NewObjectSet()
	id := o.Insert(7, []int{5, 9, 5, 7})

	if err := o.Relocate(id, 5); err != nil {
		t.Fatalf("Relocate failed: %v", err)
	}

	slot, _ := o.Slot(id)
	if slot != 5 {
		t.Errorf("Slot after relocate = %d, want 5", slot)
	}
	hist := o.History(id)
	if len(hist) != 1 || hist[0] != 5 {
		t.Errorf("History after relocate = %v, want [5]", hist)
	}
}

func TestObjectSet_RelocateToUnprobedSlotFails(t *testing.T) {
	o := NewObjectSet()
	id := o.Insert(7, []int{3, 7})

	if err := o.Relocate(id, 11); err == nil {
		t.Error("Relocate to a slot outside the probe history should fail")
	}
	// State untouched on failure.
	slot, _ := o.Slot(id)
	if slot != 7 {
		t.Errorf("Slot after failed relocate = %d, want 7", slot)
	}
}

func TestObjectSet_UnknownObjectErrors(t *testing.T) {
	o := NewObjectSet()

	if _, err := o.Slot(99); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Slot(99) error = %v, want ErrUnknownObject", err)
	}
	if err := o.Remove(99); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Remove(99) error = %v, want ErrUnknownObject", err)
	}
	if err := o.Relocate(99, 0); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Relocate(99) error = %v, want ErrUnknownObject", err)
	}
	if o.History(99) != nil {
		t.Error("History(99) should be nil")
	}
}

func TestObjectSet_HistoryReturnsCopy(t *testing.T) {
	o := NewObjectSet()
	id := o.Insert(2, []int{1, 2})

	hist := o.History(id)
	hist[0] = 42
	again := o.History(id)
	if again[0] != 1 {
		t.Error("Mutating History() result changed registry state")
	}
}
