package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownObject reports an operation on an object id that is not
// live. Removing or relocating an unknown id fails loudly rather than
// silently doing nothing.
var ErrUnknownObject = errors.New("object is not live")

type object struct {
	slot    int
	history []int
}

// ObjectSet tracks live objects: where each one currently sits and the
// ordered probe history that led it there (the accepted slot is always
// the last element). Object ids are allocated from a monotonically
// increasing counter and never reused within a run.
type ObjectSet struct {
	next    uint64
	objects map[uint64]*object
}

// NewObjectSet returns an empty object registry.
func NewObjectSet() *ObjectSet {
	return &ObjectSet{objects: make(map[uint64]*object)}
}

// Len returns the number of live objects.
func (o *ObjectSet) Len() int { return len(o.objects) }

// NextID returns the id the next Insert will allocate.
func (o *ObjectSet) NextID() uint64 { return o.next }

// IDs returns the ids of all live objects in unspecified order.
func (o *ObjectSet) IDs() []uint64 {
	return slices.Collect(maps.Keys(o.objects))
}

// Insert registers a new object sitting at slot with the probes that
// led there and returns its id. The history must end with slot.
func (o *ObjectSet) Insert(slot int, history []int) uint64 {
	id := o.next
	o.next++
	o.objects[id] = &object{slot: slot, history: history}
	return id
}

// Slot returns the object's current slot.
func (o *ObjectSet) Slot(id uint64) (int, error) {
	obj, ok := o.objects[id]
	if !ok {
		return 0, fmt.Errorf("object %d: %w", id, ErrUnknownObject)
	}
	return obj.slot, nil
}

// History returns a copy of the object's probe history, or nil if the
// object is not live.
func (o *ObjectSet) History(id uint64) []int {
	obj, ok := o.objects[id]
	if !ok {
		return nil
	}
	return slices.Clone(obj.history)
}

// HistoryContains reports whether the object ever probed the slot.
func (o *ObjectSet) HistoryContains(id uint64, slot int) bool {
	obj, ok := o.objects[id]
	if !ok {
		return false
	}
	return slices.Contains(obj.history, slot)
}

// Relocate moves the object to a slot it previously probed, truncating
// its history at the first occurrence of that slot. Probes recorded
// after the new slot are no longer meaningful history and are dropped.
func (o *ObjectSet) Relocate(id uint64, slot int) error {
	obj, ok := o.objects[id]
	if !ok {
		return fmt.Errorf("object %d: %w", id, ErrUnknownObject)
	}
	idx := slices.Index(obj.history, slot)
	if idx < 0 {
		return fmt.Errorf("slot %d is not in object %d's probe history", slot, id)
	}
	obj.history = obj.history[:idx+1]
	obj.slot = slot
	return nil
}

// Remove deletes the object's registry entry, history included.
func (o *ObjectSet) Remove(id uint64) error {
	if _, ok := o.objects[id]; !ok {
		return fmt.Errorf("object %d: %w", id, ErrUnknownObject)
	}
	delete(o.objects, id)
	return nil
}
