// Package maxheap provides a fixed-capacity, array-backed binary max-heap.
//
// The heap doubles as a bounded priority queue (Insert/RemoveMax) and as the
// engine for an in-place heapsort (FromRecords/Sort, or the Heapsort
// convenience function). It is not safe for concurrent use; callers needing
// that must serialize access externally.
package maxheap

import (
	"errors"
	"fmt"
)

// DefaultCapacity is used by New when the caller passes a non-positive
// capacity.
const DefaultCapacity = 1023

var (
	// ErrCapacityExceeded is returned by Insert on a full heap. The heap is
	// left unchanged.
	ErrCapacityExceeded = errors.New("maxheap: capacity exceeded")
	// ErrInvalidRecords is returned by FromRecords and Heapsort when the
	// supplied slice is not a well-formed 1-indexed record sequence.
	ErrInvalidRecords = errors.New("maxheap: invalid records")
)

// Record pairs a priority with an opaque element. The heap orders records by
// Priority only and never inspects Element.
type Record[V any] struct {
	Priority int64
	Element  V
}

// Heap is a binary max-heap over a fixed-size backing array.
//
// Storage is 1-indexed: slots[0] is a permanent nil sentinel so parent/child
// arithmetic is plain integer halving and doubling (parent(i)=i/2,
// left(i)=2i, right(i)=2i+1). A nil slot is empty; live records occupy
// slots[1..count].
type Heap[V any] struct {
	slots []*Record[V]
	count int
}

// New returns an empty heap that holds at most capacity records. A
// non-positive capacity selects DefaultCapacity.
func New[V any](capacity int) *Heap[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Heap[V]{
		slots: make([]*Record[V], capacity+1),
	}
}

// FromRecords builds a heap by adopting records as its backing storage: slot
// 0 is the sentinel and slots 1..len-1 are live, so capacity and count both
// become len(records)-1. The slice is reorganized in place in O(n) by
// bottom-up sinking; no copy is made, and later mutations (including Sort)
// are visible through the caller's slice.
//
// Returns ErrInvalidRecords if records has no sentinel slot (length 0) or if
// any live slot is nil. Nothing is adopted on failure.
func FromRecords[V any](records []*Record[V]) (*Heap[V], error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing sentinel slot", ErrInvalidRecords)
	}
	for i := 1; i < len(records); i++ {
		if records[i] == nil {
			return nil, fmt.Errorf("%w: nil record at index %d", ErrInvalidRecords, i)
		}
	}

	h := &Heap[V]{
		slots: records,
		count: len(records) - 1,
	}
	h.slots[0] = nil
	h.buildHeap()
	return h, nil
}

// Insert adds a record. It returns ErrCapacityExceeded, with no state
// change, if the heap is already full.
func (h *Heap[V]) Insert(priority int64, element V) error {
	if h.count+1 >= len(h.slots) {
		return ErrCapacityExceeded
	}
	h.count++
	h.slots[h.count] = &Record[V]{Priority: priority, Element: element}
	h.float(h.count)
	return nil
}

// RemoveMax extracts the highest-priority element. The second return is
// false when the heap is empty; that is defined behavior, not an error, and
// leaves the heap untouched.
func (h *Heap[V]) RemoveMax() (V, bool) {
	rec := h.extractRoot()
	if rec == nil {
		var zero V
		return zero, false
	}
	return rec.Element, true
}

// Count reports the number of live records.
func (h *Heap[V]) Count() int { return h.count }

// Capacity reports the fixed maximum number of records.
func (h *Heap[V]) Capacity() int { return len(h.slots) - 1 }

// extractRoot removes and returns the root record, or nil on an empty heap.
// The last live record is patched into the root, the vacated slot is nilled
// so the heap keeps no reference to extracted data, and the root is sunk to
// restore the invariant. Shared by RemoveMax and Sort.
func (h *Heap[V]) extractRoot() *Record[V] {
	if h.count == 0 {
		return nil
	}
	root := h.slots[1]
	h.slots[1] = h.slots[h.count]
	h.slots[h.count] = nil // avoid memory leak
	h.count--
	h.sink(1)
	return root
}

// buildHeap restores the invariant over slots[1..count] bottom-up. Indices
// past count/2 are leaves, so one sink per internal node in decreasing index
// order suffices; the total cost is O(n), not O(n log n).
func (h *Heap[V]) buildHeap() {
	for i := h.count / 2; i >= 1; i-- {
		h.sink(i)
	}
}

// float sifts the record at i up toward the root while it outranks its
// parent.
func (h *Heap[V]) float(i int) {
	for i > 1 && h.slots[i/2].Priority < h.slots[i].Priority {
		h.slots[i/2], h.slots[i] = h.slots[i], h.slots[i/2]
		i = i / 2
	}
}

// sink sifts the record at i down, swapping with its greatest child until
// neither in-bounds child is strictly greater. Ties stay on the parent,
// matching the >= invariant.
func (h *Heap[V]) sink(i int) {
	for {
		max := i
		if l := 2 * i; l <= h.count && h.slots[l].Priority > h.slots[max].Priority {
			max = l
		}
		if r := 2*i + 1; r <= h.count && h.slots[r].Priority > h.slots[max].Priority {
			max = r
		}
		if max == i {
			return
		}
		h.slots[i], h.slots[max] = h.slots[max], h.slots[i]
		i = max
	}
}
