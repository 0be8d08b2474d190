package maxheap

// Sort drains the heap in place, leaving the backing storage sorted
// ascending by priority at indices 1..n, where n is the count at the time of
// the call. Each extracted root is written into the slot the extraction just
// vacated at the high end of the active range. O(n log n) time, O(1) extra
// space.
//
// Sort is terminal: afterwards the count is zero, the heap invariant no
// longer describes the storage, and further Insert/RemoveMax calls are
// unsupported.
func (h *Heap[V]) Sort() {
	for i := h.count; i >= 1; i-- {
		h.slots[i] = h.extractRoot()
	}
}

// Heapsort sorts a 1-indexed record slice ascending by priority, in place.
// It adopts records via FromRecords and drains with Sort, so the caller's
// slice holds the sorted result; slot 0 is reserved and left nil.
//
// Returns ErrInvalidRecords for a malformed slice, in which case records is
// unchanged.
func Heapsort[V any](records []*Record[V]) error {
	h, err := FromRecords(records)
	if err != nil {
		return err
	}
	h.Sort()
	return nil
}
