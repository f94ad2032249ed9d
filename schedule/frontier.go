package schedule

// entry is one frontier item: the optimistic estimate, an insertion sequence
// for deterministic tie-breaking, and the state itself.
type entry struct {
	estimate int
	seq      uint64
	st       *state
}

// frontier is a max-heap of *entry ordered by estimate descending, then by
// insertion order. Duplicates are pushed freely and filtered on pop.
type frontier []*entry

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less: higher estimate → higher priority; FIFO among equal estimates.
func (f frontier) Less(i, j int) bool {
	if f[i].estimate != f[j].estimate {
		return f[i].estimate > f[j].estimate
	}
	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be *entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
