package rtosutil

// Pool hands out items from a fixed set seeded at construction. The free
// items are threaded through their own embedded Node, so the pool needs no
// bookkeeping storage and never allocates after NewPool.
// No internal locking: callers serialize access externally.
type Pool[T Linked[T]] struct {
	free List[T]
}

// NewPool seeds a pool with items. The items must be unlinked and outlive
// the pool; the pool never frees them.
func NewPool[T Linked[T]](items []T) *Pool[T] {
	p := &Pool[T]{}
	for i := len(items) - 1; i >= 0; i-- {
		p.free.PushFront(items[i])
	}
	return p
}

// Acquire removes an item from the free list, or reports false if the pool
// is exhausted.
func (p *Pool[T]) Acquire() (T, bool) {
	if p.free.Empty() {
		var zero T
		return zero, false
	}
	v := p.free.Front()
	p.free.PopFront()
	return v, true
}

// Release returns an item to the free list.
//
// Precondition: v was acquired from this pool and is not already free.
func (p *Pool[T]) Release(v T) {
	p.free.PushFront(v)
}
