package rtosutil

// A minimal intrusive singly linked list for OS use.
// Not recommended for general use, since this does not manage memory or have many features.

// Node is the link embedded in list elements. The zero value is unlinked.
// Only this package writes the link; elements read it via Next.
type Node[T any] struct {
	next T
}

// Next returns the successor element, or the zero value of T at the end of
// the chain.
func (n *Node[T]) Next() T {
	return n.next
}

// Link returns the node itself. Embedding Node[T] in an element type makes
// the element satisfy Linked[T] through this method.
func (n *Node[T]) Link() *Node[T] {
	return n
}

// Linked is the bound on list elements: an element type embeds Node[T] (or
// otherwise exposes one) and is comparable by identity.
type Linked[T any] interface {
	comparable
	Link() *Node[T]
}

// List threads externally owned elements through their embedded Node.
// The zero value is an empty list.
//
// The list does not own element memory: the caller must keep an element alive
// for as long as it is linked, and tearing down a list does not touch the
// elements still on it.
//
// A List must not be copied; use Move to transfer ownership of the chain.
// No internal locking: callers serialize access externally.
type List[T Linked[T]] struct {
	noCopy noCopy
	head   T
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	var zero T
	return l.head == zero
}

// Front returns the first element, or the zero value of T if the list is
// empty.
func (l *List[T]) Front() T {
	return l.head
}

// PushFront links e as the new first element.
//
// Precondition: e is not currently linked into this or any other list.
// Violations are not detected and corrupt the chain.
func (l *List[T]) PushFront(e T) {
	e.Link().next = l.head
	l.head = e
}

// PopFront unlinks the first element, clearing its link. No-op on an empty
// list. The element is not returned; capture Front before popping if it is
// still needed.
func (l *List[T]) PopFront() {
	var zero T
	if l.head == zero {
		return
	}
	h := l.head.Link()
	l.head = h.next
	h.next = zero
}

// Erase unlinks e wherever it is in the list, clearing its link, and reports
// whether it was found. Linear scan by identity.
func (l *List[T]) Erase(e T) bool {
	var zero T
	prev := zero
	for cur := l.head; cur != zero; cur = cur.Link().next {
		if cur == e {
			if prev != zero {
				prev.Link().next = cur.Link().next
			} else {
				l.head = cur.Link().next
			}
			cur.Link().next = zero
			return true
		}
		prev = cur
	}
	return false
}

// Move transfers the chain to a new list and leaves l empty.
func (l *List[T]) Move() *List[T] {
	var zero T
	out := &List[T]{head: l.head}
	l.head = zero
	return out
}

// noCopy makes `go vet` flag value copies of List.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
