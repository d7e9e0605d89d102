package rtosutil

import "testing"

func TestPoolDrain(t *testing.T) {
	items := make([]*testItem, 4)
	for i := range items {
		items[i] = &testItem{id: i}
	}
	p := NewPool(items)

	got := map[*testItem]bool{}
	for i := 0; i < len(items); i++ {
		v, ok := p.Acquire()
		if !ok {
			t.Fatalf("Acquire %v failed with items remaining", i)
		}
		if got[v] {
			t.Fatalf("item %v handed out twice", v.id)
		}
		got[v] = true
	}

	if _, ok := p.Acquire(); ok {
		t.Fatal("Acquire succeeded on exhausted pool")
	}
}

func TestPoolSeedOrder(t *testing.T) {
	items := []*testItem{{id: 0}, {id: 1}, {id: 2}}
	p := NewPool(items)

	for i := range items {
		v, ok := p.Acquire()
		if !ok {
			t.Fatalf("Acquire %v failed", i)
		}
		if v != items[i] {
			t.Fatalf("Acquire %v: got id %v, want id %v", i, v.id, i)
		}
	}
}

func TestPoolReleaseReuse(t *testing.T) {
	items := []*testItem{{id: 0}, {id: 1}}
	p := NewPool(items)

	a, _ := p.Acquire()
	b, _ := p.Acquire()
	p.Release(a)

	// LIFO: the most recently released item comes back first
	v, ok := p.Acquire()
	if !ok || v != a {
		t.Fatal("released item not reused")
	}
	p.Release(b)
	p.Release(v)
	if v, _ := p.Acquire(); v != a {
		t.Fatal("free list not LIFO")
	}
}
