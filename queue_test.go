package rtosutil

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int](4)
	for i := 0; i < 4; i++ {
		if !q.Push(i) {
			t.Fatalf("Push %v failed", i)
		}
	}
	if !q.Full() {
		t.Fatal("queue not full")
	}
	if q.Push(99) {
		t.Fatal("Push succeeded on full queue")
	}
	for i := 0; i < 4; i++ {
		v, ok := q.Pop()
		if !ok || v != i {
			t.Fatalf("Pop: got %v %v, want %v true", v, ok, i)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop succeeded on empty queue")
	}
}

func TestQueueWraparound(t *testing.T) {
	q := NewQueue[int](3)
	next := 0
	pop := 0
	for round := 0; round < 10; round++ {
		for q.Push(next) {
			next++
		}
		v, ok := q.Pop()
		if !ok || v != pop {
			t.Fatalf("round %v: got %v %v, want %v true", round, v, ok, pop)
		}
		pop++
	}
	if q.Len() != 2 {
		t.Fatalf("Len = %v, want 2", q.Len())
	}
}

func TestQueueEmpty(t *testing.T) {
	q := NewQueue[int](2)
	if !q.Empty() || q.Full() || q.Len() != 0 || q.Cap() != 2 {
		t.Fatal("bad empty queue state")
	}
}
