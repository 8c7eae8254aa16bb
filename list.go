package kvlist

import "iter"

// LessFunc reports whether a sorts strictly before b.
type LessFunc[K any] func(a, b K) bool

// Pair holds a key with its value
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// List is an ordered key/value container with at most one entry per key.
// The zero value for List is an empty list ready to use.
type List[K comparable, V any] struct {
	head *node[K, V]
	size int
}

// New returns an empty list
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// Len returns the number of entries
func (l *List[K, V]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no entries
func (l *List[K, V]) IsEmpty() bool {
	return l.head == nil
}

// Search returns the value stored under key.
func (l *List[K, V]) Search(key K) (V, bool) {
	for n := l.head; n != nil; n = n.next {
		if n.key == key {
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Insert adds key with value at the end of the list. When key is already
// present its node is replaced in place, keeping the original position.
func (l *List[K, V]) Insert(key K, value V) {
	elem := newNode(key, value)
	if l.head == nil {
		l.head = elem
		l.size++
		return
	}
	if l.head.key == key {
		old := l.head
		elem.next = old.next
		l.head = elem
		old.detach()
		return
	}
	prev := l.head
	for cur := prev.next; cur != nil; prev, cur = cur, cur.next {
		if cur.key == key {
			elem.next = cur.next
			prev.next = elem
			cur.detach()
			return
		}
	}
	prev.next = elem
	l.size++
}

// Remove unlinks the entry stored under key. Removing an absent key is a no-op.
func (l *List[K, V]) Remove(key K) {
	if l.head == nil {
		return
	}
	if l.head.key == key {
		l.head = l.head.detach()
		l.size--
		return
	}
	for prev := l.head; prev.next != nil; prev = prev.next {
		if cur := prev.next; cur.key == key {
			prev.next = cur.detach()
			l.size--
			return
		}
	}
}

// PopHead removes and returns the first entry. On an empty list it returns
// the zero Pair and false.
func (l *List[K, V]) PopHead() (Pair[K, V], bool) {
	if l.head == nil {
		return Pair[K, V]{}, false
	}
	popped := l.head
	l.head = popped.detach()
	l.size--
	return Pair[K, V]{Key: popped.key, Value: popped.value}, true
}

// IsSorted reports whether less holds for every adjacent pair of keys.
// An empty list is reported as not sorted.
func (l *List[K, V]) IsSorted(less LessFunc[K]) bool {
	if l.head == nil {
		return false
	}
	for n := l.head; n.next != nil; n = n.next {
		if !less(n.key, n.next.key) {
			return false
		}
	}
	return true
}

// All returns an iterator over the entries in traversal order.
func (l *List[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Clear releases every entry, walking the chain iteratively.
func (l *List[K, V]) Clear() {
	for n := l.head; n != nil; {
		n = n.detach()
	}
	l.head = nil
	l.size = 0
}
