package kvlist

// Sort reorders the list in place so that IsSorted(less) holds afterwards.
// Existing nodes are relinked, nothing is allocated.
func (l *List[K, V]) Sort(less LessFunc[K]) {
	l.head = quicksort(l.head, less)
}

// quicksort takes the first node as pivot. Nodes sorting before the pivot
// form the left chain, every other node (equal keys included) the right one.
func quicksort[K comparable, V any](chain *node[K, V], less LessFunc[K]) *node[K, V] {
	if chain == nil || chain.next == nil {
		return chain
	}
	pivot := chain
	cur := pivot.detach()
	var left, right *node[K, V]
	for cur != nil {
		next := cur.next
		if less(cur.key, pivot.key) {
			cur.next = left
			left = cur
		} else {
			cur.next = right
			right = cur
		}
		cur = next
	}

	left = quicksort(left, less)
	pivot.next = quicksort(right, less)
	if left == nil {
		return pivot
	}
	tail := left
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = pivot
	return left
}
