package kvlist

// node is a single link of the chain. key and value are never changed after
// construction; replacing a value means replacing the node.
type node[K comparable, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

func newNode[K comparable, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

// detach clears the outgoing link so the node no longer keeps its successors reachable.
func (n *node[K, V]) detach() *node[K, V] {
	next := n.next
	n.next = nil
	return next
}
