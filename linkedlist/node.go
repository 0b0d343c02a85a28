package linkedlist

// Node is one link of a List. Only the owning List can relink it.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Value returns the element held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the following node, or nil for the last one.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
