package linkedlist

// Stack is the head-only view of a list shared by List and its wrappers.
type Stack[T any] interface {
	Push(v T)
	Pop() (T, bool)
	Peek() (T, bool)
	Len() int
	IsEmpty() bool
}

var _ Stack[int] = (*List[int])(nil)
