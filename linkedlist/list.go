// Package linkedlist implements a generic singly linked list that is only
// accessible from its head.
//
// Elements are pushed to and popped from the front, so a list behaves like a
// stack:
//
//	l := linkedlist.New[int]()
//	l.Push(1)
//	l.Push(2)
//	v, ok := l.Pop() // 2, true
//
// Absence is always reported through the boolean result of Pop and Peek,
// never through a special element value, so a list may hold zero values.
//
// Rev and ToSlice consume the list they are called on: it is left empty and
// its elements move into the result. A List is not safe for concurrent use.
package linkedlist

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/errors"
)

// ErrEmpty is returned by Head when the list holds no elements.
var ErrEmpty = errors.New("linkedlist: list is empty")

// List is a singly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	length int
	head   *Node[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice builds a list by pushing items in order, so the last item ends up
// at the head.
func FromSlice[T any](items []T) *List[T] {
	l := New[T]()
	for _, v := range items {
		l.Push(v)
	}
	return l
}

// FromSeq is FromSlice for an arbitrary sequence.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.Push(v)
	}
	return l
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Len returns the number of elements. It does not walk the chain.
func (l *List[T]) Len() int {
	return l.length
}

// Push prepends v, making it the new head.
func (l *List[T]) Push(v T) {
	l.head = &Node[T]{value: v, next: l.head}
	l.length++
}

// Pop removes the head and returns its element. ok is false if the list is
// empty.
func (l *List[T]) Pop() (v T, ok bool) {
	n := l.head
	if n == nil {
		return v, false
	}
	l.head = n.next
	l.length--
	n.next = nil
	return n.value, true
}

// Peek returns the head element without removing it. ok is false if the list
// is empty.
func (l *List[T]) Peek() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// Head is Peek for callers that want an error; it returns ErrEmpty when there
// is nothing to return.
func (l *List[T]) Head() (T, error) {
	v, ok := l.Peek()
	if !ok {
		return v, errors.WithStack(ErrEmpty)
	}
	return v, nil
}

// Front returns the head node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Rev returns a new list holding the same elements in reverse order: the old
// tail becomes the new head. l is drained in the process.
func (l *List[T]) Rev() *List[T] {
	r := New[T]()
	for v, ok := l.Pop(); ok; v, ok = l.Pop() {
		r.Push(v)
	}
	return r
}

// ToSlice drains l into a slice ordered head first.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.length)
	for v, ok := l.Pop(); ok; v, ok = l.Pop() {
		out = append(out, v)
	}
	return out
}

// String renders the elements head first, e.g. "[3 2 1]". It does not modify
// the list.
func (l *List[T]) String() string {
	values := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return fmt.Sprint(values)
}
