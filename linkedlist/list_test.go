package linkedlist

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestEmptyOnCreation(t *testing.T) {
	l := New[uint32]()
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())

	var zero List[uint32]
	require.True(t, zero.IsEmpty())
	zero.Push(7)
	require.Equal(t, 1, zero.Len())
}

func TestPushPopOrder(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 5; i++ {
		l.Push(i)
		require.False(t, l.IsEmpty())
		require.Equal(t, i, l.Len())
	}
	for want := 5; want >= 1; want-- {
		v, ok := l.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
		require.Equal(t, want-1, l.Len())
	}
	for i := 0; i < 3; i++ {
		_, ok := l.Pop()
		require.False(t, ok)
		require.Equal(t, 0, l.Len())
	}

	l.Push(9)
	v, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, 9, v)
}

func TestPopOnEmpty(t *testing.T) {
	l := New[uint32]()
	v, ok := l.Pop()
	require.False(t, ok)
	require.Zero(t, v)
	require.Equal(t, 0, l.Len())
	require.True(t, l.IsEmpty())
}

func TestLenAfterPushesAndPops(t *testing.T) {
	testCases := []struct {
		pushes, pops int
	}{
		{0, 0},
		{1, 0},
		{1, 1},
		{4, 2},
		{10, 10},
	}
	for _, tc := range testCases {
		l := New[int]()
		for i := 0; i < tc.pushes; i++ {
			l.Push(i)
		}
		for i := 0; i < tc.pops; i++ {
			_, ok := l.Pop()
			require.True(t, ok)
		}
		require.Equal(t, tc.pushes-tc.pops, l.Len(), "pushes=%d pops=%d", tc.pushes, tc.pops)
		require.Equal(t, l.Len() == 0, l.IsEmpty())
	}
}

func TestPeek(t *testing.T) {
	l := New[int]()
	_, ok := l.Peek()
	require.False(t, ok)

	l.Push(1)
	first, ok := l.Peek()
	require.True(t, ok)
	second, ok := l.Peek()
	require.True(t, ok)
	require.Equal(t, 1, first)
	require.Equal(t, first, second)
	require.Equal(t, 1, l.Len())

	v, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)
	_, ok = l.Peek()
	require.False(t, ok)
}

func TestZeroValuesAreNotAbsence(t *testing.T) {
	l := New[*string]()
	l.Push(nil)

	v, ok := l.Peek()
	require.True(t, ok)
	require.Nil(t, v)

	v, ok = l.Pop()
	require.True(t, ok)
	require.Nil(t, v)

	_, ok = l.Pop()
	require.False(t, ok)
}

func TestHead(t *testing.T) {
	l := New[string]()
	_, err := l.Head()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrEmpty))

	l.Push("books")
	v, err := l.Head()
	require.NoError(t, err)
	require.Equal(t, "books", v)
	require.Equal(t, 1, l.Len())
}

func TestFromSlice(t *testing.T) {
	l := FromSlice([]string{"1", "2", "3", "4"})
	require.Equal(t, 4, l.Len())
	for _, want := range []string{"4", "3", "2", "1"} {
		v, ok := l.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := l.Pop()
	require.False(t, ok)

	require.True(t, FromSlice[int](nil).IsEmpty())
}

func TestFromSeq(t *testing.T) {
	l := FromSeq(slices.Values([]int{1, 2, 3}))
	require.Equal(t, []int{3, 2, 1}, l.ToSlice())
}

func TestToSlice(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 3; i++ {
		l.Push(i)
	}
	require.Equal(t, 3, l.Len())
	require.Equal(t, []int{3, 2, 1}, l.ToSlice())
	require.True(t, l.IsEmpty())

	require.Empty(t, New[int]().ToSlice())
}

func TestRev(t *testing.T) {
	l := New[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)

	r := l.Rev()
	require.True(t, l.IsEmpty())
	require.Equal(t, 3, r.Len())
	for _, want := range []int{1, 2, 3} {
		v, ok := r.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := r.Pop()
	require.False(t, ok)

	require.True(t, New[int]().Rev().IsEmpty())
}

func TestRevThenToSlice(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3}, l.Rev().ToSlice())
}

func TestDoubleRev(t *testing.T) {
	values := []int{5, 8, 13, 21}
	require.Equal(t, FromSlice(values).ToSlice(), FromSlice(values).Rev().Rev().ToSlice())
}

func TestFrontWalk(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	var got []int
	for n := l.Front(); n != nil; n = n.Next() {
		got = append(got, n.Value())
	}
	require.Equal(t, []int{3, 2, 1}, got)
	require.Equal(t, 3, l.Len())
	require.Nil(t, New[int]().Front())
}

func TestString(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	require.Equal(t, "[3 2 1]", l.String())
	require.Equal(t, 3, l.Len())
	require.Equal(t, "[]", New[string]().String())
}

func TestIsGeneric(t *testing.T) {
	u := New[uint32]()
	u.Push(1)
	v, ok := u.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(1), v)

	type book struct{ title string }
	b := New[book]()
	b.Push(book{title: "books"})
	got, ok := b.Pop()
	require.True(t, ok)
	require.Equal(t, book{title: "books"}, got)
}

func BenchmarkPushPop(b *testing.B) {
	b.ReportAllocs()
	l := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Push(i)
		l.Pop()
	}
}

func BenchmarkToSlice(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := New[int]()
		for j := 0; j < 1000; j++ {
			l.Push(j)
		}
		_ = l.ToSlice()
	}
}
