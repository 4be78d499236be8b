package linked

import (
	"slices"
	"testing"

	"github.com/tj/assert"
)

func values(l *List[int]) []int {
	return slices.Collect(l.Values())
}

func TestPush(t *testing.T) {
	cases := map[string]struct {
		back     []int
		front    []int
		expected []int
	}{
		"Empty": {
			expected: nil,
		},
		"BackOnly": {
			back:     []int{1, 2, 3},
			expected: []int{1, 2, 3},
		},
		"FrontOnly": {
			front:    []int{1, 2, 3},
			expected: []int{3, 2, 1},
		},
		"Mixed": {
			back:     []int{2, 3},
			front:    []int{1, 0},
			expected: []int{0, 1, 2, 3},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			l := &List[int]{}
			for _, v := range tc.back {
				l.PushBack(NewNode(v))
			}
			for _, v := range tc.front {
				l.PushFront(NewNode(v))
			}
			assert.Equal(t, tc.expected, values(l))
			assert.Equal(t, len(tc.expected), l.Len())
			assert.Equal(t, len(tc.expected) == 0, l.Empty())
		})
	}
}

func TestInsertAndUnlink(t *testing.T) {
	l := &List[int]{}
	a, c := NewNode(1), NewNode(3)
	l.PushBack(a)
	l.PushBack(c)

	b := NewNode(2)
	a.InsertAfter(b)
	assert.Equal(t, []int{1, 2, 3}, values(l))
	assert.True(t, l.Contains(b))

	z := NewNode(0)
	a.InsertBefore(z)
	assert.Equal(t, []int{0, 1, 2, 3}, values(l))
	assert.Equal(t, z, l.Front())
	assert.True(t, z.IsFirst())
	assert.True(t, c.IsLast())

	b.Unlink()
	assert.Equal(t, []int{0, 1, 3}, values(l))
	assert.False(t, b.InList())
	assert.Nil(t, b.Next())
	assert.Nil(t, b.Prev())

	c.Unlink()
	assert.Equal(t, a, l.Back())
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []int{1, 0}, slices.Collect(l.Backward()))
}

func TestMoveBetweenLists(t *testing.T) {
	l1, l2 := &List[int]{}, &List[int]{}
	n := NewNode(7)
	l1.PushBack(n)
	l2.PushBack(NewNode(1))

	l2.Back().InsertAfter(n)
	assert.Equal(t, 0, l1.Len())
	assert.Nil(t, l1.Front())
	assert.Equal(t, []int{1, 7}, values(l2))
	assert.Equal(t, l2, n.List())
}

func TestFreeChain(t *testing.T) {
	a, b := NewNode(1), NewNode(2)
	a.InsertAfter(b)
	assert.Equal(t, b, a.Next())
	assert.Equal(t, a, b.Prev())
	assert.False(t, a.InList())

	b.InsertBefore(NewNode(0))
	assert.Equal(t, 0, a.Next().Value)
}

func TestEarlyBreak(t *testing.T) {
	l := &List[int]{}
	for i := range 5 {
		l.PushBack(NewNode(i))
	}
	var got []int
	for v := range l.Values() {
		if v == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1}, got)
}
