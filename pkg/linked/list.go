package linked

import "iter"

// Node is a single element of a List. A node that is not part of a list may
// still be chained to other free nodes.
type Node[T any] struct {
	Value T

	next *Node[T]
	prev *Node[T]
	list *List[T]
}

func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }
func (n *Node[T]) List() *List[T] { return n.list }
func (n *Node[T]) InList() bool   { return n.list != nil }
func (n *Node[T]) IsFirst() bool  { return n.prev == nil }
func (n *Node[T]) IsLast() bool   { return n.next == nil }

// InsertAfter links o right after n. o is unlinked from wherever it was
// before.
func (n *Node[T]) InsertAfter(o *Node[T]) {
	o.Unlink()
	o.prev = n
	o.next = n.next
	o.list = n.list
	if n.next != nil {
		n.next.prev = o
	} else if n.list != nil {
		n.list.tail = o
	}
	n.next = o
	if n.list != nil {
		n.list.count++
	}
}

// InsertBefore links o right before n. o is unlinked from wherever it was
// before.
func (n *Node[T]) InsertBefore(o *Node[T]) {
	o.Unlink()
	o.next = n
	o.prev = n.prev
	o.list = n.list
	if n.prev != nil {
		n.prev.next = o
	} else if n.list != nil {
		n.list.head = o
	}
	n.prev = o
	if n.list != nil {
		n.list.count++
	}
}

// Unlink removes n from its list or chain. The neighbours are joined.
func (n *Node[T]) Unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	} else if n.list != nil {
		n.list.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else if n.list != nil {
		n.list.tail = n.prev
	}
	if n.list != nil {
		n.list.count--
	}
	n.next, n.prev, n.list = nil, nil, nil
}

// List is a doubly linked list of nodes. The zero value is an empty list.
type List[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	count int
}

func (l *List[T]) Front() *Node[T] { return l.head }
func (l *List[T]) Back() *Node[T]  { return l.tail }
func (l *List[T]) Len() int        { return l.count }
func (l *List[T]) Empty() bool     { return l.count == 0 }

// PushBack links n at the tail of the list.
func (l *List[T]) PushBack(n *Node[T]) {
	if l.tail != nil {
		l.tail.InsertAfter(n)
		return
	}
	l.first(n)
}

// PushFront links n at the head of the list.
func (l *List[T]) PushFront(n *Node[T]) {
	if l.head != nil {
		l.head.InsertBefore(n)
		return
	}
	l.first(n)
}

func (l *List[T]) first(n *Node[T]) {
	n.Unlink()
	n.list = l
	l.head, l.tail = n, n
	l.count = 1
}

// Contains reports whether n is linked into l.
func (l *List[T]) Contains(n *Node[T]) bool {
	return n != nil && n.list == l
}

// Nodes iterates the list from head to tail.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head; n != nil; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Values iterates the values from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range l.Nodes() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward iterates the values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; {
			prev := n.prev
			if !yield(n.Value) {
				return
			}
			n = prev
		}
	}
}
