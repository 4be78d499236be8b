package timed

import (
	"iter"
	"slices"

	"github.com/henderiw/timed/pkg/moment"
)

// First returns the first item, or nil if the sequence is empty.
func (s *Sequence) First() *Item {
	if n := s.items.Front(); n != nil {
		return n.Value
	}
	return nil
}

// Last returns the last item, or nil if the sequence is empty.
func (s *Sequence) Last() *Item {
	if n := s.items.Back(); n != nil {
		return n.Value
	}
	return nil
}

// FirstN returns up to n items from the head of the sequence.
func (s *Sequence) FirstN(n int) []*Item {
	return take(s.All(), n, nil)
}

// LastN returns up to n items from the tail of the sequence, in
// chronological order.
func (s *Sequence) LastN(n int) []*Item {
	items := take(s.items.Backward(), n, nil)
	slices.Reverse(items)
	return items
}

// FirstAfter returns up to n items that begin after the given time. If after
// is an item of this sequence, the items following it are returned. If the
// end of after falls strictly within an item, the items starting with that
// one are returned. nil is returned when no item qualifies.
func (s *Sequence) FirstAfter(after moment.Moment, n int) []*Item {
	if it, ok := after.(*Item); ok && s.Contains(it) {
		return take(walk(it.Next(), (*Item).Next), n, nil)
	}
	if it := s.within(after.End()); it != nil {
		return take(walk(it, (*Item).Next), n, nil)
	}
	return take(s.All(), n, func(it *Item) bool { return it.After(after) })
}

// LastBefore returns up to n items that end before the given time, in
// chronological order. If before is an item of this sequence, the items
// preceding it are returned. If the begin of before falls strictly within an
// item, the items ending with that one are returned. nil is returned when no
// item qualifies.
func (s *Sequence) LastBefore(before moment.Moment, n int) []*Item {
	var items []*Item
	if it, ok := before.(*Item); ok && s.Contains(it) {
		items = take(walk(it.Prev(), (*Item).Prev), n, nil)
	} else if it := s.within(before.Begin()); it != nil {
		items = take(walk(it, (*Item).Prev), n, nil)
	} else {
		items = take(s.items.Backward(), n, func(it *Item) bool { return it.Before(before) })
	}
	slices.Reverse(items)
	return items
}

// within returns the item that t falls strictly within, or nil.
func (s *Sequence) within(t float64) *Item {
	for it := range s.All() {
		if it.Begin() < t && t < it.End() {
			return it
		}
		if it.Begin() >= t {
			break
		}
	}
	return nil
}

// walk iterates the items reached by step, starting with it.
func walk(it *Item, step func(*Item) *Item) iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for x := it; x != nil; x = step(x) {
			if !yield(x) {
				return
			}
		}
	}
}

func take(seq iter.Seq[*Item], n int, match func(*Item) bool) []*Item {
	if n <= 0 {
		return nil
	}
	var items []*Item
	for it := range seq {
		if match != nil && !match(it) {
			continue
		}
		items = append(items, it)
		if len(items) == n {
			break
		}
	}
	return items
}

// Edges iterates the begin and end of every item.
func (s *Sequence) Edges() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for it := range s.All() {
			if !yield(it.Begin()) || !yield(it.End()) {
				return
			}
		}
	}
}

// LeadingEdges iterates the begin of every item.
func (s *Sequence) LeadingEdges() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for it := range s.All() {
			if !yield(it.Begin()) {
				return
			}
		}
	}
}

// TrailingEdges iterates the end of every item.
func (s *Sequence) TrailingEdges() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for it := range s.All() {
			if !yield(it.End()) {
				return
			}
		}
	}
}
