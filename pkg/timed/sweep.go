package timed

import (
	"iter"

	"github.com/henderiw/timed/pkg/moment"
	"k8s.io/apimachinery/pkg/labels"
)

// Intersection is a period during which two sequences both have an item.
// Self and Other are the items of the two sequences that overlap.
type Intersection struct {
	moment.Span
	Self  *Item
	Other *Item
}

// Sweep walks two sequences in lock step and stops at every intersection
// between them. Items are never copied; the sweep reads the sequences as they
// are when Next is called.
type Sweep struct {
	self     *Sequence
	leading  *Item
	trailing *Item
	done     bool
	value    Intersection
}

// Sweep returns a sweep over the intersections between s and other. Nothing
// is computed until Next is called.
func (s *Sequence) Sweep(other *Sequence) *Sweep {
	w := &Sweep{self: s}
	if s.Empty() || other.Empty() || !s.During(other) {
		w.done = true
		return w
	}
	// sort the first items into leading and trailing by whichever begins
	// first
	if s.Begin() <= other.Begin() {
		w.leading, w.trailing = s.First(), other.First()
	} else {
		w.leading, w.trailing = other.First(), s.First()
	}
	return w
}

// Value returns the intersection found by the last call to Next.
func (w *Sweep) Value() Intersection {
	return w.value
}

// Next advances to the next intersection. It returns false once either
// sequence runs out of items.
func (w *Sweep) Next() bool {
	for !w.done {
		l, t := w.leading, w.trailing
		found := false

		switch {
		case l.End() <= t.Begin():
			// the leading item ends before the trailing one begins
		case l.End() <= t.End():
			// the leading item ends before the trailing one ends
			w.set(t.Begin(), l.End(), l, t)
			found = true
		default:
			// the leading item ends after the trailing one
			w.set(t.Begin(), t.End(), l, t)
			found = true
			l, t = t, l
		}

		l = l.Next()
		switch {
		case l == nil:
			w.done = true
		case l.Begin() > t.Begin():
			l, t = t, l
		}
		w.leading, w.trailing = l, t

		if found {
			return true
		}
	}
	return false
}

func (w *Sweep) set(begin, end float64, a, b *Item) {
	if a.seq != w.self {
		a, b = b, a
	}
	w.value = Intersection{
		Span:  moment.New(begin, end),
		Self:  a,
		Other: b,
	}
}

// Intersections iterates the intersections between s and other in
// chronological order. Every call starts a new sweep.
func (s *Sequence) Intersections(other *Sequence) iter.Seq[Intersection] {
	return func(yield func(Intersection) bool) {
		w := s.Sweep(other)
		for w.Next() {
			if !yield(w.Value()) {
				return
			}
		}
	}
}

// EachIntersection calls fn with the begin and end of every intersection
// and returns the number of intersections.
func (s *Sequence) EachIntersection(other *Sequence, fn func(begin, end float64)) int {
	n := 0
	for ix := range s.Intersections(other) {
		fn(ix.Begin(), ix.End())
		n++
	}
	return n
}

// Intersect returns a new sequence with the items that make up the
// intersection between the two sequences. The labels of the overlapping
// items are merged onto the new ones.
func (s *Sequence) Intersect(other *Sequence) *Sequence {
	r := New()
	for ix := range s.Intersections(other) {
		it := &Item{
			span:   ix.Span,
			labels: mergeLabels(ix.Self.labels, ix.Other.labels),
		}
		it.node.Value = it
		// intersections come out ordered and non overlapping
		r.items.PushBack(&it.node)
		it.seq = r
	}
	return r
}

// mergeLabels returns a new set holding the labels of both, or nil when
// neither has any.
func mergeLabels(a, b labels.Set) labels.Set {
	if a == nil && b == nil {
		return nil
	}
	return labels.Merge(a, b)
}

type window struct {
	from, to       float64
	hasFrom, hasTo bool
}

type TimeOption func(*window)

// From only counts intersecting time after t.
func From(t float64) TimeOption {
	return func(w *window) { w.from, w.hasFrom = t, true }
}

// To only counts intersecting time before t.
func To(t float64) TimeOption {
	return func(w *window) { w.to, w.hasTo = t, true }
}

// IntersectTime returns the total time of the intersection between s and
// other, without building the intersecting sequence.
func (s *Sequence) IntersectTime(other *Sequence, opts ...TimeOption) float64 {
	w := &window{}
	for _, opt := range opts {
		opt(w)
	}

	var total float64
	for ix := range s.Intersections(other) {
		b, e := ix.Begin(), ix.End()
		if w.hasFrom && b < w.from {
			b = w.from
		}
		last := false
		if w.hasTo && e >= w.to {
			e, last = w.to, true
		}
		if e > b {
			total += e - b
		}
		if last {
			break
		}
	}
	return total
}
