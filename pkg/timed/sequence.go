package timed

import (
	"fmt"
	"iter"

	"github.com/henderiw/timed/pkg/linked"
	"github.com/henderiw/timed/pkg/moment"
	"k8s.io/apimachinery/pkg/labels"
)

// Sequence is an ordered collection of non overlapping items. Items must be
// inserted in chronological order or the insertion fails.
//
// A sequence is itself a moment, spanning from the begin of its first item
// to the end of its last. It can be offset in time by a polynomial that is
// applied every time the begin or end of an item is read.
type Sequence struct {
	items  linked.List[*Item]
	offset *polynomial
}

func New() *Sequence {
	return &Sequence{}
}

// FromSpans builds a sequence from spans given in any order. Overlapping and
// touching spans are merged first.
func FromSpans(spans ...moment.Span) (*Sequence, error) {
	merged, ok := moment.MergeSpans(spans)
	if !ok {
		return nil, fmt.Errorf("%w: cannot merge %v", ErrInvalidRange, spans)
	}
	s := New()
	for _, r := range merged {
		if _, err := s.Push(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Begin returns the time at which the first item begins. An empty sequence
// begins and ends at time 0.
func (s *Sequence) Begin() float64 {
	if s.Empty() {
		return 0
	}
	return s.First().Begin()
}

// End returns the time at which the last item ends. An empty sequence begins
// and ends at time 0.
func (s *Sequence) End() float64 {
	if s.Empty() {
		return 0
	}
	return s.Last().End()
}

func (s *Sequence) Len() int          { return s.items.Len() }
func (s *Sequence) Empty() bool       { return s.items.Empty() }
func (s *Sequence) Duration() float64 { return moment.Duration(s) }
func (s *Sequence) String() string    { return moment.Format("Sequence", s) }

func (s *Sequence) Equal(other any) bool            { return moment.Equal(s, other) }
func (s *Sequence) Before(other moment.Moment) bool { return moment.Before(s, other) }
func (s *Sequence) After(other moment.Moment) bool  { return moment.After(s, other) }
func (s *Sequence) During(other moment.Moment) bool { return moment.During(s, other) }

// Time returns the total time covered by the items.
func (s *Sequence) Time() float64 {
	var total float64
	for it := range s.All() {
		total += it.Duration()
	}
	return total
}

// Push appends m to the tail of the sequence. Anything that is not an Item
// is wrapped in a new one.
func (s *Sequence) Push(m moment.Moment) (*Item, error) {
	it, err := adopt(m)
	if err != nil {
		return nil, err
	}
	if tail := s.Last(); tail != nil {
		return tail.Append(it)
	}
	s.items.PushBack(&it.node)
	it.seq = s
	return it, nil
}

// Unshift prepends m to the head of the sequence. Anything that is not an
// Item is wrapped in a new one.
func (s *Sequence) Unshift(m moment.Moment) (*Item, error) {
	it, err := adopt(m)
	if err != nil {
		return nil, err
	}
	if head := s.First(); head != nil {
		return head.Prepend(it)
	}
	s.items.PushFront(&it.node)
	it.seq = s
	return it, nil
}

// Remove unlinks it from the sequence.
func (s *Sequence) Remove(it *Item) error {
	if it == nil || it.seq != s {
		return ErrNotMember
	}
	it.Remove()
	return nil
}

// Contains reports whether it is a member of the sequence.
func (s *Sequence) Contains(it *Item) bool {
	return it != nil && it.seq == s && s.items.Contains(&it.node)
}

// All iterates the items in chronological order.
func (s *Sequence) All() iter.Seq[*Item] {
	return s.items.Values()
}

// Items returns the items as a slice.
func (s *Sequence) Items() []*Item {
	items := make([]*Item, 0, s.Len())
	for it := range s.All() {
		items = append(items, it)
	}
	return items
}

// GetByLabel returns the items whose labels match the selector.
func (s *Sequence) GetByLabel(selector labels.Selector) []*Item {
	var items []*Item
	for it := range s.All() {
		if selector.Matches(it.labels) {
			items = append(items, it)
		}
	}
	return items
}

func (s *Sequence) PrintItems() {
	fmt.Println(s)
	for it := range s.All() {
		fmt.Printf("  %s labels: %s\n", it, it.labels)
	}
}
