package timed

import (
	"fmt"
	"maps"

	"github.com/henderiw/timed/pkg/linked"
	"github.com/henderiw/timed/pkg/moment"
	"k8s.io/apimachinery/pkg/labels"
)

// Item is a moment that can be chained to others to form a sequence. Items in
// a sequence are guaranteed to be sequential and non overlapping. The stored
// begin and end never change after construction.
type Item struct {
	span   moment.Span
	labels labels.Set

	node linked.Node[*Item]
	// seq is the sequence the item currently belongs to. It is only used to
	// look up the offset when reading begin and end.
	seq *Sequence
}

type ItemOption func(*itemConfig)

type itemConfig struct {
	labels labels.Set
	seq    *Sequence
}

// WithLabels attaches a copy of l to the item.
func WithLabels(l labels.Set) ItemOption {
	return func(c *itemConfig) { c.labels = maps.Clone(l) }
}

// WithSequence appends the item to the tail of s as part of construction.
func WithSequence(s *Sequence) ItemOption {
	return func(c *itemConfig) { c.seq = s }
}

// NewItem creates an item that begins and ends at the given times.
func NewItem(begin, end float64, opts ...ItemOption) (*Item, error) {
	return newItem(begin, end, opts...)
}

// NewItemFrom creates an item from any range-like value.
func NewItemFrom(m moment.Moment, opts ...ItemOption) (*Item, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: got nil timespan", ErrInvalidType)
	}
	return newItem(m.Begin(), m.End(), opts...)
}

// NewItemFromValues creates an item from loosely typed endpoints. Both must
// hold a Go numeric type.
func NewItemFromValues(begin, end any, opts ...ItemOption) (*Item, error) {
	b, ok := moment.Numeric(begin)
	if !ok {
		return nil, fmt.Errorf("%w: begin %v (%T)", ErrInvalidType, begin, begin)
	}
	e, ok := moment.Numeric(end)
	if !ok {
		return nil, fmt.Errorf("%w: end %v (%T)", ErrInvalidType, end, end)
	}
	return newItem(b, e, opts...)
}

func newItem(begin, end float64, opts ...ItemOption) (*Item, error) {
	if _, ok := moment.Numeric(begin); !ok {
		return nil, fmt.Errorf("%w: begin %v", ErrInvalidType, begin)
	}
	if _, ok := moment.Numeric(end); !ok {
		return nil, fmt.Errorf("%w: end %v", ErrInvalidType, end)
	}
	if end < begin {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidRange, begin, end)
	}

	cfg := &itemConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	it := &Item{
		span:   moment.New(begin, end),
		labels: cfg.labels,
	}
	it.node.Value = it

	if cfg.seq != nil {
		if _, err := cfg.seq.Push(it); err != nil {
			return nil, err
		}
	}
	return it, nil
}

// adopt returns m as an item, wrapping it in a new one if needed.
func adopt(m moment.Moment) (*Item, error) {
	if it, ok := m.(*Item); ok && it != nil {
		return it, nil
	}
	return NewItemFrom(m)
}

// Begin returns the time when the item starts, offset by its sequence.
func (it *Item) Begin() float64 {
	return it.offset(it.span.Start)
}

// End returns the time when the item ends, offset by its sequence.
func (it *Item) End() float64 {
	return it.offset(it.span.Stop)
}

func (it *Item) offset(t float64) float64 {
	if it.seq == nil {
		return t
	}
	return it.seq.Offset(t)
}

// Raw returns the stored span, unaffected by any offset.
func (it *Item) Raw() moment.Span { return it.span }

func (it *Item) Labels() labels.Set   { return it.labels }
func (it *Item) Sequence() *Sequence  { return it.seq }
func (it *Item) InSequence() bool     { return it.seq != nil }
func (it *Item) IsFirst() bool        { return it.node.IsFirst() }
func (it *Item) IsLast() bool         { return it.node.IsLast() }
func (it *Item) Duration() float64    { return moment.Duration(it) }
func (it *Item) Equal(other any) bool { return moment.Equal(it, other) }
func (it *Item) String() string       { return moment.Format("Item", it) }

func (it *Item) Before(other moment.Moment) bool { return moment.Before(it, other) }
func (it *Item) After(other moment.Moment) bool  { return moment.After(it, other) }
func (it *Item) During(other moment.Moment) bool { return moment.During(it, other) }

// Next returns the item that follows, or nil.
func (it *Item) Next() *Item {
	if n := it.node.Next(); n != nil {
		return n.Value
	}
	return nil
}

// Prev returns the item that precedes, or nil.
func (it *Item) Prev() *Item {
	if n := it.node.Prev(); n != nil {
		return n.Value
	}
	return nil
}

// Intersect returns a new free item covering the time common to both, or
// nil if they do not intersect. Labels of both items are merged.
func (it *Item) Intersect(other moment.Moment) *Item {
	s, ok := moment.Intersect(it, other)
	if !ok {
		return nil
	}
	var l labels.Set
	if o, ok := other.(*Item); ok {
		l = o.labels
	}
	r := &Item{span: s, labels: mergeLabels(it.labels, l)}
	r.node.Value = r
	return r
}

// Append inserts other after this item and before the next one. The new item
// may not overlap with the two it sits between. A moment that is not an
// Item is wrapped in a new one first.
func (it *Item) Append(m moment.Moment) (*Item, error) {
	other, err := adopt(m)
	if err != nil {
		return nil, err
	}
	if err := it.checkAppend(other); err != nil {
		return nil, err
	}
	it.node.InsertAfter(&other.node)
	other.seq = it.seq
	return other, nil
}

// Prepend inserts other before this item and after the previous one. The new
// item may not overlap with the two it sits between.
func (it *Item) Prepend(m moment.Moment) (*Item, error) {
	other, err := adopt(m)
	if err != nil {
		return nil, err
	}
	if err := it.checkPrepend(other); err != nil {
		return nil, err
	}
	it.node.InsertBefore(&other.node)
	other.seq = it.seq
	return other, nil
}

// Remove unlinks the item from its sequence.
func (it *Item) Remove() {
	it.node.Unlink()
	it.seq = nil
}

// foreign returns true if other belongs to a sequence other than the one of
// it. A foreign item must fit both on offset times, as it reads before the
// move, and on raw times, as it reads once it belongs to the sequence of it.
func (it *Item) foreign(other *Item) bool {
	return other.seq != nil && other.seq != it.seq
}

func (it *Item) view(offset bool) moment.Span {
	if offset {
		return moment.From(it)
	}
	return it.span
}

// views returns the comparisons an insertion of other must pass.
func (it *Item) views(other *Item) []bool {
	if it.foreign(other) {
		return []bool{true, false}
	}
	return []bool{false}
}

func (it *Item) checkAppend(other *Item) error {
	if other == it {
		return structureErr("cannot append %s to itself", it)
	}
	next := it.Next()
	if next == other {
		next = other.Next()
	}
	for _, offset := range it.views(other) {
		self, o := it.view(offset), other.view(offset)
		if !moment.Before(self, o) {
			return structureErr("%s does not begin after %s", other, it)
		}
		if next != nil && !moment.Before(o, next.view(offset)) {
			return structureErr("%s does not end before %s", other, next)
		}
	}
	return nil
}

func (it *Item) checkPrepend(other *Item) error {
	if other == it {
		return structureErr("cannot prepend %s to itself", it)
	}
	prev := it.Prev()
	if prev == other {
		prev = other.Prev()
	}
	for _, offset := range it.views(other) {
		self, o := it.view(offset), other.view(offset)
		if !moment.After(self, o) {
			return structureErr("%s does not end before %s", other, it)
		}
		if prev != nil && !moment.After(o, prev.view(offset)) {
			return structureErr("%s does not begin after %s", other, prev)
		}
	}
	return nil
}
