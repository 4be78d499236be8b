package timed

// Iterator walks the items of a sequence. Call Next before the first Value.
type Iterator struct {
	started bool
	prev    *Item
	current *Item
	seq     *Sequence
}

func (s *Sequence) Iterate() *Iterator {
	return &Iterator{seq: s}
}

func (r *Iterator) Value() *Item {
	return r.current
}

func (r *Iterator) Next() bool {
	switch {
	case !r.started:
		r.started = true
		r.current = r.seq.First()
	case r.current != nil:
		r.prev, r.current = r.current, r.current.Next()
	}
	return r.current != nil
}

// IsContiguous returns true if the current item begins exactly where the
// previous one ended.
func (r *Iterator) IsContiguous() bool {
	if r.prev == nil || r.current == nil {
		return false
	}
	return r.prev.End() == r.current.Begin()
}
