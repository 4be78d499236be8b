/*
Package timed implements sequences of non overlapping time intervals.

An Item is a single interval. Items are chained into a Sequence, which only
accepts them in chronological order:

	s := timed.New()
	s.Push(moment.New(2, 3))
	s.Unshift(moment.New(1, 2)) // same result as pushing in order

A Sequence is itself a moment and can be offset in time by a polynomial of up
to degree 2. The offset is applied every time the begin or end of an item is
read; stored times never change.

	s.OffsetBy(10, 1.1, 0.01)
	//         ^   ^    ^ quadratic term
	//         |   + linear term
	//         + constant term

The intersections between two sequences are found by sweeping both in lock
step, without comparing every item with every other:

	for ix := range s1.Intersections(s2) {
		fmt.Println(ix.Begin(), ix.End())
	}

Sequences are not safe for concurrent mutation.
*/
package timed
